package routes

import (
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/config"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/handlers"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/ratelimit"
	infraRepo "github.com/BruksfildServices01/petcare-manager/internal/infra/repository"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/storage"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	ucAppointment "github.com/BruksfildServices01/petcare-manager/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/petcare-manager/internal/usecase/catalog"
	ucClient "github.com/BruksfildServices01/petcare-manager/internal/usecase/client"
	ucDashboard "github.com/BruksfildServices01/petcare-manager/internal/usecase/dashboard"
	ucHotelStay "github.com/BruksfildServices01/petcare-manager/internal/usecase/hotelstay"
	ucMedical "github.com/BruksfildServices01/petcare-manager/internal/usecase/medical"
	ucPet "github.com/BruksfildServices01/petcare-manager/internal/usecase/pet"
	ucPqr "github.com/BruksfildServices01/petcare-manager/internal/usecase/pqr"
	ucReport "github.com/BruksfildServices01/petcare-manager/internal/usecase/report"
	ucUser "github.com/BruksfildServices01/petcare-manager/internal/usecase/user"
	ucVaccination "github.com/BruksfildServices01/petcare-manager/internal/usecase/vaccination"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// Infra reúne o que o main monta a partir da configuração.
type Infra struct {
	Logger   *zap.Logger
	Store    storage.Store
	Limiter  ratelimit.Limiter
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(infra.Logger),
		middleware.Metrics(infra.Metrics),
		middleware.CORSMiddleware(cfg.CORSOrigins),
		gzip.Gzip(gzip.DefaultCompression),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	registry := access.DefaultRegistry()
	guard := access.NewGuard(registry)
	segments := access.NewSegmentFilter(registry)

	auditLogger := audit.New(db)

	userRepo := infraRepo.NewUserGormRepository(db)
	clientRepo := infraRepo.NewClientGormRepository(db)
	petRepo := infraRepo.NewPetGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	hotelStayRepo := infraRepo.NewHotelStayGormRepository(db)
	medicalRepo := infraRepo.NewMedicalRecordGormRepository(db)
	vaccinationRepo := infraRepo.NewVaccinationGormRepository(db)
	pqrRepo := infraRepo.NewPqrGormRepository(db)
	lookup := infraRepo.NewLookupGormRepository(db)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	userUC := ucUser.NewService(userRepo, guard, auditLogger)
	clientUC := ucClient.NewService(clientRepo, appointmentRepo, hotelStayRepo, guard, segments, auditLogger)
	catalogUC := ucCatalog.NewService(catalogRepo, guard, segments, auditLogger)
	appointmentUC := ucAppointment.NewService(appointmentRepo, lookup, guard, segments, auditLogger)
	hotelStayUC := ucHotelStay.NewService(hotelStayRepo, lookup, guard, segments, auditLogger)
	medicalUC := ucMedical.NewService(medicalRepo, lookup, guard, segments, auditLogger)

	petUC := ucPet.NewService(ucPet.Deps{
		Repo:         petRepo,
		Lookup:       lookup,
		Appointments: appointmentRepo,
		Records:      medicalRepo,
		Vaccinations: vaccinationRepo,
		Store:        infra.Store,
		Guard:        guard,
		Segments:     segments,
		Audit:        auditLogger,
	})

	vaccinationUC := ucVaccination.NewService(vaccinationRepo, lookup, guard, segments, auditLogger)

	var checkDomain func(string) bool
	if cfg.CheckEmailDomain {
		checkDomain = validators.EmailDomainChecker(net.DefaultResolver, 3*time.Second)
	}
	pqrUC := ucPqr.NewService(ucPqr.Deps{
		Repo:        pqrRepo,
		Lookup:      lookup,
		Guard:       guard,
		Audit:       auditLogger,
		Metrics:     infra.Metrics,
		CheckDomain: checkDomain,
	})

	dashboardUC := ucDashboard.NewService(ucDashboard.Deps{
		Clients:      clientRepo,
		Pets:         petRepo,
		Appointments: appointmentRepo,
		HotelStays:   hotelStayRepo,
		Pqrs:         pqrRepo,
		Catalog:      catalogRepo,
		Guard:        guard,
		Segments:     segments,
	})

	reportUC := ucReport.NewService(ucReport.Deps{
		Appointments: appointmentRepo,
		HotelStays:   hotelStayRepo,
		Pqrs:         pqrRepo,
		Pets:         petRepo,
		Guard:        guard,
		Segments:     segments,
		Audit:        auditLogger,
	})

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userUC, cfg, infra.Metrics)
	meHandler := handlers.NewMeHandler(registry)
	userHandler := handlers.NewUserHandler(userUC)
	clientHandler := handlers.NewClientHandler(clientUC)
	petHandler := handlers.NewPetHandler(petUC, infra.Metrics)
	catalogHandler := handlers.NewCatalogHandler(catalogUC)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUC)
	hotelStayHandler := handlers.NewHotelStayHandler(hotelStayUC)
	medicalHandler := handlers.NewMedicalRecordHandler(medicalUC)
	vaccinationHandler := handlers.NewVaccinationHandler(vaccinationUC)
	pqrHandler := handlers.NewPqrHandler(pqrUC)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUC)
	reportHandler := handlers.NewReportHandler(reportUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, guard)
	publicHandler := handlers.NewPublicHandler(catalogUC, pqrUC)

	// ======================================================
	// 🔎 OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(observability.Handler(infra.Gatherer)))

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.POST("/pqrs",
				middleware.RateLimit(infra.Limiter, "pqr", func() {
					infra.Metrics.PqrSubmissionsTotal.WithLabelValues("rate_limited").Inc()
				}),
				publicHandler.SubmitPqr,
			)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, userUC))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/dashboard", dashboardHandler.Get)

			// ------------------------------
			// USERS
			// ------------------------------
			secured.GET("/users", userHandler.List)
			secured.POST("/users", userHandler.Create)
			secured.GET("/users/:id", userHandler.Get)
			secured.PATCH("/users/:id", userHandler.Update)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/search", clientHandler.Search)
			secured.GET("/clients/:id", clientHandler.Get)
			secured.PATCH("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.GET("/clients/:id/history", clientHandler.History)

			// ------------------------------
			// PETS
			// ------------------------------
			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.GET("/pets/:id", petHandler.Get)
			secured.PATCH("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", petHandler.Delete)
			secured.GET("/pets/:id/history", petHandler.History)
			secured.PUT("/pets/:id/photo", petHandler.UploadPhoto)
			secured.DELETE("/pets/:id/photo", petHandler.RemovePhoto)
			secured.GET("/pets/:id/vaccinations", vaccinationHandler.ListByPet)
			secured.POST("/pets/:id/vaccinations", vaccinationHandler.Create)
			secured.GET("/pets/:id/medical-records", medicalHandler.ByPet)

			// ------------------------------
			// VACCINATIONS
			// ------------------------------
			secured.GET("/vaccinations/due", vaccinationHandler.Due)
			secured.PATCH("/vaccinations/:id", vaccinationHandler.Update)
			secured.DELETE("/vaccinations/:id", vaccinationHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/service-categories", catalogHandler.ListCategories)
			secured.POST("/service-categories", catalogHandler.CreateCategory)
			secured.GET("/services", catalogHandler.ListServices)
			secured.POST("/services", catalogHandler.CreateService)
			secured.GET("/services/:id", catalogHandler.GetService)
			secured.PATCH("/services/:id", catalogHandler.UpdateService)
			secured.DELETE("/services/:id", catalogHandler.DeleteService)
			secured.PATCH("/services/:id/price", catalogHandler.UpdatePrice)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/calendar", appointmentHandler.Calendar)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)

			// ------------------------------
			// HOTEL
			// ------------------------------
			secured.GET("/hotel-stays", hotelStayHandler.List)
			secured.POST("/hotel-stays", hotelStayHandler.Create)
			secured.GET("/hotel-stays/calendar", hotelStayHandler.Calendar)
			secured.GET("/hotel-stays/:id", hotelStayHandler.Get)
			secured.PATCH("/hotel-stays/:id", hotelStayHandler.Update)
			secured.DELETE("/hotel-stays/:id", hotelStayHandler.Delete)
			secured.PATCH("/hotel-stays/:id/check-in", hotelStayHandler.CheckIn)
			secured.PATCH("/hotel-stays/:id/check-out", hotelStayHandler.CheckOut)
			secured.PATCH("/hotel-stays/:id/cancel", hotelStayHandler.Cancel)

			// ------------------------------
			// MEDICAL RECORDS
			// ------------------------------
			secured.GET("/medical-records", medicalHandler.List)
			secured.POST("/medical-records", medicalHandler.Create)
			secured.GET("/medical-records/:id", medicalHandler.Get)
			secured.PATCH("/medical-records/:id", medicalHandler.Update)
			secured.DELETE("/medical-records/:id", medicalHandler.Delete)

			// ------------------------------
			// PQRS
			// ------------------------------
			secured.GET("/pqrs", pqrHandler.List)
			secured.GET("/pqrs/mine", pqrHandler.Mine)
			secured.GET("/pqrs/:id", pqrHandler.Get)
			secured.PATCH("/pqrs/:id", pqrHandler.Update)
			secured.DELETE("/pqrs/:id", pqrHandler.Delete)
			secured.PATCH("/pqrs/:id/assign", pqrHandler.Assign)
			secured.PATCH("/pqrs/:id/respond", pqrHandler.Respond)
			secured.PATCH("/pqrs/:id/close", pqrHandler.Close)

			// ------------------------------
			// REPORTS / AUDIT
			// ------------------------------
			secured.GET("/reports/services.xlsx", reportHandler.Services)
			secured.GET("/reports/financial.xlsx", reportHandler.Financial)
			secured.GET("/reports/pqrs.csv", reportHandler.Pqrs)
			secured.GET("/reports/breeds.csv", reportHandler.Breeds)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
