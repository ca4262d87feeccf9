package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/petcare-manager/internal/config"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/catalog"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/client"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/fakes"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/pet"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/report"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/user"
)

const headerRole = "X-Test-Role"

type server struct {
	db      *fakes.DB
	router  *gin.Engine
	metrics *observability.Metrics
	users   *user.Service
	cfg     *config.Config
}

func clock() time.Time {
	return time.Date(2025, 5, 20, 8, 0, 0, 0, timezone.Local())
}

// asRole injeta o usuário sem passar por JWT; o fluxo com token é coberto
// em TestLogin_TokenOpensPrivateRoutes.
func asRole(c *gin.Context) {
	if role := c.GetHeader(headerRole); role != "" {
		c.Set(middleware.ContextPrincipal, &access.Principal{UserID: 1, Role: access.Role(role), Active: true})
	}
	c.Next()
}

func newServer() *server {
	gin.SetMode(gin.TestMode)

	db := fakes.NewDB()
	reg := access.DefaultRegistry()
	guard := access.NewGuard(reg)
	segments := access.NewSegmentFilter(reg)
	rec := &fakes.Audit{}
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	cfg := &config.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	users := user.NewService(db.Users(), guard, rec).WithHashCost(bcrypt.MinCost)
	clients := client.NewService(db.Clients(), db.Appointments(), db.HotelStays(), guard, segments, rec)
	catalogs := catalog.NewService(db.Catalog(), guard, segments, rec)
	appointments := appointment.NewService(db.Appointments(), db.Lookup(), guard, segments, rec).WithClock(clock)
	stays := hotelstay.NewService(db.HotelStays(), db.Lookup(), guard, segments, rec).WithClock(clock)
	pets := pet.NewService(pet.Deps{
		Repo:         db.Pets(),
		Lookup:       db.Lookup(),
		Appointments: db.Appointments(),
		Records:      db.MedicalRecords(),
		Vaccinations: db.Vaccinations(),
		Store:        fakes.NewStore(),
		Guard:        guard,
		Segments:     segments,
		Audit:        rec,
	}).WithClock(clock)
	pqrs := pqr.NewService(pqr.Deps{
		Repo:    db.Pqrs(),
		Lookup:  db.Lookup(),
		Guard:   guard,
		Audit:   rec,
		Metrics: metrics,
	}).WithClock(clock)
	reports := report.NewService(report.Deps{
		Appointments: db.Appointments(),
		HotelStays:   db.HotelStays(),
		Pqrs:         db.Pqrs(),
		Pets:         db.Pets(),
		Guard:        guard,
		Segments:     segments,
		Audit:        rec,
	}).WithClock(clock)

	r := gin.New()

	authH := NewAuthHandler(users, cfg, metrics)
	publicH := NewPublicHandler(catalogs, pqrs)
	r.POST("/api/auth/login", authH.Login)
	r.GET("/api/public/services", publicH.ListServices)
	r.POST("/api/public/pqrs", publicH.SubmitPqr)

	withToken := r.Group("/api/token")
	withToken.Use(middleware.AuthMiddleware(cfg, users))
	withToken.GET("/me", NewMeHandler(reg).GetMe)

	api := r.Group("/api")
	api.Use(asRole)
	{
		clientH := NewClientHandler(clients)
		api.GET("/clients", clientH.List)
		api.GET("/clients/search", clientH.Search)
		api.PATCH("/clients/:id", clientH.Update)
		api.DELETE("/clients/:id", clientH.Delete)

		petH := NewPetHandler(pets, metrics)
		api.PUT("/pets/:id/photo", petH.UploadPhoto)

		catalogH := NewCatalogHandler(catalogs)
		api.GET("/services", catalogH.ListServices)

		appointmentH := NewAppointmentHandler(appointments)
		api.GET("/appointments/calendar", appointmentH.Calendar)
		api.PATCH("/appointments/:id/status", appointmentH.ChangeStatus)

		stayH := NewHotelStayHandler(stays)
		api.POST("/hotel-stays", stayH.Create)
		api.PATCH("/hotel-stays/:id", stayH.Update)
		api.PATCH("/hotel-stays/:id/check-in", stayH.CheckIn)

		pqrH := NewPqrHandler(pqrs)
		api.GET("/pqrs/:id", pqrH.Get)

		reportH := NewReportHandler(reports)
		api.GET("/reports/services.xlsx", reportH.Services)
		api.GET("/reports/breeds.csv", reportH.Breeds)
	}

	return &server{db: db, router: r, metrics: metrics, users: users, cfg: cfg}
}

func (s *server) do(method, path string, role access.Role, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(headerRole, string(role))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// ======================================================
// AUTH
// ======================================================

func TestLogin_TokenOpensPrivateRoutes(t *testing.T) {
	s := newServer()
	manager := &access.Principal{UserID: 99, Role: access.RoleGeneralManager, Active: true}
	_, err := s.users.Create(context.Background(), manager, user.Input{
		Name: "Vera", Email: "vera@petcare.test", Password: "secreta123", Role: string(access.RoleClinicAdmin),
	})
	require.NoError(t, err)

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "VERA@petcare.test", "password": "secreta123"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/token/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	me := httptest.NewRecorder()
	s.router.ServeHTTP(me, req)

	require.Equal(t, http.StatusOK, me.Code)
	body := decode(t, me)
	assert.Equal(t, []any{"clinic", "spa"}, body["segments"])
	assert.Contains(t, body["permissions"], "manage_medical_records")
}

func TestLogin_WrongPassword(t *testing.T) {
	s := newServer()
	manager := &access.Principal{UserID: 99, Role: access.RoleGeneralManager, Active: true}
	_, err := s.users.Create(context.Background(), manager, user.Input{
		Name: "Vera", Email: "vera@petcare.test", Password: "secreta123", Role: string(access.RoleClinicAdmin),
	})
	require.NoError(t, err)

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "vera@petcare.test", "password": "otra-clave"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_credentials", decode(t, w)["error_code"])
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.AuthFailuresTotal))
}

func TestLogin_MissingFields(t *testing.T) {
	s := newServer()

	w := s.do(http.MethodPost, "/api/auth/login", "", gin.H{"email": "no-es-correo"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields, _ := decode(t, w)["fields"].(map[string]any)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

// ======================================================
// AUTHORIZATION
// ======================================================

func TestPrivateRoute_WithoutPrincipalIsUnauthorized(t *testing.T) {
	s := newServer()

	w := s.do(http.MethodGet, "/api/clients", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestServices_SpaAssistantOnlySeesSpa(t *testing.T) {
	s := newServer()
	clinic := s.db.Category("Consultas", models.SegmentClinic)
	spa := s.db.Category("Peluquería", models.SegmentSpa)
	s.db.Service(clinic.ID, "Consulta", 50000)
	s.db.Service(spa.ID, "Baño", 35000)

	w := s.do(http.MethodGet, "/api/services", access.RoleSpaAssistant, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.EqualValues(t, 1, body["total"])

	// pedir a categoria clínica explicitamente não fura o filtro
	w = s.do(http.MethodGet, "/api/services?category_id=1", access.RoleSpaAssistant, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"])
}

func TestPqr_AssignedToAnotherUserIsForbidden(t *testing.T) {
	s := newServer()
	s.db.User("yo", string(access.RoleSpaAssistant))
	other := s.db.User("otro", string(access.RoleHotelEmployee))
	p := s.db.Pqr(models.Pqr{Subject: "Demora", ClientName: "Carla", ClientEmail: "c@correo.co", Type: "queja", AssignedTo: &other.ID})

	w := s.do(http.MethodGet, "/api/pqrs/"+itoa(p.ID), access.RoleSpaAssistant, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "Demora")
}

// ======================================================
// CLIENTS
// ======================================================

func TestClient_DeleteWithPetsIsConflict(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	s.db.Pet(ana.ID, "Luna")

	w := s.do(http.MethodDelete, "/api/clients/"+itoa(ana.ID), access.RoleGeneralManager, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "client_has_dependents", decode(t, w)["error_code"])

	_, err := s.db.Clients().GetByID(context.Background(), ana.ID)
	assert.NoError(t, err)
}

func TestClient_PatchKeepsUntouchedFields(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")

	w := s.do(http.MethodPatch, "/api/clients/"+itoa(ana.ID), access.RoleHotelEmployee, gin.H{"phone": "3151234567"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "3151234567", body["phone"])
	assert.Equal(t, ana.Email, body["email"])
}

func TestClient_ValidationEchoesInput(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")

	w := s.do(http.MethodPatch, "/api/clients/"+itoa(ana.ID), access.RoleHotelEmployee, gin.H{"email": "roto"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Contains(t, body["fields"], "email")
	input, _ := body["input"].(map[string]any)
	assert.Equal(t, "roto", input["email"])
}

func TestClient_SearchNeedsTwoCharacters(t *testing.T) {
	s := newServer()
	s.db.Client("ana")

	w := s.do(http.MethodGet, "/api/clients/search?q=a", access.RoleHotelEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"])

	w = s.do(http.MethodGet, "/api/clients/search?q=an", access.RoleHotelEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])
}

// ======================================================
// HOTEL / APPOINTMENTS
// ======================================================

func TestHotelStay_CreateComputesTotalCost(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	luna := s.db.Pet(ana.ID, "Luna")

	w := s.do(http.MethodPost, "/api/hotel-stays", access.RoleHotelEmployee, gin.H{
		"client_id": ana.ID, "pet_id": luna.ID,
		"check_in_date": "2025-06-01", "check_out_date": "2025-06-04",
		"room_type": "standard", "daily_rate": 40000,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.EqualValues(t, 120000, body["total_cost"])

	id := uint(body["id"].(float64))
	w = s.do(http.MethodPatch, "/api/hotel-stays/"+itoa(id), access.RoleHotelEmployee, gin.H{"check_out_date": "2025-06-06"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 200000, decode(t, w)["total_cost"])
}

func TestHotelStay_PetOfAnotherClientIsRejected(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	beto := s.db.Client("beto")
	toby := s.db.Pet(beto.ID, "Toby")

	w := s.do(http.MethodPost, "/api/hotel-stays", access.RoleHotelEmployee, gin.H{
		"client_id": ana.ID, "pet_id": toby.ID,
		"check_in_date": "2025-06-01", "check_out_date": "2025-06-04",
		"room_type": "standard", "daily_rate": 40000,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	page, err := s.db.HotelStays().List(context.Background(), query.New())
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestHotelStay_CheckInTwiceIsRejected(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	luna := s.db.Pet(ana.ID, "Luna")
	hs := s.db.HotelStay(models.HotelStay{
		ClientID: ana.ID, PetID: luna.ID, RoomType: "standard", DailyRate: 40000,
		CheckInDate: clock(), CheckOutDate: clock().AddDate(0, 0, 2),
	})

	w := s.do(http.MethodPatch, "/api/hotel-stays/"+itoa(hs.ID)+"/check-in", access.RoleHotelEmployee, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "active", decode(t, w)["status"])

	w = s.do(http.MethodPatch, "/api/hotel-stays/"+itoa(hs.ID)+"/check-in", access.RoleHotelEmployee, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAppointment_CompletedIsTerminal(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	luna := s.db.Pet(ana.ID, "Luna")
	bano := s.db.Service(s.db.Category("Peluquería", models.SegmentSpa).ID, "Baño", 35000)
	ap := s.db.Appointment(models.Appointment{
		ClientID: ana.ID, PetID: luna.ID, ServiceID: bano.ID, AppointmentDate: clock(), Status: "completed",
	})

	w := s.do(http.MethodPatch, "/api/appointments/"+itoa(ap.ID)+"/status", access.RoleGeneralManager, gin.H{"status": "cancelled"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_state", decode(t, w)["error_code"])
}

func TestAppointment_CalendarMonthFormat(t *testing.T) {
	s := newServer()

	w := s.do(http.MethodGet, "/api/appointments/calendar?month=2025-13", access.RoleGeneralManager, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/appointments/calendar?month=2025-05", access.RoleGeneralManager, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["total"])
}

// ======================================================
// PETS
// ======================================================

func TestPet_UploadPhoto(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	luna := s.db.Pet(ana.ID, "Luna")

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 20, 20))))

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("photo", "luna.png")
	require.NoError(t, err)
	_, _ = part.Write(img.Bytes())
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, "/api/pets/"+itoa(luna.ID)+"/photo", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set(headerRole, string(access.RoleHotelEmployee))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasSuffix(decode(t, w)["photo"].(string), ".webp"))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PhotoUploadsTotal.WithLabelValues("stored")))
}

func TestPet_UploadPhotoWithoutFile(t *testing.T) {
	s := newServer()
	ana := s.db.Client("ana")
	luna := s.db.Pet(ana.ID, "Luna")

	w := s.do(http.MethodPut, "/api/pets/"+itoa(luna.ID)+"/photo", access.RoleHotelEmployee, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PhotoUploadsTotal.WithLabelValues("rejected")))
}

// ======================================================
// PUBLIC
// ======================================================

func TestPublic_SubmitPqr(t *testing.T) {
	s := newServer()

	w := s.do(http.MethodPost, "/api/public/pqrs", "", gin.H{
		"client_name": "Carla", "client_email": "carla@correo.co",
		"type": "queja", "subject": "Demora", "description": "Llegó tarde.",
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "pending", decode(t, w)["status"])
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.PqrSubmissionsTotal.WithLabelValues("accepted")))
}

func TestPublic_SubmitPqrMalformedJSON(t *testing.T) {
	s := newServer()

	req := httptest.NewRequest(http.MethodPost, "/api/public/pqrs", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPublic_ServicesBySegment(t *testing.T) {
	s := newServer()
	spa := s.db.Category("Peluquería", models.SegmentSpa)
	s.db.Service(spa.ID, "Baño", 35000)

	w := s.do(http.MethodGet, "/api/public/services?segment=spa", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])

	w = s.do(http.MethodGet, "/api/public/services?segment=garage", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ======================================================
// REPORTS
// ======================================================

func TestReports_DownloadHeaders(t *testing.T) {
	s := newServer()
	s.db.Pet(s.db.Client("ana").ID, "Luna")

	w := s.do(http.MethodGet, "/api/reports/breeds.csv", access.RoleGeneralManager, nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Regexp(t, `filename="razas-\d{8}\.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "especie,raza,total"))
}

func TestReports_ErrorsStayJSON(t *testing.T) {
	s := newServer()

	w := s.do(http.MethodGet, "/api/reports/services.xlsx?from=2025-06-10&to=2025-06-01", access.RoleGeneralManager, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, w.Header().Get("Content-Disposition"))

	w = s.do(http.MethodGet, "/api/reports/breeds.csv", access.RoleSpaAssistant, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
