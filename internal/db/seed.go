package db

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type seedService struct {
	Name        string
	Description string
	Price       float64
}

type seedCategory struct {
	Name        string
	Segment     models.Segment
	Description string
	Services    []seedService
}

var catalog = []seedCategory{
	{
		Name: "Consultas Veterinarias", Segment: models.SegmentClinic,
		Description: "Consultas médicas generales y especializadas",
		Services: []seedService{
			{"Consulta General", "Revisión médica general", 50000},
			{"Consulta Especializada", "Consulta con especialista", 80000},
		},
	},
	{
		Name: "Vacunas", Segment: models.SegmentClinic,
		Description: "Aplicación de vacunas",
		Services: []seedService{
			{"Vacuna Triple", "Vacuna triple felina o canina", 45000},
			{"Vacuna Antirrábica", "Vacuna contra la rabia", 35000},
		},
	},
	{
		Name: "Hospedaje", Segment: models.SegmentHotel,
		Description: "Servicios de hospedaje para mascotas",
		Services: []seedService{
			{"Habitación Estándar", "Hospedaje básico por día", 40000},
			{"Habitación Premium", "Hospedaje con cuidados extra por día", 60000},
		},
	},
	{
		Name: "Peluquería", Segment: models.SegmentSpa,
		Description: "Servicios de estética y peluquería",
		Services: []seedService{
			{"Baño Completo", "Baño con champú especial", 35000},
			{"Corte de Pelo", "Corte y arreglo según la raza", 45000},
		},
	},
}

// Seed cria o catálogo inicial e o gerente geral. Idempotente: nada é
// recriado se já existir.
func Seed(ctx context.Context, db *gorm.DB, adminEmail, adminPassword string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		for _, sc := range catalog {
			cat := models.ServiceCategory{}
			if err := tx.
				Where(models.ServiceCategory{Name: sc.Name, Segment: sc.Segment}).
				Attrs(models.ServiceCategory{Description: sc.Description}).
				FirstOrCreate(&cat).Error; err != nil {
				return err
			}

			for _, s := range sc.Services {
				svc := models.Service{}
				if err := tx.
					Where(models.Service{ServiceCategoryID: cat.ID, Name: s.Name}).
					Attrs(models.Service{Description: s.Description, Price: s.Price, IsActive: true}).
					FirstOrCreate(&svc).Error; err != nil {
					return err
				}
			}
		}

		email := strings.ToLower(strings.TrimSpace(adminEmail))

		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.User{
			Name:         "Gerente General",
			Email:        email,
			PasswordHash: string(hashed),
			Role:         string(access.RoleGeneralManager),
			Active:       true,
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		zap.L().Info("seeded general manager", zap.String("email", email))
		return nil
	})
}
