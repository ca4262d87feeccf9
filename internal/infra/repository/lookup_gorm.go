package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// LookupGormRepository resolve referências entre entidades.
type LookupGormRepository struct {
	db *gorm.DB
}

func NewLookupGormRepository(db *gorm.DB) *LookupGormRepository {
	return &LookupGormRepository{db: db}
}

func (r *LookupGormRepository) GetClient(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, dbErr(err, "client", "get")
	}
	return &c, nil
}

func (r *LookupGormRepository) GetPet(ctx context.Context, id uint) (*models.Pet, error) {
	var p models.Pet
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, dbErr(err, "pet", "get")
	}
	return &p, nil
}

func (r *LookupGormRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).Preload("Category").First(&s, id).Error; err != nil {
		return nil, dbErr(err, "service", "get")
	}
	return &s, nil
}

func (r *LookupGormRepository) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, dbErr(err, "user", "get")
	}
	return &u, nil
}

func (r *LookupGormRepository) GetAppointment(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service.Category").
		First(&ap, id).Error; err != nil {
		return nil, dbErr(err, "appointment", "get")
	}
	return &ap, nil
}

var _ ownership.Lookup = (*LookupGormRepository)(nil)
