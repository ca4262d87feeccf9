package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/medical"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type MedicalRecordGormRepository struct {
	db *gorm.DB
}

func NewMedicalRecordGormRepository(db *gorm.DB) *MedicalRecordGormRepository {
	return &MedicalRecordGormRepository{db: db}
}

func preloadMedicalRecord(q *gorm.DB) *gorm.DB {
	return q.Preload("Pet.Client").Preload("Appointment.Service").Preload("Veterinarian")
}

func (r *MedicalRecordGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.MedicalRecord], error) {
	return list[models.MedicalRecord](ctx, r.db, medicalRecordRenderer, spec, "medical_record", preloadMedicalRecord)
}

func (r *MedicalRecordGormRepository) GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error) {
	var m models.MedicalRecord
	if err := preloadMedicalRecord(r.db.WithContext(ctx)).First(&m, id).Error; err != nil {
		return nil, dbErr(err, "medical_record", "get")
	}
	return &m, nil
}

func (r *MedicalRecordGormRepository) Create(ctx context.Context, m *models.MedicalRecord) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error,
		"medical_record", "create",
	)
}

func (r *MedicalRecordGormRepository) Update(ctx context.Context, m *models.MedicalRecord) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(m).Error,
		"medical_record", "update",
	)
}

func (r *MedicalRecordGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.MedicalRecord{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "medical_record", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "medical_record", "delete")
	}
	return nil
}

var _ domain.Repository = (*MedicalRecordGormRepository)(nil)
