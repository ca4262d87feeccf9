package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func preloadAppointment(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Client").
		Preload("Pet").
		Preload("Service.Category").
		Preload("User")
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.Appointment], error) {
	return list[models.Appointment](ctx, r.db, appointmentRenderer, spec, "appointment", preloadAppointment)
}

func (r *AppointmentGormRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var ap models.Appointment
	if err := preloadAppointment(r.db.WithContext(ctx)).First(&ap, id).Error; err != nil {
		return nil, dbErr(err, "appointment", "get")
	}
	return &ap, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(ctx context.Context, ap *models.Appointment) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error,
		"appointment", "create",
	)
}

func (r *AppointmentGormRepository) Update(ctx context.Context, ap *models.Appointment) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(ap).Error,
		"appointment", "update",
	)
}

func (r *AppointmentGormRepository) Mutate(
	ctx context.Context,
	id uint,
	fn func(ap *models.Appointment) error,
) (*models.Appointment, error) {

	var fnErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ap models.Appointment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ap, id).Error; err != nil {
			return err
		}

		if fnErr = fn(&ap); fnErr != nil {
			return fnErr
		}

		return tx.Omit(clause.Associations).Save(&ap).Error
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, dbErr(err, "appointment", "mutate")
	}

	return r.GetByID(ctx, id)
}

func (r *AppointmentGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "appointment", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "appointment", "delete")
	}
	return nil
}

func (r *AppointmentGormRepository) CountMedicalRecords(ctx context.Context, id uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.MedicalRecord{}).
		Where("appointment_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, dbErr(err, "appointment", "count medical records")
	}
	return n, nil
}

// --------------------------------------------------
// Agregados
// --------------------------------------------------

func (r *AppointmentGormRepository) Count(ctx context.Context, spec query.Spec) (int64, error) {
	return count[models.Appointment](ctx, r.db, appointmentRenderer, spec, "appointment")
}

func (r *AppointmentGormRepository) SumFinalPrice(ctx context.Context, spec query.Spec) (float64, error) {
	return sum[models.Appointment](ctx, r.db, appointmentRenderer, spec, "appointments.final_price", "appointment")
}

func (r *AppointmentGormRepository) CountWithoutMedicalRecord(
	ctx context.Context,
	spec query.Spec,
) (int64, error) {

	q, err := appointmentRenderer.filter(r.db.WithContext(ctx).Model(&models.Appointment{}), spec)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := q.
		Where("NOT EXISTS (SELECT 1 FROM medical_records mr WHERE mr.appointment_id = appointments.id)").
		Count(&n).Error; err != nil {
		return 0, dbErr(err, "appointment", "count without record")
	}
	return n, nil
}

func (r *AppointmentGormRepository) ServiceUsage(
	ctx context.Context,
	spec query.Spec,
	limit int,
) ([]domain.ServiceUsage, error) {

	q, err := appointmentRenderer.filter(r.db.WithContext(ctx).Model(&models.Appointment{}), spec)
	if err != nil {
		return nil, err
	}

	q = q.
		Select(`appointments.service_id AS service_id,
			services.name AS service_name,
			service_categories.segment AS segment,
			COUNT(*) AS count,
			COALESCE(SUM(CASE WHEN appointments.status = 'completed' THEN appointments.final_price ELSE 0 END), 0) AS revenue`).
		Joins("JOIN services ON services.id = appointments.service_id").
		Joins("JOIN service_categories ON service_categories.id = services.service_category_id").
		Group("appointments.service_id, services.name, service_categories.segment").
		Order("count DESC, service_name ASC")

	if limit > 0 {
		q = q.Limit(limit)
	}

	out := []domain.ServiceUsage{}
	if err := q.Scan(&out).Error; err != nil {
		return nil, dbErr(err, "appointment", "service usage")
	}
	return out, nil
}

var _ domain.Repository = (*AppointmentGormRepository)(nil)
