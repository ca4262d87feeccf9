package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/client"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.Client], error) {
	return list[models.Client](ctx, r.db, clientRenderer, spec, "client", nil)
}

func (r *ClientGormRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).
		Preload("Pets", func(db *gorm.DB) *gorm.DB { return db.Order("pets.name ASC") }).
		First(&c, id).Error; err != nil {
		return nil, dbErr(err, "client", "get")
	}
	return &c, nil
}

func (r *ClientGormRepository) Create(ctx context.Context, c *models.Client) error {
	return dbErr(r.db.WithContext(ctx).Omit("Pets").Create(c).Error, "client", "create")
}

func (r *ClientGormRepository) Update(ctx context.Context, c *models.Client) error {
	return dbErr(r.db.WithContext(ctx).Omit("Pets").Save(c).Error, "client", "update")
}

func (r *ClientGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "client", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "client", "delete")
	}
	return nil
}

func (r *ClientGormRepository) Taken(
	ctx context.Context,
	field string,
	value string,
	excludeID uint,
) (bool, error) {

	switch field {
	case "email", "identification_number":
	default:
		return false, fmt.Errorf("unique check on unknown field %q", field)
	}

	q := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where(field+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, dbErr(err, "client", "unique check")
	}
	return n > 0, nil
}

func (r *ClientGormRepository) CountDependents(ctx context.Context, id uint) (domain.Dependents, error) {
	var d domain.Dependents
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Pet{}).Where("client_id = ?", id).Count(&d.Pets).Error; err != nil {
		return d, dbErr(err, "client", "count pets")
	}
	if err := db.Model(&models.Appointment{}).Where("client_id = ?", id).Count(&d.Appointments).Error; err != nil {
		return d, dbErr(err, "client", "count appointments")
	}
	if err := db.Model(&models.HotelStay{}).Where("client_id = ?", id).Count(&d.HotelStays).Error; err != nil {
		return d, dbErr(err, "client", "count hotel stays")
	}
	return d, nil
}

func (r *ClientGormRepository) Count(ctx context.Context, spec query.Spec) (int64, error) {
	return count[models.Client](ctx, r.db, clientRenderer, spec, "client")
}

var _ domain.Repository = (*ClientGormRepository)(nil)
