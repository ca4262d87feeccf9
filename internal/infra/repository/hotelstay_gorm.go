package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type HotelStayGormRepository struct {
	db *gorm.DB
}

func NewHotelStayGormRepository(db *gorm.DB) *HotelStayGormRepository {
	return &HotelStayGormRepository{db: db}
}

func preloadHotelStay(q *gorm.DB) *gorm.DB {
	return q.Preload("Client").Preload("Pet")
}

func (r *HotelStayGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.HotelStay], error) {
	return list[models.HotelStay](ctx, r.db, hotelStayRenderer, spec, "hotel_stay", preloadHotelStay)
}

func (r *HotelStayGormRepository) GetByID(ctx context.Context, id uint) (*models.HotelStay, error) {
	var hs models.HotelStay
	if err := preloadHotelStay(r.db.WithContext(ctx)).First(&hs, id).Error; err != nil {
		return nil, dbErr(err, "hotel_stay", "get")
	}
	return &hs, nil
}

func (r *HotelStayGormRepository) Create(ctx context.Context, hs *models.HotelStay) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(hs).Error,
		"hotel_stay", "create",
	)
}

func (r *HotelStayGormRepository) Update(ctx context.Context, hs *models.HotelStay) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(hs).Error,
		"hotel_stay", "update",
	)
}

func (r *HotelStayGormRepository) Mutate(
	ctx context.Context,
	id uint,
	fn func(hs *models.HotelStay) error,
) (*models.HotelStay, error) {

	var fnErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hs models.HotelStay
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&hs, id).Error; err != nil {
			return err
		}

		if fnErr = fn(&hs); fnErr != nil {
			return fnErr
		}

		return tx.Omit(clause.Associations).Save(&hs).Error
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, dbErr(err, "hotel_stay", "mutate")
	}

	return r.GetByID(ctx, id)
}

func (r *HotelStayGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.HotelStay{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "hotel_stay", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "hotel_stay", "delete")
	}
	return nil
}

func (r *HotelStayGormRepository) Count(ctx context.Context, spec query.Spec) (int64, error) {
	return count[models.HotelStay](ctx, r.db, hotelStayRenderer, spec, "hotel_stay")
}

func (r *HotelStayGormRepository) SumTotalCost(ctx context.Context, spec query.Spec) (float64, error) {
	return sum[models.HotelStay](ctx, r.db, hotelStayRenderer, spec, "hotel_stays.total_cost", "hotel_stay")
}

var _ domain.Repository = (*HotelStayGormRepository)(nil)
