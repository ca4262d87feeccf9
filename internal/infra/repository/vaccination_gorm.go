package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/vaccination"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type VaccinationGormRepository struct {
	db *gorm.DB
}

func NewVaccinationGormRepository(db *gorm.DB) *VaccinationGormRepository {
	return &VaccinationGormRepository{db: db}
}

func (r *VaccinationGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.Vaccination], error) {
	return list[models.Vaccination](ctx, r.db, vaccinationRenderer, spec, "vaccination", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Pet.Client")
	})
}

func (r *VaccinationGormRepository) GetByID(ctx context.Context, id uint) (*models.Vaccination, error) {
	var v models.Vaccination
	if err := r.db.WithContext(ctx).Preload("Pet").First(&v, id).Error; err != nil {
		return nil, dbErr(err, "vaccination", "get")
	}
	return &v, nil
}

func (r *VaccinationGormRepository) Create(ctx context.Context, v *models.Vaccination) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error,
		"vaccination", "create",
	)
}

func (r *VaccinationGormRepository) Update(ctx context.Context, v *models.Vaccination) error {
	return dbErr(
		r.db.WithContext(ctx).Omit(clause.Associations).Save(v).Error,
		"vaccination", "update",
	)
}

func (r *VaccinationGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Vaccination{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "vaccination", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "vaccination", "delete")
	}
	return nil
}

var _ domain.Repository = (*VaccinationGormRepository)(nil)
