package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type PqrGormRepository struct {
	db *gorm.DB
}

func NewPqrGormRepository(db *gorm.DB) *PqrGormRepository {
	return &PqrGormRepository{db: db}
}

func (r *PqrGormRepository) List(
	ctx context.Context,
	spec query.Spec,
) (query.Page[models.Pqr], error) {
	return list[models.Pqr](ctx, r.db, pqrRenderer, spec, "pqr", func(q *gorm.DB) *gorm.DB {
		return q.Preload("Assignee")
	})
}

func (r *PqrGormRepository) GetByID(ctx context.Context, id uint) (*models.Pqr, error) {
	var p models.Pqr
	if err := r.db.WithContext(ctx).Preload("Assignee").First(&p, id).Error; err != nil {
		return nil, dbErr(err, "pqr", "get")
	}
	return &p, nil
}

func (r *PqrGormRepository) Create(ctx context.Context, p *models.Pqr) error {
	return dbErr(r.db.WithContext(ctx).Omit("Assignee").Create(p).Error, "pqr", "create")
}

func (r *PqrGormRepository) Mutate(
	ctx context.Context,
	id uint,
	fn func(p *models.Pqr) error,
) (*models.Pqr, error) {

	var fnErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p models.Pqr
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&p, id).Error; err != nil {
			return err
		}

		if fnErr = fn(&p); fnErr != nil {
			return fnErr
		}

		return tx.Omit("Assignee").Save(&p).Error
	})
	if fnErr != nil {
		return nil, fnErr
	}
	if err != nil {
		return nil, dbErr(err, "pqr", "mutate")
	}

	return r.GetByID(ctx, id)
}

func (r *PqrGormRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Pqr{}, id)
	if res.Error != nil {
		return dbErr(res.Error, "pqr", "delete")
	}
	if res.RowsAffected == 0 {
		return dbErr(gorm.ErrRecordNotFound, "pqr", "delete")
	}
	return nil
}

func (r *PqrGormRepository) Count(ctx context.Context, spec query.Spec) (int64, error) {
	return count[models.Pqr](ctx, r.db, pqrRenderer, spec, "pqr")
}

var _ domain.Repository = (*PqrGormRepository)(nil)
