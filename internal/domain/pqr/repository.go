package pqr

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Repository interface {
	List(
		ctx context.Context,
		spec query.Spec,
	) (query.Page[models.Pqr], error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Pqr, error)

	Create(
		ctx context.Context,
		p *models.Pqr,
	) error

	Mutate(
		ctx context.Context,
		id uint,
		fn func(p *models.Pqr) error,
	) (*models.Pqr, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	Count(
		ctx context.Context,
		spec query.Spec,
	) (int64, error)
}
