package vaccination

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Repository interface {
	List(ctx context.Context, spec query.Spec) (query.Page[models.Vaccination], error)
	GetByID(ctx context.Context, id uint) (*models.Vaccination, error)
	Create(ctx context.Context, v *models.Vaccination) error
	Update(ctx context.Context, v *models.Vaccination) error
	Delete(ctx context.Context, id uint) error
}
