package medical

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Repository interface {
	List(ctx context.Context, spec query.Spec) (query.Page[models.MedicalRecord], error)
	GetByID(ctx context.Context, id uint) (*models.MedicalRecord, error)
	Create(ctx context.Context, r *models.MedicalRecord) error
	Update(ctx context.Context, r *models.MedicalRecord) error
	Delete(ctx context.Context, id uint) error
}
