package user

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Repository interface {
	List(ctx context.Context, spec query.Spec) (query.Page[models.User], error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
}
