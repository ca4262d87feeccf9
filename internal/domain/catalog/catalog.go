package catalog

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context, spec query.Spec) (query.Page[models.Service], error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
	DeleteService(ctx context.Context, id uint) error
	CountServiceAppointments(ctx context.Context, id uint) (int64, error)
	CountServices(ctx context.Context, spec query.Spec) (int64, error)

	// -------- Categories --------
	ListCategories(ctx context.Context, spec query.Spec) ([]models.ServiceCategory, error)
	GetCategory(ctx context.Context, id uint) (*models.ServiceCategory, error)
	CreateCategory(ctx context.Context, c *models.ServiceCategory) error

	// ActiveCatalog devolve categorias com os serviços ativos, opcionalmente
	// de um único segmento.
	ActiveCatalog(ctx context.Context, segment *models.Segment) ([]models.ServiceCategory, error)
}
