package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

var identificationTypes = map[string]bool{
	"CC":  true,
	"CE":  true,
	"NIT": true,
	"PP":  true,
}

func ValidIdentificationType(t string) bool {
	return identificationTypes[strings.ToUpper(t)]
}

// Dependents conta o que impede a exclusão de um cliente.
type Dependents struct {
	Pets         int64 `json:"pets"`
	Appointments int64 `json:"appointments"`
	HotelStays   int64 `json:"hotel_stays"`
}

func (d Dependents) Any() bool {
	return d.Pets > 0 || d.Appointments > 0 || d.HotelStays > 0
}

type Repository interface {
	List(ctx context.Context, spec query.Spec) (query.Page[models.Client], error)
	GetByID(ctx context.Context, id uint) (*models.Client, error)

	Create(ctx context.Context, c *models.Client) error
	Update(ctx context.Context, c *models.Client) error
	Delete(ctx context.Context, id uint) error

	// Taken verifica unicidade de email ou identification_number.
	Taken(ctx context.Context, field string, value string, excludeID uint) (bool, error)
	CountDependents(ctx context.Context, id uint) (Dependents, error)
	Count(ctx context.Context, spec query.Spec) (int64, error)
}
