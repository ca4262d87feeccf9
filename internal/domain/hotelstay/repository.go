package hotelstay

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Repository interface {
	List(
		ctx context.Context,
		spec query.Spec,
	) (query.Page[models.HotelStay], error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.HotelStay, error)

	Create(
		ctx context.Context,
		hs *models.HotelStay,
	) error

	Update(
		ctx context.Context,
		hs *models.HotelStay,
	) error

	// Mutate trava a linha (SELECT ... FOR UPDATE); dois check-ins
	// concorrentes não passam ambos.
	Mutate(
		ctx context.Context,
		id uint,
		fn func(hs *models.HotelStay) error,
	) (*models.HotelStay, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	Count(
		ctx context.Context,
		spec query.Spec,
	) (int64, error)

	SumTotalCost(
		ctx context.Context,
		spec query.Spec,
	) (float64, error)
}
