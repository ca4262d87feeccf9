package appointment

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// ServiceUsage é a contagem de uso de um serviço num período.
type ServiceUsage struct {
	ServiceID   uint           `json:"service_id"`
	ServiceName string         `json:"service_name"`
	Segment     models.Segment `json:"segment"`
	Count       int64          `json:"count"`
	Revenue     float64        `json:"revenue"`
}

type Repository interface {
	// -------- Leitura --------
	List(
		ctx context.Context,
		spec query.Spec,
	) (query.Page[models.Appointment], error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Escrita --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Mutate trava a linha, aplica fn e grava na mesma transação.
	Mutate(
		ctx context.Context,
		id uint,
		fn func(ap *models.Appointment) error,
	) (*models.Appointment, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	CountMedicalRecords(
		ctx context.Context,
		id uint,
	) (int64, error)

	// -------- Agregados --------
	Count(
		ctx context.Context,
		spec query.Spec,
	) (int64, error)

	SumFinalPrice(
		ctx context.Context,
		spec query.Spec,
	) (float64, error)

	CountWithoutMedicalRecord(
		ctx context.Context,
		spec query.Spec,
	) (int64, error)

	ServiceUsage(
		ctx context.Context,
		spec query.Spec,
		limit int,
	) ([]ServiceUsage, error)
}
