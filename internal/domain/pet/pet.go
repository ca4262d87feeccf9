package pet

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"

	MaxWeight = 999.99
)

type Dependents struct {
	Appointments   int64 `json:"appointments"`
	HotelStays     int64 `json:"hotel_stays"`
	MedicalRecords int64 `json:"medical_records"`
}

func (d Dependents) Any() bool {
	return d.Appointments > 0 || d.HotelStays > 0 || d.MedicalRecords > 0
}

type BreedCount struct {
	Species string `json:"species" csv:"especie"`
	Breed   string `json:"breed" csv:"raza"`
	Total   int64  `json:"total" csv:"total"`
}

type Repository interface {
	List(ctx context.Context, spec query.Spec) (query.Page[models.Pet], error)
	GetByID(ctx context.Context, id uint) (*models.Pet, error)

	Create(ctx context.Context, p *models.Pet) error
	Update(ctx context.Context, p *models.Pet) error
	Delete(ctx context.Context, id uint) error

	CountDependents(ctx context.Context, id uint) (Dependents, error)
	Count(ctx context.Context, spec query.Spec) (int64, error)
	BreedStats(ctx context.Context) ([]BreedCount, error)
}
