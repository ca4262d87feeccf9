package pet

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	ClientID            uint     `json:"client_id" validate:"required"`
	Name                string   `json:"name" validate:"required,max=255"`
	Species             string   `json:"species" validate:"required,max=100"`
	Breed               string   `json:"breed" validate:"required,max=100"`
	BirthDate           *string  `json:"birth_date"`
	Gender              string   `json:"gender" validate:"required,oneof=male female"`
	Weight              *float64 `json:"weight" validate:"omitempty,gte=0,lte=999.99"`
	MedicalObservations string   `json:"medical_observations"`
}

func InputOf(p *models.Pet) Input {
	in := Input{
		ClientID:            p.ClientID,
		Name:                p.Name,
		Species:             p.Species,
		Breed:               p.Breed,
		Gender:              p.Gender,
		Weight:              p.Weight,
		MedicalObservations: p.MedicalObservations,
	}
	if p.BirthDate != nil {
		d := p.BirthDate.Format("2006-01-02")
		in.BirthDate = &d
	}
	return in
}

func (in Input) normalized() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Species = strings.TrimSpace(in.Species)
	in.Breed = strings.TrimSpace(in.Breed)
	in.Gender = strings.ToLower(strings.TrimSpace(in.Gender))
	in.MedicalObservations = strings.TrimSpace(in.MedicalObservations)
	if in.BirthDate != nil && strings.TrimSpace(*in.BirthDate) == "" {
		in.BirthDate = nil
	}
	return in
}

// birthDate exige data anterior a hoje.
func (in Input) birthDate(now time.Time) (*time.Time, error) {
	if in.BirthDate == nil {
		return nil, nil
	}
	d, err := timezone.ParseDate(strings.TrimSpace(*in.BirthDate))
	if err != nil {
		return nil, httperr.FieldError("birth_date", "Fecha inválida, use AAAA-MM-DD.")
	}
	if !d.Before(timezone.StartOfDay(now)) {
		return nil, httperr.FieldError("birth_date", "La fecha de nacimiento debe ser anterior a hoy.")
	}
	return &d, nil
}

func (in Input) apply(p *models.Pet, birth *time.Time) {
	p.ClientID = in.ClientID
	p.Name = in.Name
	p.Species = in.Species
	p.Breed = in.Breed
	p.BirthDate = birth
	p.Gender = in.Gender
	p.Weight = in.Weight
	p.MedicalObservations = in.MedicalObservations
}

type ListFilter struct {
	Search   string
	Species  string
	ClientID uint
	Page     int
	PerPage  int
}
