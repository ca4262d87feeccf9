package medical

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

type Input struct {
	PetID          uint    `json:"pet_id" validate:"required"`
	AppointmentID  *uint   `json:"appointment_id"`
	VeterinarianID uint    `json:"veterinarian_id" validate:"required"`
	Diagnosis      string  `json:"diagnosis" validate:"required"`
	Treatment      string  `json:"treatment" validate:"required"`
	Medications    string  `json:"medications"`
	Observations   string  `json:"observations"`
	NextVisit      *string `json:"next_visit"`
}

func InputOf(r *models.MedicalRecord) Input {
	in := Input{
		PetID:          r.PetID,
		AppointmentID:  r.AppointmentID,
		VeterinarianID: r.VeterinarianID,
		Diagnosis:      r.Diagnosis,
		Treatment:      r.Treatment,
		Medications:    r.Medications,
		Observations:   r.Observations,
	}
	if r.NextVisit != nil {
		d := r.NextVisit.Format("2006-01-02")
		in.NextVisit = &d
	}
	return in
}

func (in Input) normalized() Input {
	in.Diagnosis = strings.TrimSpace(in.Diagnosis)
	in.Treatment = strings.TrimSpace(in.Treatment)
	in.Medications = strings.TrimSpace(in.Medications)
	in.Observations = strings.TrimSpace(in.Observations)
	if in.NextVisit != nil && strings.TrimSpace(*in.NextVisit) == "" {
		in.NextVisit = nil
	}
	if in.AppointmentID != nil && *in.AppointmentID == 0 {
		in.AppointmentID = nil
	}
	return in
}

// nextVisit exige data posterior a hoje.
func (in Input) nextVisit(now time.Time) (*time.Time, error) {
	if in.NextVisit == nil {
		return nil, nil
	}
	d, err := timezone.ParseDate(strings.TrimSpace(*in.NextVisit))
	if err != nil {
		return nil, httperr.FieldError("next_visit", "Fecha inválida, use AAAA-MM-DD.")
	}
	if !d.After(timezone.StartOfDay(now)) {
		return nil, httperr.FieldError("next_visit", "La próxima visita debe ser posterior a hoy.")
	}
	return &d, nil
}

func (in Input) apply(r *models.MedicalRecord, next *time.Time) {
	r.PetID = in.PetID
	r.AppointmentID = in.AppointmentID
	r.VeterinarianID = in.VeterinarianID
	r.Diagnosis = in.Diagnosis
	r.Treatment = in.Treatment
	r.Medications = in.Medications
	r.Observations = in.Observations
	r.NextVisit = next
}

type ListFilter struct {
	Search         string
	PetID          uint
	VeterinarianID uint
	From           string
	To             string
	Page           int
	PerPage        int
}
