package vaccination

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

type Input struct {
	VaccineName     string  `json:"vaccine_name" validate:"required,max=255"`
	ApplicationDate string  `json:"application_date" validate:"required"`
	NextDoseDate    *string `json:"next_dose_date"`
	Observations    string  `json:"observations"`
}

func InputOf(v *models.Vaccination) Input {
	in := Input{
		VaccineName:     v.VaccineName,
		ApplicationDate: v.ApplicationDate.Format("2006-01-02"),
		Observations:    v.Observations,
	}
	if v.NextDoseDate != nil {
		d := v.NextDoseDate.Format("2006-01-02")
		in.NextDoseDate = &d
	}
	return in
}

func (in Input) normalized() Input {
	in.VaccineName = strings.TrimSpace(in.VaccineName)
	in.ApplicationDate = strings.TrimSpace(in.ApplicationDate)
	in.Observations = strings.TrimSpace(in.Observations)
	if in.NextDoseDate != nil && strings.TrimSpace(*in.NextDoseDate) == "" {
		in.NextDoseDate = nil
	}
	return in
}

// dates: aplicação até hoje; próxima dose depois da aplicação.
func (in Input) dates(now time.Time) (time.Time, *time.Time, error) {
	applied, err := timezone.ParseDate(in.ApplicationDate)
	if err != nil {
		return time.Time{}, nil, httperr.FieldError("application_date", "Fecha inválida, use AAAA-MM-DD.")
	}
	if applied.After(timezone.StartOfDay(now)) {
		return time.Time{}, nil, httperr.FieldError("application_date", "La fecha de aplicación no puede ser futura.")
	}

	if in.NextDoseDate == nil {
		return applied, nil, nil
	}
	next, err := timezone.ParseDate(strings.TrimSpace(*in.NextDoseDate))
	if err != nil {
		return time.Time{}, nil, httperr.FieldError("next_dose_date", "Fecha inválida, use AAAA-MM-DD.")
	}
	if !next.After(applied) {
		return time.Time{}, nil, httperr.FieldError("next_dose_date", "La próxima dosis debe ser posterior a la aplicación.")
	}
	return applied, &next, nil
}

func (in Input) apply(v *models.Vaccination, applied time.Time, next *time.Time) {
	v.VaccineName = in.VaccineName
	v.ApplicationDate = applied
	v.NextDoseDate = next
	v.Observations = in.Observations
}
