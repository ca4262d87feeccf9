package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type Input struct {
	ClientID        uint     `json:"client_id" validate:"required"`
	PetID           uint     `json:"pet_id" validate:"required"`
	ServiceID       uint     `json:"service_id" validate:"required"`
	UserID          uint     `json:"user_id" validate:"required"`
	AppointmentDate string   `json:"appointment_date" validate:"required"`
	Notes           string   `json:"notes"`
	FinalPrice      *float64 `json:"final_price" validate:"omitempty,gte=0"`
}

func InputOf(ap *models.Appointment) Input {
	return Input{
		ClientID:        ap.ClientID,
		PetID:           ap.PetID,
		ServiceID:       ap.ServiceID,
		UserID:          ap.UserID,
		AppointmentDate: ap.AppointmentDate.Format(time.RFC3339),
		Notes:           ap.Notes,
		FinalPrice:      ap.FinalPrice,
	}
}

func (in Input) normalized() Input {
	in.AppointmentDate = strings.TrimSpace(in.AppointmentDate)
	in.Notes = strings.TrimSpace(in.Notes)
	return in
}

func (in Input) apply(ap *models.Appointment, at time.Time) {
	ap.ClientID = in.ClientID
	ap.PetID = in.PetID
	ap.ServiceID = in.ServiceID
	ap.UserID = in.UserID
	ap.AppointmentDate = at
	ap.Notes = in.Notes
	ap.FinalPrice = in.FinalPrice
}

type StatusInput struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

// ======================================================
// FILTERS
// ======================================================

type ListFilter struct {
	Search    string
	Status    string
	ServiceID uint
	UserID    uint
	From      string
	To        string
	Page      int
	PerPage   int
}

// dateRange converte YYYY-MM-DD em [From, To+1 dia).
func dateRange(from, to string) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if from != "" {
		d, err := timezone.ParseDate(from)
		if err != nil {
			return nil, nil, err
		}
		start = &d
	}
	if to != "" {
		d, err := timezone.ParseDate(to)
		if err != nil {
			return nil, nil, err
		}
		d = d.AddDate(0, 0, 1)
		end = &d
	}
	return start, end, nil
}
