package hotelstay

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
	PetID               uint     `json:"pet_id" validate:"required"`
	CheckInDate         string   `json:"check_in_date" validate:"required"`
	CheckOutDate        string   `json:"check_out_date" validate:"required"`
	RoomType            string   `json:"room_type" validate:"required,oneof=standard premium deluxe"`
	SpecialRequirements string   `json:"special_requirements"`
	DailyRate           *float64 `json:"daily_rate" validate:"required,gte=0"`
}

func InputOf(hs *models.HotelStay) Input {
	rate := hs.DailyRate
	return Input{
		ClientID:            hs.ClientID,
		PetID:               hs.PetID,
		CheckInDate:         hs.CheckInDate.Format("2006-01-02"),
		CheckOutDate:        hs.CheckOutDate.Format("2006-01-02"),
		RoomType:            hs.RoomType,
		SpecialRequirements: hs.SpecialRequirements,
		DailyRate:           &rate,
	}
}

func (in Input) normalized() Input {
	in.CheckInDate = strings.TrimSpace(in.CheckInDate)
	in.CheckOutDate = strings.TrimSpace(in.CheckOutDate)
	in.RoomType = strings.ToLower(strings.TrimSpace(in.RoomType))
	in.SpecialRequirements = strings.TrimSpace(in.SpecialRequirements)
	return in
}

func (in Input) dates() (time.Time, time.Time, error) {
	fields := map[string]string{}

	checkIn, err := timezone.ParseDate(in.CheckInDate)
	if err != nil {
		fields["check_in_date"] = "Fecha inválida, use AAAA-MM-DD."
	}
	checkOut, err := timezone.ParseDate(in.CheckOutDate)
	if err != nil {
		fields["check_out_date"] = "Fecha inválida, use AAAA-MM-DD."
	}

	if len(fields) > 0 {
		return time.Time{}, time.Time{}, httperr.Validation(fields)
	}
	return checkIn, checkOut, nil
}

func (in Input) apply(hs *models.HotelStay, checkIn, checkOut time.Time) {
	hs.ClientID = in.ClientID
	hs.PetID = in.PetID
	hs.CheckInDate = checkIn
	hs.CheckOutDate = checkOut
	hs.RoomType = in.RoomType
	hs.SpecialRequirements = in.SpecialRequirements
	hs.DailyRate = *in.DailyRate
}

// ======================================================
// FILTERS
// ======================================================

type ListFilter struct {
	Search   string
	Status   string
	RoomType string
	From     string
	To       string
	Page     int
	PerPage  int
}
