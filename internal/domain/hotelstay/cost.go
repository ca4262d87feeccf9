package hotelstay

import (
	"math"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// Nights conta dias inteiros de calendário entre as datas, ignorando hora e
// fuso (evita distorção de horário de verão).
func Nights(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(out.Sub(in).Hours() / 24)
}

func TotalCost(dailyRate float64, checkIn, checkOut time.Time) float64 {
	return math.Round(dailyRate*float64(Nights(checkIn, checkOut))*100) / 100
}

// Price valida datas e tarifa e recalcula total_cost.
func Price(hs *models.HotelStay) error {
	fields := map[string]string{}

	if Nights(hs.CheckInDate, hs.CheckOutDate) < 1 {
		fields["check_out_date"] = "La fecha de salida debe ser posterior a la de entrada."
	}
	if hs.DailyRate < 0 {
		fields["daily_rate"] = "La tarifa diaria no puede ser negativa."
	}
	if len(fields) > 0 {
		return httperr.Validation(fields)
	}

	hs.TotalCost = TotalCost(hs.DailyRate, hs.CheckInDate, hs.CheckOutDate)
	return nil
}
