package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/dto"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// eventDuration é só para desenhar o calendário; citas não têm duração.
const eventDuration = time.Hour

func (s *Service) Calendar(
	ctx context.Context,
	p *access.Principal,
	year int,
	month int,
) ([]dto.CalendarEventDTO, error) {

	if err := s.guard.Authorize(p, access.ViewAppointments); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 || year < 2000 {
		return nil, httperr.FieldError("month", "Mes inválido.")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Local())
	end := start.AddDate(0, 1, 0)

	spec, err := s.segments.Scope(
		query.New(query.DateRange{Field: "appointment_date", From: &start, To: &end}).
			OrderBy("appointment_date", false),
		p,
	)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CalendarEventDTO, 0, len(page.Items))
	for _, ap := range page.Items {
		ev := dto.CalendarEventDTO{
			ID:     ap.ID,
			Start:  ap.AppointmentDate,
			End:    ap.AppointmentDate.Add(eventDuration),
			Status: ap.Status,
		}
		if ap.Client != nil {
			ev.ClientName = ap.Client.Name
		}
		if ap.Pet != nil {
			ev.PetName = ap.Pet.Name
		}
		if ap.Service != nil {
			ev.Title = fmt.Sprintf("%s - %s", ap.Service.Name, ev.PetName)
			if ap.Service.Category != nil {
				ev.Segment = string(ap.Service.Category.Segment)
			}
		}
		out = append(out, ev)
	}

	return out, nil
}
