package hotelstay

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/dto"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.HotelStay], error) {

	if err := s.guard.Authorize(p, access.ViewHotelStays); err != nil {
		return query.Page[models.HotelStay]{}, err
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.Status != "" {
		spec = spec.And(query.Eq{Field: "status", Value: f.Status})
	}
	if f.RoomType != "" {
		spec = spec.And(query.Eq{Field: "room_type", Value: f.RoomType})
	}

	var from, to *time.Time
	if f.From != "" {
		d, err := timezone.ParseDate(f.From)
		if err != nil {
			return query.Page[models.HotelStay]{}, httperr.FieldError("from", "Fecha inválida, use AAAA-MM-DD.")
		}
		from = &d
	}
	if f.To != "" {
		d, err := timezone.ParseDate(f.To)
		if err != nil {
			return query.Page[models.HotelStay]{}, httperr.FieldError("to", "Fecha inválida, use AAAA-MM-DD.")
		}
		d = d.AddDate(0, 0, 1)
		to = &d
	}
	if from != nil || to != nil {
		spec = spec.And(query.DateRange{Field: "check_in_date", From: from, To: to})
	}

	spec, err := s.segments.Scope(spec.OrderBy("check_in_date", true), p)
	if err != nil {
		return query.Page[models.HotelStay]{}, err
	}

	return s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
}

func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.HotelStay, error) {
	if err := s.guard.AuthorizeSegment(p, access.ViewHotelStays, models.SegmentHotel); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Calendar lista as hospedagens que tocam o mês.
func (s *Service) Calendar(
	ctx context.Context,
	p *access.Principal,
	year int,
	month int,
) ([]dto.CalendarEventDTO, error) {

	if err := s.guard.Authorize(p, access.ViewHotelStays); err != nil {
		return nil, err
	}
	if month < 1 || month > 12 || year < 2000 {
		return nil, httperr.FieldError("month", "Mes inválido.")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Local())
	end := start.AddDate(0, 1, 0)

	spec, err := s.segments.Scope(
		query.New(
			query.DateRange{Field: "check_in_date", To: &end},
			query.DateRange{Field: "check_out_date", From: &start},
		).OrderBy("check_in_date", false),
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
	for _, hs := range page.Items {
		ev := dto.CalendarEventDTO{
			ID:      hs.ID,
			Start:   hs.CheckInDate,
			End:     hs.CheckOutDate,
			Status:  hs.Status,
			Segment: string(models.SegmentHotel),
		}
		if hs.Client != nil {
			ev.ClientName = hs.Client.Name
		}
		if hs.Pet != nil {
			ev.PetName = hs.Pet.Name
		}
		ev.Title = fmt.Sprintf("%s (%s)", ev.PetName, hs.RoomType)
		out = append(out, ev)
	}

	return out, nil
}
