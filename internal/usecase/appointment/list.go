package appointment

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.Appointment], error) {

	if err := s.guard.Authorize(p, access.ViewAppointments); err != nil {
		return query.Page[models.Appointment]{}, err
	}

	from, to, err := dateRange(f.From, f.To)
	if err != nil {
		return query.Page[models.Appointment]{}, httperr.FieldError("date", "Fecha inválida, use AAAA-MM-DD.")
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.Status != "" {
		spec = spec.And(query.Eq{Field: "status", Value: f.Status})
	}
	if f.ServiceID != 0 {
		spec = spec.And(query.Eq{Field: "service_id", Value: f.ServiceID})
	}
	if f.UserID != 0 {
		spec = spec.And(query.Eq{Field: "user_id", Value: f.UserID})
	}
	if from != nil || to != nil {
		spec = spec.And(query.DateRange{Field: "appointment_date", From: from, To: to})
	}

	spec, err = s.segments.Scope(spec.OrderBy("appointment_date", true), p)
	if err != nil {
		return query.Page[models.Appointment]{}, err
	}

	return s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
}

// Get nega citas de serviços fora dos segmentos do usuário.
func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.Appointment, error) {
	if err := s.guard.Authorize(p, access.ViewAppointments); err != nil {
		return nil, err
	}
	ap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ViewAppointments, segmentOf(ap)); err != nil {
		return nil, err
	}
	return ap, nil
}

func segmentOf(ap *models.Appointment) models.Segment {
	if ap.Service == nil || ap.Service.Category == nil {
		return ""
	}
	return ap.Service.Category.Segment
}
