package appointment

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// ChangeStatus aplica a transição com a linha travada; duas requisições
// concorrentes não concluem e cancelam a mesma cita.
func (s *Service) ChangeStatus(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in StatusInput,
) (*models.Appointment, error) {

	if err := s.guard.Authorize(p, access.ManageAppointments); err != nil {
		return nil, err
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ManageAppointments, segmentOf(current)); err != nil {
		return nil, err
	}

	to, _ := domain.ParseStatus(in.Status)
	var from string

	ap, err := s.repo.Mutate(ctx, id, func(ap *models.Appointment) error {
		from = ap.Status
		return domain.Transition(ap, to, s.now())
	})
	if err != nil {
		return nil, err
	}

	if from != ap.Status {
		s.audit.Record(ctx, audit.By(p, "appointment_"+ap.Status, "appointment", ap.ID).With(map[string]string{
			"from": from,
			"to":   ap.Status,
		}))
	}
	return ap, nil
}
