package pqr

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// List: quem gerencia PQRs vê todas; os demais só as atribuídas a si.
func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.Pqr], error) {

	if err := s.guard.Authorize(p, access.ViewPqrs); err != nil {
		return query.Page[models.Pqr]{}, err
	}

	spec, err := filterSpec(f)
	if err != nil {
		return query.Page[models.Pqr]{}, err
	}
	if !s.guard.Can(p, access.ManagePqrs) {
		spec = spec.And(query.Eq{Field: "assigned_to", Value: p.UserID})
	}

	return s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
}

// Mine são as PQRs atribuídas ao usuário, inclusive para o gerente.
func (s *Service) Mine(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.Pqr], error) {

	if err := s.guard.Authorize(p, access.ViewPqrs); err != nil {
		return query.Page[models.Pqr]{}, err
	}

	spec, err := filterSpec(f)
	if err != nil {
		return query.Page[models.Pqr]{}, err
	}
	spec = spec.And(query.Eq{Field: "assigned_to", Value: p.UserID})
	return s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
}

// filterSpec: to é inclusivo, então o limite vira o dia seguinte.
func filterSpec(f ListFilter) (query.Spec, error) {
	spec := query.New(query.Search{Term: f.Search})
	if f.Status != "" {
		spec = spec.And(query.Eq{Field: "status", Value: f.Status})
	}
	if f.Type != "" {
		spec = spec.And(query.Eq{Field: "type", Value: f.Type})
	}
	if f.AssignedTo != 0 {
		spec = spec.And(query.Eq{Field: "assigned_to", Value: f.AssignedTo})
	}

	var from, to *time.Time
	if f.From != "" {
		d, err := timezone.ParseDate(f.From)
		if err != nil {
			return query.Spec{}, httperr.FieldError("from", "Fecha inválida, use AAAA-MM-DD.")
		}
		from = &d
	}
	if f.To != "" {
		d, err := timezone.ParseDate(f.To)
		if err != nil {
			return query.Spec{}, httperr.FieldError("to", "Fecha inválida, use AAAA-MM-DD.")
		}
		d = d.AddDate(0, 0, 1)
		to = &d
	}
	if from != nil || to != nil {
		spec = spec.And(query.DateRange{Field: "created_at", From: from, To: to})
	}
	return spec.OrderBy("created_at", true), nil
}

// Get nega, sem devolver dados, PQRs atribuídas a outro usuário.
func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.Pqr, error) {
	if err := s.guard.Authorize(p, access.ViewPqrs); err != nil {
		return nil, err
	}

	pqr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.ownsOrManages(p, pqr); err != nil {
		return nil, err
	}
	return pqr, nil
}

func (s *Service) ownsOrManages(p *access.Principal, pqr *models.Pqr) error {
	if s.guard.Can(p, access.ManagePqrs) {
		return nil
	}
	if pqr.AssignedTo != nil && *pqr.AssignedTo == p.UserID {
		return nil
	}
	return httperr.ErrForbidden("pqr_not_assigned")
}
