package pqr

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// Update é a edição do gerente. PQR fechada não aceita edição. resolved_at
// só é carimbado ao entrar em resolved; repetir resolved não mexe no carimbo.
func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in UpdateInput,
) (*models.Pqr, error) {

	if err := s.guard.Authorize(p, access.ManagePqrs); err != nil {
		return nil, err
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if in.AssignedTo != nil {
		if _, err := ownership.Staff(ctx, s.lookup, *in.AssignedTo, "assigned_to"); err != nil {
			return nil, err
		}
	}

	out, err := s.repo.Mutate(ctx, id, func(pqr *models.Pqr) error {
		if domain.Status(pqr.Status).Terminal() {
			return httperr.ErrBusinessMsg("invalid_state", "La PQR está cerrada.")
		}
		if in.AssignedTo != nil {
			uid := *in.AssignedTo
			if in.Status == nil {
				// sem status explícito, atribuir segue a mesma regra do Assign
				if err := domain.Assign(pqr, uid, s.now()); err != nil {
					return err
				}
			} else {
				pqr.AssignedTo = &uid
			}
		}
		if in.Response != nil {
			pqr.Response = strings.TrimSpace(*in.Response)
		}
		if in.Status != nil {
			st, _ := domain.ParseStatus(*in.Status)
			return domain.Transition(pqr, st, s.now())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "pqr_updated", "pqr", out.ID))
	return out, nil
}

// Assign (re)atribui em qualquer status não terminal.
func (s *Service) Assign(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in AssignInput,
) (*models.Pqr, error) {

	if err := s.guard.Authorize(p, access.ManagePqrs); err != nil {
		return nil, err
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if _, err := ownership.Staff(ctx, s.lookup, in.UserID, "user_id"); err != nil {
		return nil, err
	}

	out, err := s.repo.Mutate(ctx, id, func(pqr *models.Pqr) error {
		return domain.Assign(pqr, in.UserID, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "pqr_assigned", "pqr", out.ID).With(map[string]uint{"user_id": in.UserID}))
	return out, nil
}

// Respond é do responsável ou de quem gerencia PQRs.
func (s *Service) Respond(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in RespondInput,
) (*models.Pqr, error) {

	if err := s.guard.Authorize(p, access.RespondPqrs); err != nil {
		return nil, err
	}
	in.Response = strings.TrimSpace(in.Response)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	out, err := s.repo.Mutate(ctx, id, func(pqr *models.Pqr) error {
		if err := s.ownsOrManages(p, pqr); err != nil {
			return err
		}
		return domain.Respond(pqr, in.Response, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "pqr_responded", "pqr", out.ID))
	return out, nil
}

func (s *Service) Close(ctx context.Context, p *access.Principal, id uint) (*models.Pqr, error) {
	if err := s.guard.Authorize(p, access.RespondPqrs); err != nil {
		return nil, err
	}

	out, err := s.repo.Mutate(ctx, id, func(pqr *models.Pqr) error {
		if err := s.ownsOrManages(p, pqr); err != nil {
			return err
		}
		return domain.Close(pqr, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "pqr_closed", "pqr", out.ID))
	return out, nil
}

func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.guard.Authorize(p, access.ManagePqrs); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.By(p, "pqr_deleted", "pqr", id))
	return nil
}
