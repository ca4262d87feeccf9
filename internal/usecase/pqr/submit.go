package pqr

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/pqr"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// Submit é o formulário público; não exige usuário. O limite por IP fica
// no middleware.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*models.Pqr, error) {
	in = in.normalized()

	if err := validators.Struct(in); err != nil {
		s.observe("invalid")
		return nil, err
	}
	if s.checkDomain != nil && !s.checkDomain(in.ClientEmail) {
		s.observe("invalid")
		return nil, httperr.FieldError("client_email", "El dominio del correo no existe.")
	}

	p := &models.Pqr{
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Type:        in.Type,
		Subject:     in.Subject,
		Description: in.Description,
		Status:      string(domain.StatusPending),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.observe("error")
		return nil, err
	}

	s.observe("accepted")
	s.audit.Record(ctx, audit.By(nil, "pqr_submitted", "pqr", p.ID).With(map[string]string{
		"type": p.Type,
	}))
	return p, nil
}
