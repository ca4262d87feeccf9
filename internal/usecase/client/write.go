package client

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

func (s *Service) Create(
	ctx context.Context,
	p *access.Principal,
	in Input,
) (*models.Client, error) {

	if err := s.guard.Authorize(p, access.ManageClients); err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := s.assertUnique(ctx, in, 0); err != nil {
		return nil, err
	}

	c := &models.Client{}
	in.apply(c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "client_created", "client", c.ID))
	return c, nil
}

func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in Input,
) (*models.Client, error) {

	if err := s.guard.Authorize(p, access.ManageClients); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	if err := s.assertUnique(ctx, in, id); err != nil {
		return nil, err
	}

	in.apply(c)
	c.Pets = nil

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "client_updated", "client", c.ID))
	return c, nil
}

// Delete recusa clientes com mascotas, citas ou hospedagens; a FK RESTRICT
// do banco cobre a corrida entre a contagem e o DELETE.
func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.guard.Authorize(p, access.ManageClients); err != nil {
		return err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deps, err := s.repo.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if deps.Any() {
		return httperr.ErrConflict(
			"client_has_dependents",
			"No se puede eliminar el cliente porque tiene registros asociados.",
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.By(p, "client_deleted", "client", id).With(map[string]string{
		"name":                  c.Name,
		"identification_number": c.IdentificationNumber,
	}))
	return nil
}

// assertUnique é só a checagem amigável; o índice único decide.
func (s *Service) assertUnique(ctx context.Context, in Input, excludeID uint) error {
	fields := map[string]string{}

	taken, err := s.repo.Taken(ctx, "email", in.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		fields["email"] = "El correo ya está registrado."
	}

	taken, err = s.repo.Taken(ctx, "identification_number", in.IdentificationNumber, excludeID)
	if err != nil {
		return err
	}
	if taken {
		fields["identification_number"] = "El número de identificación ya está registrado."
	}

	if len(fields) > 0 {
		return httperr.Validation(fields)
	}
	return nil
}
