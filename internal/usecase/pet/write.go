package pet

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

func (s *Service) validate(ctx context.Context, in Input) (Input, error) {
	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return in, err
	}
	if _, err := s.lookup.GetClient(ctx, in.ClientID); err != nil {
		if httperr.IsNotFound(err) {
			return in, httperr.FieldError("client_id", "El cliente no existe.")
		}
		return in, err
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, p *access.Principal, in Input) (*models.Pet, error) {
	if err := s.guard.Authorize(p, access.ManagePets); err != nil {
		return nil, err
	}

	in, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	birth, err := in.birthDate(s.now())
	if err != nil {
		return nil, err
	}

	pet := &models.Pet{}
	in.apply(pet, birth)

	if err := s.repo.Create(ctx, pet); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "pet_created", "pet", pet.ID))
	return pet, nil
}

func (s *Service) Update(ctx context.Context, p *access.Principal, id uint, in Input) (*models.Pet, error) {
	if err := s.guard.Authorize(p, access.ManagePets); err != nil {
		return nil, err
	}

	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in, err = s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	birth, err := in.birthDate(s.now())
	if err != nil {
		return nil, err
	}

	in.apply(pet, birth)
	pet.Client = nil

	if err := s.repo.Update(ctx, pet); err != nil {
		return nil, err
	}

	s.withPhotoURL(pet)
	s.audit.Record(ctx, audit.By(p, "pet_updated", "pet", pet.ID))
	return pet, nil
}

// Delete remove a mascota e as vacinas; citas, hospedagens e prontuários
// bloqueiam a exclusão. A foto sai depois, sem bloquear.
func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.guard.Authorize(p, access.ManagePets); err != nil {
		return err
	}

	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deps, err := s.repo.CountDependents(ctx, id)
	if err != nil {
		return err
	}
	if deps.Any() {
		return httperr.ErrConflict(
			"pet_has_dependents",
			"No se puede eliminar la mascota porque tiene citas, hospedajes o registros médicos.",
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.removePhoto(ctx, pet.Photo)
	s.audit.Record(ctx, audit.By(p, "pet_deleted", "pet", id).With(map[string]string{"name": pet.Name}))
	return nil
}

// removePhoto é best-effort: falha no storage só gera log.
func (s *Service) removePhoto(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil {
		zap.L().Warn("pet photo delete failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
