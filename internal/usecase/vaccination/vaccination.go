package vaccination

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// ======================================================
// READ
// ======================================================

func (s *Service) ListByPet(ctx context.Context, p *access.Principal, petID uint) ([]models.Vaccination, error) {
	if err := s.guard.AuthorizeSegment(p, access.ViewVaccinations, segment); err != nil {
		return nil, err
	}
	if _, err := s.lookup.GetPet(ctx, petID); err != nil {
		return nil, err
	}

	spec, err := s.segments.Scope(
		query.New(query.Eq{Field: "pet_id", Value: petID}).OrderBy("application_date", true),
		p,
	)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.Vaccination, error) {
	if err := s.guard.AuthorizeSegment(p, access.ViewVaccinations, segment); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

// Due lista as doses previstas de hoje até days dias à frente.
func (s *Service) Due(ctx context.Context, p *access.Principal, days int) ([]models.Vaccination, error) {
	if err := s.guard.AuthorizeSegment(p, access.ViewVaccinations, segment); err != nil {
		return nil, err
	}
	if days <= 0 {
		days = DefaultDueDays
	}

	from := timezone.StartOfDay(s.now())
	to := from.AddDate(0, 0, days+1)

	spec, err := s.segments.Scope(
		query.New(query.DateRange{Field: "next_dose_date", From: &from, To: &to}).
			OrderBy("next_dose_date", false),
		p,
	)
	if err != nil {
		return nil, err
	}

	page, err := s.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// ======================================================
// WRITE
// ======================================================

func (s *Service) Create(
	ctx context.Context,
	p *access.Principal,
	petID uint,
	in Input,
) (*models.Vaccination, error) {

	if err := s.guard.AuthorizeSegment(p, access.ManageVaccinations, segment); err != nil {
		return nil, err
	}
	if _, err := s.lookup.GetPet(ctx, petID); err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	applied, next, err := in.dates(s.now())
	if err != nil {
		return nil, err
	}

	v := &models.Vaccination{PetID: petID}
	in.apply(v, applied, next)

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "vaccination_created", "vaccination", v.ID))
	return v, nil
}

func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in Input,
) (*models.Vaccination, error) {

	if err := s.guard.AuthorizeSegment(p, access.ManageVaccinations, segment); err != nil {
		return nil, err
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.normalized()
	if err := validators.Struct(in); err != nil {
		return nil, err
	}
	applied, next, err := in.dates(s.now())
	if err != nil {
		return nil, err
	}

	in.apply(v, applied, next)
	v.Pet = nil

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "vaccination_updated", "vaccination", v.ID))
	return v, nil
}

func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.guard.AuthorizeSegment(p, access.ManageVaccinations, segment); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.By(p, "vaccination_deleted", "vaccination", id))
	return nil
}
