package medical

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.MedicalRecord], error) {

	if err := s.guard.Authorize(p, access.ViewMedicalRecords); err != nil {
		return query.Page[models.MedicalRecord]{}, err
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.PetID != 0 {
		spec = spec.And(query.Eq{Field: "pet_id", Value: f.PetID})
	}
	if f.VeterinarianID != 0 {
		spec = spec.And(query.Eq{Field: "veterinarian_id", Value: f.VeterinarianID})
	}

	var from, to *time.Time
	if f.From != "" {
		d, err := timezone.ParseDate(f.From)
		if err != nil {
			return query.Page[models.MedicalRecord]{}, httperr.FieldError("from", "Fecha inválida, use AAAA-MM-DD.")
		}
		from = &d
	}
	if f.To != "" {
		d, err := timezone.ParseDate(f.To)
		if err != nil {
			return query.Page[models.MedicalRecord]{}, httperr.FieldError("to", "Fecha inválida, use AAAA-MM-DD.")
		}
		d = d.AddDate(0, 0, 1)
		to = &d
	}
	if from != nil || to != nil {
		spec = spec.And(query.DateRange{Field: "created_at", From: from, To: to})
	}

	spec, err := s.segments.Scope(spec.OrderBy("created_at", true), p)
	if err != nil {
		return query.Page[models.MedicalRecord]{}, err
	}

	return s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
}

// ByPet é o prontuário completo de uma mascota, sem paginação.
func (s *Service) ByPet(ctx context.Context, p *access.Principal, petID uint) ([]models.MedicalRecord, error) {
	if err := s.guard.AuthorizeSegment(p, access.ViewMedicalRecords, segment); err != nil {
		return nil, err
	}
	if _, err := s.lookup.GetPet(ctx, petID); err != nil {
		return nil, err
	}

	spec, err := s.segments.Scope(
		query.New(query.Eq{Field: "pet_id", Value: petID}).OrderBy("created_at", true),
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

func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.MedicalRecord, error) {
	if err := s.guard.AuthorizeSegment(p, access.ViewMedicalRecords, segment); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}
