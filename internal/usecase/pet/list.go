package pet

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

func (s *Service) List(
	ctx context.Context,
	p *access.Principal,
	f ListFilter,
) (query.Page[models.Pet], error) {

	if err := s.guard.Authorize(p, access.ViewPets); err != nil {
		return query.Page[models.Pet]{}, err
	}

	spec := query.New(query.Search{Term: f.Search})
	if f.Species != "" {
		spec = spec.And(query.Eq{Field: "species", Value: f.Species})
	}
	if f.ClientID != 0 {
		spec = spec.And(query.Eq{Field: "client_id", Value: f.ClientID})
	}

	page, err := s.repo.List(ctx, spec.Paginate(f.Page, f.PerPage))
	if err != nil {
		return page, err
	}
	for i := range page.Items {
		s.withPhotoURL(&page.Items[i])
	}
	return page, nil
}

func (s *Service) Get(ctx context.Context, p *access.Principal, id uint) (*models.Pet, error) {
	if err := s.guard.Authorize(p, access.ViewPets); err != nil {
		return nil, err
	}
	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.withPhotoURL(pet)
	return pet, nil
}

func (s *Service) withPhotoURL(p *models.Pet) {
	p.PhotoURL = s.store.URL(p.Photo)
}

type History struct {
	Pet            *models.Pet            `json:"pet"`
	MedicalRecords []models.MedicalRecord `json:"medical_records"`
	Vaccinations   []models.Vaccination   `json:"vaccinations"`
	Appointments   []models.Appointment   `json:"appointments"`
}

// History é o histórico clínico e de atendimentos, recortado pelos
// segmentos do usuário.
func (s *Service) History(ctx context.Context, p *access.Principal, id uint) (*History, error) {
	if err := s.guard.Authorize(p, access.ViewPetHistory); err != nil {
		return nil, err
	}

	pet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.withPhotoURL(pet)

	byPet := query.New(query.Eq{Field: "pet_id", Value: id})

	recSpec, err := s.segments.Scope(byPet.OrderBy("created_at", true), p)
	if err != nil {
		return nil, err
	}
	recs, err := s.records.List(ctx, recSpec)
	if err != nil {
		return nil, err
	}

	vacSpec, err := s.segments.Scope(byPet.OrderBy("application_date", true), p)
	if err != nil {
		return nil, err
	}
	vacs, err := s.vaccinations.List(ctx, vacSpec)
	if err != nil {
		return nil, err
	}

	apSpec, err := s.segments.Scope(byPet.OrderBy("appointment_date", true), p)
	if err != nil {
		return nil, err
	}
	aps, err := s.appointments.List(ctx, apSpec)
	if err != nil {
		return nil, err
	}

	return &History{
		Pet:            pet,
		MedicalRecords: recs.Items,
		Vaccinations:   vacs.Items,
		Appointments:   aps.Items,
	}, nil
}
