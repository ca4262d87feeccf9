package medical

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// resolve confere mascota, veterinário com papel clínico e, quando houver,
// que a cita é da mesma mascota.
func (s *Service) resolve(ctx context.Context, in Input) (*time.Time, error) {
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	pet, err := s.lookup.GetPet(ctx, in.PetID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.FieldError("pet_id", "La mascota no existe.")
		}
		return nil, err
	}

	if _, err := ownership.Veterinarian(ctx, s.lookup, in.VeterinarianID, "veterinarian_id"); err != nil {
		return nil, err
	}

	if in.AppointmentID != nil {
		ap, err := s.lookup.GetAppointment(ctx, *in.AppointmentID)
		if err != nil {
			if httperr.IsNotFound(err) {
				return nil, httperr.FieldError("appointment_id", "La cita no existe.")
			}
			return nil, err
		}
		if ap.PetID != pet.ID {
			return nil, httperr.FieldError("appointment_id", "La cita no corresponde a la mascota.")
		}
	}

	return in.nextVisit(s.now())
}

func (s *Service) Create(
	ctx context.Context,
	p *access.Principal,
	in Input,
) (*models.MedicalRecord, error) {

	if err := s.guard.AuthorizeSegment(p, access.ManageMedicalRecords, segment); err != nil {
		return nil, err
	}

	in = in.normalized()
	next, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	rec := &models.MedicalRecord{}
	in.apply(rec, next)

	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "medical_record_created", "medical_record", rec.ID))
	return s.repo.GetByID(ctx, rec.ID)
}

func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in Input,
) (*models.MedicalRecord, error) {

	if err := s.guard.AuthorizeSegment(p, access.ManageMedicalRecords, segment); err != nil {
		return nil, err
	}

	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.normalized()
	next, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	in.apply(rec, next)
	rec.Pet, rec.Appointment, rec.Veterinarian = nil, nil, nil

	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "medical_record_updated", "medical_record", rec.ID))
	return s.repo.GetByID(ctx, rec.ID)
}

func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.guard.AuthorizeSegment(p, access.ManageMedicalRecords, segment); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.By(p, "medical_record_deleted", "medical_record", id))
	return nil
}
