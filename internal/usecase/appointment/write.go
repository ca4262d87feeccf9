package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// resolved é o resultado das verificações antes de gravar.
type resolved struct {
	at      time.Time
	service *models.Service
}

// resolve confere entrada, dono da mascota, segmento do serviço e o
// funcionário responsável. Nada é gravado se algo falhar.
func (s *Service) resolve(ctx context.Context, p *access.Principal, in Input) (*resolved, error) {

	// --------------------------------------------------
	// 1️⃣ Campos
	// --------------------------------------------------
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	at, err := timezone.ParseDateTime(in.AppointmentDate)
	if err != nil {
		return nil, httperr.FieldError("appointment_date", "Fecha inválida, use AAAA-MM-DD HH:MM.")
	}

	// --------------------------------------------------
	// 2️⃣ Mascota pertence ao cliente
	// --------------------------------------------------
	if _, _, err := ownership.PetOfClient(ctx, s.lookup, in.PetID, in.ClientID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Serviço no segmento do usuário
	// --------------------------------------------------
	svc, seg, err := ownership.ServiceSegment(ctx, s.lookup, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ManageAppointments, seg); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Responsável (clínica exige papel clínico)
	// --------------------------------------------------
	if seg == models.SegmentClinic {
		_, err = ownership.Veterinarian(ctx, s.lookup, in.UserID, "user_id")
	} else {
		_, err = ownership.Staff(ctx, s.lookup, in.UserID, "user_id")
	}
	if err != nil {
		return nil, err
	}

	return &resolved{at: at, service: svc}, nil
}

func (s *Service) Create(
	ctx context.Context,
	p *access.Principal,
	in Input,
) (*models.Appointment, error) {

	if err := s.guard.Authorize(p, access.ManageAppointments); err != nil {
		return nil, err
	}

	in = in.normalized()
	r, err := s.resolve(ctx, p, in)
	if err != nil {
		return nil, err
	}

	if !r.at.After(s.now()) {
		return nil, httperr.FieldError("appointment_date", "La cita debe programarse en el futuro.")
	}

	ap := &models.Appointment{Status: string(domain.InitialStatus())}
	in.apply(ap, r.at)

	if err := s.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "appointment_created", "appointment", ap.ID))
	return s.repo.GetByID(ctx, ap.ID)
}

// Update aceita data passada (registro retroativo); o status muda só por
// ChangeStatus.
func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in Input,
) (*models.Appointment, error) {

	if err := s.guard.Authorize(p, access.ManageAppointments); err != nil {
		return nil, err
	}

	ap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.guard.AuthorizeSegment(p, access.ManageAppointments, segmentOf(ap)); err != nil {
		return nil, err
	}

	in = in.normalized()
	r, err := s.resolve(ctx, p, in)
	if err != nil {
		return nil, err
	}

	in.apply(ap, r.at)

	if err := s.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "appointment_updated", "appointment", ap.ID))
	return s.repo.GetByID(ctx, ap.ID)
}

// Delete recusa citas com prontuário vinculado.
func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.guard.Authorize(p, access.ManageAppointments); err != nil {
		return err
	}

	ap, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guard.AuthorizeSegment(p, access.ManageAppointments, segmentOf(ap)); err != nil {
		return err
	}

	n, err := s.repo.CountMedicalRecords(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrConflict(
			"appointment_has_medical_records",
			"No se puede eliminar la cita porque tiene registros médicos.",
		)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, audit.By(p, "appointment_deleted", "appointment", id))
	return nil
}
