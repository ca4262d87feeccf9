package hotelstay

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

func (s *Service) authorizeWrite(p *access.Principal) error {
	return s.guard.AuthorizeSegment(p, access.ManageHotelStays, models.SegmentHotel)
}

func (s *Service) resolve(ctx context.Context, in Input) (time.Time, time.Time, error) {
	if err := validators.Struct(in); err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkIn, checkOut, err := in.dates()
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if _, _, err := ownership.PetOfClient(ctx, s.lookup, in.PetID, in.ClientID); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

// Create reserva; a entrada pode ser hoje.
func (s *Service) Create(
	ctx context.Context,
	p *access.Principal,
	in Input,
) (*models.HotelStay, error) {

	if err := s.authorizeWrite(p); err != nil {
		return nil, err
	}

	in = in.normalized()
	checkIn, checkOut, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}
	if checkIn.Before(timezone.StartOfDay(s.now())) {
		return nil, httperr.FieldError("check_in_date", "La fecha de entrada no puede ser anterior a hoy.")
	}

	hs := &models.HotelStay{Status: string(domain.StatusReserved)}
	in.apply(hs, checkIn, checkOut)
	if err := domain.Price(hs); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, hs); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "hotel_stay_created", "hotel_stay", hs.ID))
	return s.repo.GetByID(ctx, hs.ID)
}

// Update recalcula total_cost sempre; o status muda só pelas ações.
func (s *Service) Update(
	ctx context.Context,
	p *access.Principal,
	id uint,
	in Input,
) (*models.HotelStay, error) {

	if err := s.authorizeWrite(p); err != nil {
		return nil, err
	}

	hs, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in = in.normalized()
	checkIn, checkOut, err := s.resolve(ctx, in)
	if err != nil {
		return nil, err
	}

	in.apply(hs, checkIn, checkOut)
	if err := domain.Price(hs); err != nil {
		return nil, err
	}
	hs.Client, hs.Pet = nil, nil

	if err := s.repo.Update(ctx, hs); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, "hotel_stay_updated", "hotel_stay", hs.ID))
	return s.repo.GetByID(ctx, hs.ID)
}

func (s *Service) Delete(ctx context.Context, p *access.Principal, id uint) error {
	if err := s.authorizeWrite(p); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.By(p, "hotel_stay_deleted", "hotel_stay", id))
	return nil
}
