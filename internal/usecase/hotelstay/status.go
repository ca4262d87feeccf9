package hotelstay

import (
	"context"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	domain "github.com/BruksfildServices01/petcare-manager/internal/domain/hotelstay"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

func (s *Service) CheckIn(ctx context.Context, p *access.Principal, id uint) (*models.HotelStay, error) {
	return s.transition(ctx, p, id, "hotel_stay_checked_in", domain.CheckIn)
}

func (s *Service) CheckOut(ctx context.Context, p *access.Principal, id uint) (*models.HotelStay, error) {
	return s.transition(ctx, p, id, "hotel_stay_checked_out", domain.CheckOut)
}

func (s *Service) Cancel(ctx context.Context, p *access.Principal, id uint) (*models.HotelStay, error) {
	return s.transition(ctx, p, id, "hotel_stay_cancelled", domain.Cancel)
}

// transition roda a ação com a linha travada: de dois check-ins
// simultâneos, o segundo encontra o status já active e falha.
func (s *Service) transition(
	ctx context.Context,
	p *access.Principal,
	id uint,
	action string,
	fn func(hs *models.HotelStay, now time.Time) error,
) (*models.HotelStay, error) {

	if err := s.authorizeWrite(p); err != nil {
		return nil, err
	}

	hs, err := s.repo.Mutate(ctx, id, func(hs *models.HotelStay) error {
		return fn(hs, s.now())
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, audit.By(p, action, "hotel_stay", hs.ID))
	return hs, nil
}
