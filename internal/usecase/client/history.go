package client

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type History struct {
	Client       *models.Client       `json:"client"`
	Appointments []models.Appointment `json:"appointments"`
	HotelStays   []models.HotelStay   `json:"hotel_stays"`
}

// History junta mascotas, citas e hospedagens do cliente, sempre dentro
// dos segmentos do usuário.
func (s *Service) History(ctx context.Context, p *access.Principal, id uint) (*History, error) {
	if err := s.guard.Authorize(p, access.ViewClientHistory); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	byClient := query.New(query.Eq{Field: "client_id", Value: id})

	apSpec, err := s.segments.Scope(byClient.OrderBy("appointment_date", true), p)
	if err != nil {
		return nil, err
	}
	aps, err := s.appointments.List(ctx, apSpec)
	if err != nil {
		return nil, err
	}

	stSpec, err := s.segments.Scope(byClient.OrderBy("check_in_date", true), p)
	if err != nil {
		return nil, err
	}
	stays, err := s.stays.List(ctx, stSpec)
	if err != nil {
		return nil, err
	}

	return &History{
		Client:       c,
		Appointments: aps.Items,
		HotelStays:   stays.Items,
	}, nil
}
