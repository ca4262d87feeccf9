package fakes

import (
	"context"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/ownership"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type Lookup struct {
	db *DB
}

func (db *DB) Lookup() *Lookup { return &Lookup{db: db} }

func (l *Lookup) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, err := l.db.clients.get(id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (l *Lookup) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	p, err := l.db.pets.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (l *Lookup) GetService(_ context.Context, id uint) (*models.Service, error) {
	if _, err := l.db.services.get(id); err != nil {
		return nil, err
	}
	return l.db.serviceWithCategory(id), nil
}

func (l *Lookup) GetUser(_ context.Context, id uint) (*models.User, error) {
	u, err := l.db.users.get(id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (l *Lookup) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, err := l.db.appointments.get(id)
	if err != nil {
		return nil, err
	}
	ap.Service = l.db.serviceWithCategory(ap.ServiceID)
	return &ap, nil
}

var _ ownership.Lookup = (*Lookup)(nil)
