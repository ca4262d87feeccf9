package ownership

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type fakeLookup struct {
	clients map[uint]*models.Client
	pets    map[uint]*models.Pet
	users   map[uint]*models.User
	svcs    map[uint]*models.Service
}

func (f fakeLookup) GetClient(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, httperr.ErrNotFound("client")
}

func (f fakeLookup) GetPet(_ context.Context, id uint) (*models.Pet, error) {
	if p, ok := f.pets[id]; ok {
		return p, nil
	}
	return nil, httperr.ErrNotFound("pet")
}

func (f fakeLookup) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.svcs[id]; ok {
		return s, nil
	}
	return nil, httperr.ErrNotFound("service")
}

func (f fakeLookup) GetUser(_ context.Context, id uint) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, httperr.ErrNotFound("user")
}

func (f fakeLookup) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	return nil, httperr.ErrNotFound("appointment")
}

func newLookup() fakeLookup {
	return fakeLookup{
		clients: map[uint]*models.Client{1: {ID: 1}, 2: {ID: 2}},
		pets:    map[uint]*models.Pet{10: {ID: 10, ClientID: 1}},
		users: map[uint]*models.User{
			100: {ID: 100, Role: "clinic_admin", Active: true},
			101: {ID: 101, Role: "spa_assistant", Active: true},
			102: {ID: 102, Role: "general_manager", Active: false},
		},
		svcs: map[uint]*models.Service{
			5: {ID: 5, Category: &models.ServiceCategory{Segment: models.SegmentSpa}},
			6: {ID: 6},
		},
	}
}

func fields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Fields
}

func TestPetOfClient(t *testing.T) {
	l := newLookup()
	ctx := context.Background()

	pet, client, err := PetOfClient(ctx, l, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, uint(10), pet.ID)
	assert.Equal(t, uint(1), client.ID)

	_, _, err = PetOfClient(ctx, l, 10, 2)
	assert.Contains(t, fields(t, err), "pet_id")

	_, _, err = PetOfClient(ctx, l, 10, 99)
	assert.Contains(t, fields(t, err), "client_id")

	_, _, err = PetOfClient(ctx, l, 99, 1)
	assert.Contains(t, fields(t, err), "pet_id")
}

func TestVeterinarian(t *testing.T) {
	l := newLookup()
	ctx := context.Background()

	_, err := Veterinarian(ctx, l, 100, "veterinarian_id")
	assert.NoError(t, err)

	_, err = Veterinarian(ctx, l, 101, "veterinarian_id")
	assert.Contains(t, fields(t, err), "veterinarian_id")

	_, err = Veterinarian(ctx, l, 102, "veterinarian_id")
	assert.Contains(t, fields(t, err), "veterinarian_id")

	_, err = Veterinarian(ctx, l, 404, "veterinarian_id")
	assert.Contains(t, fields(t, err), "veterinarian_id")
}

func TestServiceSegment(t *testing.T) {
	l := newLookup()

	_, seg, err := ServiceSegment(context.Background(), l, 5)
	require.NoError(t, err)
	assert.Equal(t, models.SegmentSpa, seg)

	_, _, err = ServiceSegment(context.Background(), l, 6)
	assert.Contains(t, fields(t, err), "service_id")
}
