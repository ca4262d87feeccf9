package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/fakes"
)

type fixture struct {
	db    *fakes.DB
	repo  *fakes.Clients
	aps   *fakes.Appointments
	audit *fakes.Audit
	svc   *Service
}

func setup() fixture {
	db := fakes.NewDB()
	reg := access.DefaultRegistry()
	f := fixture{
		db:    db,
		repo:  db.Clients(),
		aps:   db.Appointments(),
		audit: &fakes.Audit{},
	}
	f.svc = NewService(f.repo, f.aps, db.HotelStays(), access.NewGuard(reg), access.NewSegmentFilter(reg), f.audit)
	return f
}

func as(role access.Role) *access.Principal {
	return &access.Principal{UserID: 1, Role: role, Active: true}
}

func validInput() Input {
	return Input{
		Name:                 " Ana Pérez ",
		Email:                "ANA@correo.co",
		Phone:                "3001234567",
		Address:              "Cra 7 # 12-30",
		IdentificationType:   "cc",
		IdentificationNumber: "1020304050",
	}
}

func TestCreate_NormalizesAndAudits(t *testing.T) {
	f := setup()

	c, err := f.svc.Create(context.Background(), as(access.RoleHotelEmployee), validInput())

	require.NoError(t, err)
	assert.Equal(t, "Ana Pérez", c.Name)
	assert.Equal(t, "ana@correo.co", c.Email)
	assert.Equal(t, "CC", c.IdentificationType)
	assert.Equal(t, []string{"client_created"}, f.audit.Actions())
}

func TestCreate_ValidationErrors(t *testing.T) {
	f := setup()
	in := validInput()
	in.Email = "no-es-correo"
	in.IdentificationType = "XX"

	_, err := f.svc.Create(context.Background(), as(access.RoleGeneralManager), in)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "identification_type")
}

func TestCreate_DuplicateEmailAndIdentification(t *testing.T) {
	f := setup()
	existing := f.db.Client("ana")

	in := validInput()
	in.Email = existing.Email
	in.IdentificationNumber = existing.IdentificationNumber

	_, err := f.svc.Create(context.Background(), as(access.RoleGeneralManager), in)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
	assert.Contains(t, ve.Fields, "identification_number")
}

func TestUpdate_UniquenessExcludesSelf(t *testing.T) {
	f := setup()
	c := f.db.Client("ana")

	in := InputOf(&c)
	in.Phone = "3110000000"

	updated, err := f.svc.Update(context.Background(), as(access.RoleGeneralManager), c.ID, in)

	require.NoError(t, err)
	assert.Equal(t, "3110000000", updated.Phone)
}

func TestUpdate_EmailOfAnotherClientRejected(t *testing.T) {
	f := setup()
	a := f.db.Client("ana")
	b := f.db.Client("bruno")

	in := InputOf(&b)
	in.Email = a.Email

	_, err := f.svc.Update(context.Background(), as(access.RoleGeneralManager), b.ID, in)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "email")
}

func TestDelete_WithDependentsFailsAndKeepsClient(t *testing.T) {
	f := setup()
	c := f.db.Client("ana")
	f.db.Pet(c.ID, "Luna")

	err := f.svc.Delete(context.Background(), as(access.RoleGeneralManager), c.ID)

	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))

	still, err := f.repo.GetByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, still.ID)
	assert.Empty(t, f.audit.Actions())
}

func TestDelete_WithoutDependents(t *testing.T) {
	f := setup()
	c := f.db.Client("ana")

	require.NoError(t, f.svc.Delete(context.Background(), as(access.RoleGeneralManager), c.ID))

	_, err := f.repo.GetByID(context.Background(), c.ID)
	assert.True(t, httperr.IsNotFound(err))
	assert.Equal(t, []string{"client_deleted"}, f.audit.Actions())
}

func TestPermissions(t *testing.T) {
	f := setup()
	ctx := context.Background()

	_, err := f.svc.List(ctx, nil, ListFilter{})
	assert.ErrorIs(t, err, httperr.ErrUnauthenticated)

	_, err = f.svc.Create(ctx, as(access.RolePublic), validInput())
	assert.True(t, httperr.IsForbidden(err))

	inactive := as(access.RoleGeneralManager)
	inactive.Active = false
	_, err = f.svc.Get(ctx, inactive, 1)
	assert.True(t, httperr.IsForbidden(err))

	_, err = f.svc.History(ctx, as(access.RoleHotelEmployee), 1)
	assert.True(t, httperr.IsForbidden(err))
}

func TestQuickSearch(t *testing.T) {
	f := setup()
	for _, n := range []string{"ana", "anabel", "bruno"} {
		f.db.Client(n)
	}

	short, err := f.svc.QuickSearch(context.Background(), as(access.RoleSpaAssistant), "a")
	require.NoError(t, err)
	assert.Empty(t, short)

	found, err := f.svc.QuickSearch(context.Background(), as(access.RoleSpaAssistant), "ana")
	require.NoError(t, err)
	assert.Len(t, found, 2)
	assert.Equal(t, 10, f.repo.LastSpec.PerPage)
}

func TestList_FiltersAndPaginates(t *testing.T) {
	f := setup()
	f.db.Client("ana")

	page, err := f.svc.List(context.Background(), as(access.RoleClinicAdmin), ListFilter{
		Search:             "ana",
		IdentificationType: "cc",
		Page:               1,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, query.DefaultPerPage, f.repo.LastSpec.PerPage)
	assert.Contains(t, f.repo.LastSpec.Predicates, query.Predicate(query.Eq{Field: "identification_type", Value: "CC"}))
}

func TestHistory_IsSegmentScoped(t *testing.T) {
	f := setup()
	c := f.db.Client("ana")
	p := f.db.Pet(c.ID, "Luna")
	spa := f.db.Category("Estética", models.SegmentSpa)
	hotel := f.db.Category("Hospedaje", models.SegmentHotel)
	bath := f.db.Service(spa.ID, "Baño", 30000)
	night := f.db.Service(hotel.ID, "Noche", 40000)
	f.db.Appointment(models.Appointment{ClientID: c.ID, PetID: p.ID, ServiceID: bath.ID})
	f.db.Appointment(models.Appointment{ClientID: c.ID, PetID: p.ID, ServiceID: night.ID})
	f.db.HotelStay(models.HotelStay{ClientID: c.ID, PetID: p.ID, RoomType: "standard"})

	h, err := f.svc.History(context.Background(), as(access.RoleSpaAssistant), c.ID)

	require.NoError(t, err)
	require.Len(t, h.Appointments, 1)
	assert.Equal(t, bath.ID, h.Appointments[0].ServiceID)
	assert.Empty(t, h.HotelStays)
	assert.Len(t, h.Client.Pets, 1)

	all, err := f.svc.History(context.Background(), as(access.RoleGeneralManager), c.ID)
	require.NoError(t, err)
	assert.Len(t, all.Appointments, 2)
	assert.Len(t, all.HotelStays, 1)
}
