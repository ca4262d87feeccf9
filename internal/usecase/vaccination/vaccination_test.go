package vaccination

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/fakes"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, timezone.Local())
}

type fixture struct {
	db    *fakes.DB
	audit *fakes.Audit
	svc   *Service
	luna  models.Pet
}

func setup() fixture {
	db := fakes.NewDB()
	reg := access.DefaultRegistry()
	f := fixture{db: db, audit: &fakes.Audit{}}
	f.svc = NewService(db.Vaccinations(), db.Lookup(), access.NewGuard(reg), access.NewSegmentFilter(reg), f.audit).
		WithClock(func() time.Time { return day(6, 10).Add(9 * time.Hour) })

	ana := db.Client("ana")
	f.luna = db.Pet(ana.ID, "Luna")
	return f
}

func as(role access.Role) *access.Principal {
	return &access.Principal{UserID: 1, Role: role, Active: true}
}

func str(s string) *string { return &s }

func TestCreate(t *testing.T) {
	f := setup()

	v, err := f.svc.Create(context.Background(), as(access.RoleClinicAdmin), f.luna.ID, Input{
		VaccineName:     "Rabia",
		ApplicationDate: "2025-06-10",
		NextDoseDate:    str("2026-06-10"),
	})

	require.NoError(t, err)
	assert.Equal(t, f.luna.ID, v.PetID)
	require.NotNil(t, v.NextDoseDate)
	assert.Equal(t, 2026, v.NextDoseDate.Year())
	assert.Equal(t, []string{"vaccination_created"}, f.audit.Actions())
}

func TestCreate_DateRules(t *testing.T) {
	f := setup()
	ctx := context.Background()

	cases := map[string]Input{
		"application_date": {VaccineName: "Rabia", ApplicationDate: "2025-06-11"},
		"next_dose_date":   {VaccineName: "Rabia", ApplicationDate: "2025-06-01", NextDoseDate: str("2025-06-01")},
		"vaccine_name":     {ApplicationDate: "2025-06-01"},
	}
	for field, in := range cases {
		_, err := f.svc.Create(ctx, as(access.RoleClinicAdmin), f.luna.ID, in)
		var ve httperr.ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Contains(t, ve.Fields, field)
	}
}

func TestCreate_UnknownPet(t *testing.T) {
	f := setup()

	_, err := f.svc.Create(context.Background(), as(access.RoleClinicAdmin), 404, Input{
		VaccineName: "Rabia", ApplicationDate: "2025-06-01",
	})

	assert.True(t, httperr.IsNotFound(err))
}

func TestPermissions(t *testing.T) {
	f := setup()
	ctx := context.Background()
	in := Input{VaccineName: "Rabia", ApplicationDate: "2025-06-01"}

	_, err := f.svc.Create(ctx, as(access.RoleHotelEmployee), f.luna.ID, in)
	assert.True(t, httperr.IsForbidden(err))

	_, err = f.svc.ListByPet(ctx, as(access.RoleHotelEmployee), f.luna.ID)
	assert.NoError(t, err)

	_, err = f.svc.ListByPet(ctx, as(access.RoleSpaAssistant), f.luna.ID)
	assert.True(t, httperr.IsForbidden(err))
}

func TestUpdateDelete(t *testing.T) {
	f := setup()
	ctx := context.Background()
	v, err := f.svc.Create(ctx, as(access.RoleClinicAdmin), f.luna.ID, Input{VaccineName: "Rabia", ApplicationDate: "2025-06-01"})
	require.NoError(t, err)

	in := InputOf(v)
	in.Observations = "Sin reacción"
	updated, err := f.svc.Update(ctx, as(access.RoleClinicAdmin), v.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Sin reacción", updated.Observations)

	require.NoError(t, f.svc.Delete(ctx, as(access.RoleClinicAdmin), v.ID))
	list, err := f.svc.ListByPet(ctx, as(access.RoleClinicAdmin), f.luna.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDue(t *testing.T) {
	f := setup()
	for _, next := range []time.Time{day(6, 9), day(6, 10), day(7, 10), day(7, 11)} {
		n := next
		f.db.Vaccination(models.Vaccination{PetID: f.luna.ID, VaccineName: "Parvovirus", ApplicationDate: day(1, 1), NextDoseDate: &n})
	}
	f.db.Vaccination(models.Vaccination{PetID: f.luna.ID, VaccineName: "Rabia", ApplicationDate: day(1, 1)})

	due, err := f.svc.Due(context.Background(), as(access.RoleClinicAdmin), 30)

	require.NoError(t, err)
	assert.Len(t, due, 2)
}
