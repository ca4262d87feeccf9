package medical

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

type fixture struct {
	db    *fakes.DB
	repo  *fakes.MedicalRecords
	audit *fakes.Audit
	svc   *Service

	luna, toby   models.Pet
	vet, groomer models.User
}

func setup() fixture {
	db := fakes.NewDB()
	reg := access.DefaultRegistry()
	f := fixture{db: db, repo: db.MedicalRecords(), audit: &fakes.Audit{}}
	f.svc = NewService(f.repo, db.Lookup(), access.NewGuard(reg), access.NewSegmentFilter(reg), f.audit).
		WithClock(func() time.Time { return time.Date(2025, 6, 10, 9, 0, 0, 0, timezone.Local()) })

	ana := db.Client("ana")
	f.luna = db.Pet(ana.ID, "Luna")
	f.toby = db.Pet(ana.ID, "Toby")
	f.vet = db.User("vet", string(access.RoleClinicAdmin))
	f.groomer = db.User("groomer", string(access.RoleSpaAssistant))
	return f
}

func as(role access.Role) *access.Principal {
	return &access.Principal{UserID: 1, Role: role, Active: true}
}

func (f fixture) input() Input {
	return Input{
		PetID:          f.luna.ID,
		VeterinarianID: f.vet.ID,
		Diagnosis:      " Otitis externa ",
		Treatment:      "Gotas óticas cada 12 horas",
	}
}

func TestCreate(t *testing.T) {
	f := setup()
	next := "2025-06-24"
	in := f.input()
	in.NextVisit = &next

	rec, err := f.svc.Create(context.Background(), as(access.RoleClinicAdmin), in)

	require.NoError(t, err)
	assert.Equal(t, "Otitis externa", rec.Diagnosis)
	require.NotNil(t, rec.NextVisit)
	assert.Equal(t, 24, rec.NextVisit.Day())
	assert.Equal(t, "vet", rec.Veterinarian.Name)
	assert.Equal(t, []string{"medical_record_created"}, f.audit.Actions())
}

func TestCreate_VeterinarianMustBeClinical(t *testing.T) {
	f := setup()
	in := f.input()
	in.VeterinarianID = f.groomer.ID

	_, err := f.svc.Create(context.Background(), as(access.RoleGeneralManager), in)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "veterinarian_id")
}

func TestCreate_AppointmentMustBelongToPet(t *testing.T) {
	f := setup()
	ap := f.db.Appointment(models.Appointment{PetID: f.toby.ID})
	in := f.input()
	in.AppointmentID = &ap.ID

	_, err := f.svc.Create(context.Background(), as(access.RoleClinicAdmin), in)
	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "appointment_id")

	in.PetID = f.toby.ID
	_, err = f.svc.Create(context.Background(), as(access.RoleClinicAdmin), in)
	assert.NoError(t, err)
}

func TestCreate_NextVisitAfterToday(t *testing.T) {
	f := setup()
	today := "2025-06-10"
	in := f.input()
	in.NextVisit = &today

	_, err := f.svc.Create(context.Background(), as(access.RoleClinicAdmin), in)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "next_visit")
}

func TestPermissions(t *testing.T) {
	f := setup()
	ctx := context.Background()

	_, err := f.svc.Create(ctx, as(access.RoleHotelEmployee), f.input())
	assert.True(t, httperr.IsForbidden(err))

	_, err = f.svc.List(ctx, as(access.RoleSpaAssistant), ListFilter{})
	assert.True(t, httperr.IsForbidden(err))

	f.db.MedicalRecord(models.MedicalRecord{PetID: f.luna.ID, VeterinarianID: f.vet.ID, Diagnosis: "Sano"})
	page, err := f.svc.List(ctx, as(access.RoleHotelEmployee), ListFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}

func TestUpdateAndByPet(t *testing.T) {
	f := setup()
	ctx := context.Background()
	rec, err := f.svc.Create(ctx, as(access.RoleClinicAdmin), f.input())
	require.NoError(t, err)
	f.db.MedicalRecord(models.MedicalRecord{PetID: f.toby.ID, VeterinarianID: f.vet.ID, Diagnosis: "Sano"})

	in := InputOf(rec)
	in.Medications = "Amoxicilina"
	updated, err := f.svc.Update(ctx, as(access.RoleClinicAdmin), rec.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Amoxicilina", updated.Medications)

	list, err := f.svc.ByPet(ctx, as(access.RoleClinicAdmin), f.luna.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, rec.ID, list[0].ID)

	_, err = f.svc.ByPet(ctx, as(access.RoleClinicAdmin), 999)
	assert.True(t, httperr.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	f := setup()
	ctx := context.Background()
	rec, err := f.svc.Create(ctx, as(access.RoleClinicAdmin), f.input())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, as(access.RoleClinicAdmin), rec.ID))
	_, err = f.svc.Get(ctx, as(access.RoleClinicAdmin), rec.ID)
	assert.True(t, httperr.IsNotFound(err))
}
