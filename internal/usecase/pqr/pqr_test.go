package pqr

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/fakes"
)

type fixture struct {
	db      *fakes.DB
	repo    *fakes.Pqrs
	audit   *fakes.Audit
	metrics *observability.Metrics
	svc     *Service
	clock   *time.Time

	alice, bruno models.User
}

func setup() fixture {
	db := fakes.NewDB()
	reg := access.DefaultRegistry()
	t0 := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	f := fixture{
		db:      db,
		repo:    db.Pqrs(),
		audit:   &fakes.Audit{},
		metrics: observability.NewMetrics(prometheus.NewRegistry()),
		clock:   &t0,
	}
	f.svc = NewService(Deps{
		Repo:    f.repo,
		Lookup:  db.Lookup(),
		Guard:   access.NewGuard(reg),
		Audit:   f.audit,
		Metrics: f.metrics,
	}).WithClock(func() time.Time { return *f.clock })

	f.alice = db.User("alice", string(access.RoleHotelEmployee))
	f.bruno = db.User("bruno", string(access.RoleSpaAssistant))
	return f
}

func user(u models.User) *access.Principal {
	return &access.Principal{UserID: u.ID, Role: access.Role(u.Role), Active: true}
}

func manager() *access.Principal {
	return &access.Principal{UserID: 99, Role: access.RoleGeneralManager, Active: true}
}

func validSubmit() SubmitInput {
	return SubmitInput{
		ClientName:  "Carla Ruiz",
		ClientEmail: " Carla@Correo.co ",
		Type:        "Queja",
		Subject:     "Demora en la entrega",
		Description: "Mi mascota fue entregada dos horas tarde.",
	}
}

func TestSubmit(t *testing.T) {
	f := setup()

	p, err := f.svc.Submit(context.Background(), validSubmit())

	require.NoError(t, err)
	assert.Equal(t, "pending", p.Status)
	assert.Equal(t, "carla@correo.co", p.ClientEmail)
	assert.Equal(t, "queja", p.Type)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PqrSubmissionsTotal.WithLabelValues("accepted")))
	require.Len(t, f.audit.Entries, 1)
	assert.Nil(t, f.audit.Entries[0].UserID)
}

func TestSubmit_Validation(t *testing.T) {
	f := setup()
	in := validSubmit()
	in.ClientEmail = "carla"
	in.Type = "denuncia"

	_, err := f.svc.Submit(context.Background(), in)

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "client_email")
	assert.Contains(t, ve.Fields, "type")
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.PqrSubmissionsTotal.WithLabelValues("invalid")))
}

func TestSubmit_EmailDomainCheck(t *testing.T) {
	f := setup()
	f.svc.checkDomain = func(string) bool { return false }

	_, err := f.svc.Submit(context.Background(), validSubmit())

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "client_email")
}

func TestList_NonManagerSeesOnlyAssigned(t *testing.T) {
	f := setup()
	ctx := context.Background()
	f.db.Pqr(models.Pqr{Subject: "a", AssignedTo: &f.alice.ID})
	f.db.Pqr(models.Pqr{Subject: "b", AssignedTo: &f.bruno.ID})
	f.db.Pqr(models.Pqr{Subject: "c"})

	page, err := f.svc.List(ctx, user(f.alice), ListFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].Subject)

	page, err = f.svc.List(ctx, manager(), ListFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 3)

	mine, err := f.svc.Mine(ctx, user(f.bruno), ListFilter{})
	require.NoError(t, err)
	require.Len(t, mine.Items, 1)
	assert.Equal(t, "b", mine.Items[0].Subject)
}

func TestList_FiltersByAssigneeDateAndDescription(t *testing.T) {
	f := setup()
	ctx := context.Background()
	may := time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)
	june := time.Date(2025, 6, 20, 15, 0, 0, 0, time.UTC)
	f.db.Pqr(models.Pqr{Subject: "a", Description: "Baño incompleto", AssignedTo: &f.alice.ID, CreatedAt: may})
	f.db.Pqr(models.Pqr{Subject: "b", Description: "Cobro doble", AssignedTo: &f.bruno.ID, CreatedAt: june})
	f.db.Pqr(models.Pqr{Subject: "c", Description: "Cobro doble", CreatedAt: june})

	page, err := f.svc.List(ctx, manager(), ListFilter{AssignedTo: f.bruno.ID})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "b", page.Items[0].Subject)

	page, err = f.svc.List(ctx, manager(), ListFilter{From: "2025-06-01", To: "2025-06-30"})
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)

	page, err = f.svc.List(ctx, manager(), ListFilter{To: "2025-05-31"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].Subject)

	page, err = f.svc.List(ctx, manager(), ListFilter{Search: "baño"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "a", page.Items[0].Subject)

	_, err = f.svc.List(ctx, manager(), ListFilter{From: "10/06/2025"})
	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "from")
}

func TestGet_AssignedToAnotherUserIsForbidden(t *testing.T) {
	f := setup()
	ctx := context.Background()
	p := f.db.Pqr(models.Pqr{Subject: "a", AssignedTo: &f.alice.ID})
	unassigned := f.db.Pqr(models.Pqr{Subject: "b"})

	got, err := f.svc.Get(ctx, user(f.bruno), p.ID)
	assert.Nil(t, got)
	assert.True(t, httperr.IsForbidden(err))

	_, err = f.svc.Get(ctx, user(f.bruno), unassigned.ID)
	assert.True(t, httperr.IsForbidden(err))

	got, err = f.svc.Get(ctx, user(f.alice), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Assignee.Name)

	_, err = f.svc.Get(ctx, manager(), p.ID)
	assert.NoError(t, err)
}

func TestUpdate_ResolvedAtStampedOnEntryOnly(t *testing.T) {
	f := setup()
	ctx := context.Background()
	p := f.db.Pqr(models.Pqr{Subject: "a"})
	resolved := "resolved"

	first := *f.clock
	out, err := f.svc.Update(ctx, manager(), p.ID, UpdateInput{Status: &resolved})
	require.NoError(t, err)
	require.NotNil(t, out.ResolvedAt)
	assert.True(t, first.Equal(*out.ResolvedAt))

	later := first.Add(3 * time.Hour)
	f.clock = &later
	out, err = f.svc.Update(ctx, manager(), p.ID, UpdateInput{Status: &resolved})
	require.NoError(t, err)
	assert.True(t, first.Equal(*out.ResolvedAt))
}

func TestUpdate_OnlyManagers(t *testing.T) {
	f := setup()
	p := f.db.Pqr(models.Pqr{Subject: "a", AssignedTo: &f.alice.ID})
	closed := "closed"

	_, err := f.svc.Update(context.Background(), user(f.alice), p.ID, UpdateInput{Status: &closed})
	assert.True(t, httperr.IsForbidden(err))

	_, err = f.svc.Update(context.Background(), manager(), p.ID, UpdateInput{Status: &closed})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdate_ClosedPqrIsFrozen(t *testing.T) {
	f := setup()
	p := f.db.Pqr(models.Pqr{Subject: "a", Status: "closed", AssignedTo: &f.alice.ID})

	_, err := f.svc.Update(context.Background(), manager(), p.ID, UpdateInput{AssignedTo: &f.bruno.ID})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	resp := "otra respuesta"
	_, err = f.svc.Update(context.Background(), manager(), p.ID, UpdateInput{Response: &resp})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	got, err := f.svc.Get(context.Background(), manager(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, *got.AssignedTo)
	assert.Equal(t, "closed", got.Status)
	assert.Empty(t, f.audit.Actions())
}

func TestUpdate_AssigningPendingMovesToInProcess(t *testing.T) {
	f := setup()
	p := f.db.Pqr(models.Pqr{Subject: "a"})

	out, err := f.svc.Update(context.Background(), manager(), p.ID, UpdateInput{AssignedTo: &f.alice.ID})

	require.NoError(t, err)
	assert.Equal(t, "in_process", out.Status)
	assert.Equal(t, f.alice.ID, *out.AssignedTo)
}

func TestAssignRespondClose(t *testing.T) {
	f := setup()
	ctx := context.Background()
	p := f.db.Pqr(models.Pqr{Subject: "a"})

	out, err := f.svc.Assign(ctx, manager(), p.ID, AssignInput{UserID: f.alice.ID})
	require.NoError(t, err)
	assert.Equal(t, "in_process", out.Status)

	_, err = f.svc.Respond(ctx, user(f.bruno), p.ID, RespondInput{Response: "Listo"})
	assert.True(t, httperr.IsForbidden(err))

	out, err = f.svc.Respond(ctx, user(f.alice), p.ID, RespondInput{Response: " Se reprogramó la entrega. "})
	require.NoError(t, err)
	assert.Equal(t, "resolved", out.Status)
	assert.Equal(t, "Se reprogramó la entrega.", out.Response)
	assert.NotNil(t, out.ResolvedAt)

	out, err = f.svc.Close(ctx, user(f.alice), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "closed", out.Status)

	_, err = f.svc.Assign(ctx, manager(), p.ID, AssignInput{UserID: f.bruno.ID})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	assert.Equal(t, []string{"pqr_assigned", "pqr_responded", "pqr_closed"}, f.audit.Actions())
}

func TestAssign_UnknownOrInactiveUser(t *testing.T) {
	f := setup()
	p := f.db.Pqr(models.Pqr{Subject: "a"})

	_, err := f.svc.Assign(context.Background(), manager(), p.ID, AssignInput{UserID: 404})

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "user_id")
}

func TestClose_OnlyFromResolved(t *testing.T) {
	f := setup()
	p := f.db.Pqr(models.Pqr{Subject: "a"})

	_, err := f.svc.Close(context.Background(), manager(), p.ID)

	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDelete(t *testing.T) {
	f := setup()
	ctx := context.Background()
	p := f.db.Pqr(models.Pqr{Subject: "a", AssignedTo: &f.alice.ID})

	assert.True(t, httperr.IsForbidden(f.svc.Delete(ctx, user(f.alice), p.ID)))
	require.NoError(t, f.svc.Delete(ctx, manager(), p.ID))
	assert.True(t, httperr.IsNotFound(f.svc.Delete(ctx, manager(), p.ID)))
}
