package audit

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestLogger_LogInsertsRow(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "audit_logs"`)).
		WithArgs(sqlmock.AnyArg(), "client_deleted", "client", sqlmock.AnyArg(), `{"name":"Ana"}`, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	p := &access.Principal{UserID: 4, Role: access.RoleGeneralManager, Active: true}
	err := New(db).Log(context.Background(), By(p, "client_deleted", "client", 12).With(map[string]string{"name": "Ana"}))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogger_RecordSwallowsErrors(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).WillReturnError(assert.AnError)

	assert.NotPanics(t, func() {
		New(db).Record(context.Background(), Entry{Action: "x"})
	})
}

func TestBy_FillsActorAndEntity(t *testing.T) {
	e := By(&access.Principal{UserID: 3}, "pet_created", "pet", 8)
	require.NotNil(t, e.UserID)
	require.NotNil(t, e.EntityID)
	assert.Equal(t, uint(3), *e.UserID)
	assert.Equal(t, uint(8), *e.EntityID)

	anon := By(nil, "pqr_submitted", "pqr", 0)
	assert.Nil(t, anon.UserID)
	assert.Nil(t, anon.EntityID)
}
