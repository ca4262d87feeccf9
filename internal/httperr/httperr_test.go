package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respond(t *testing.T, err error, input any) (*httptest.ResponseRecorder, HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithInput(c, err, input)

	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestRespond_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", FieldError("email", "ya existe"), http.StatusBadRequest, "validation_failed"},
		{"business", ErrBusiness("invalid_state"), http.StatusBadRequest, "invalid_state"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"forbidden", ErrForbidden("missing_permission"), http.StatusForbidden, "missing_permission"},
		{"not found", ErrNotFound("pet"), http.StatusNotFound, "pet_not_found"},
		{"conflict", ErrConflict("client_has_dependents", "tiene mascotas"), http.StatusConflict, "client_has_dependents"},
		{"wrapped forbidden", pkgerrors.Wrap(ErrForbidden("segment_not_allowed"), "list"), http.StatusForbidden, "segment_not_allowed"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := respond(t, tc.err, nil)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestRespond_ValidationEchoesInputAndFields(t *testing.T) {
	input := map[string]any{"email": "dup@example.com"}

	_, body := respond(t, FieldError("email", "ya existe"), input)

	assert.Equal(t, "ya existe", body.Fields["email"])
	assert.Equal(t, map[string]any{"email": "dup@example.com"}, body.Input)
}

func TestPgErrorClassification(t *testing.T) {
	unique := pkgerrors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_clients_email"}, "create client")
	constraint, ok := IsUniqueViolation(unique)
	assert.True(t, ok)
	assert.Equal(t, "idx_clients_email", constraint)

	fk := &pgconn.PgError{Code: "23503"}
	assert.True(t, IsForeignKeyViolation(fk))

	_, ok = IsUniqueViolation(errors.New("plain"))
	assert.False(t, ok)
	assert.False(t, IsForeignKeyViolation(nil))
}
