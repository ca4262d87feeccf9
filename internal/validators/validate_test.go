package validators

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Type   string  `json:"type" validate:"oneof=peticion queja"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

func TestStruct_ReportsFieldsByJSONName(t *testing.T) {
	err := Struct(sample{Name: "", Email: "nope", Type: "otro", Weight: -1})

	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Este campo es obligatorio.", ve.Fields["name"])
	assert.Contains(t, ve.Fields, "email")
	assert.Equal(t, "Debe ser uno de: peticion, queja.", ve.Fields["type"])
	assert.Contains(t, ve.Fields, "weight")
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "Luna", Type: "queja"}))
}

func TestStruct_MaxOnString(t *testing.T) {
	var ve httperr.ValidationError
	require.ErrorAs(t, Struct(sample{Name: "Lunaaaaa", Type: "queja"}), &ve)
	assert.Equal(t, "No puede superar 5 caracteres.", ve.Fields["name"])
}

func TestTranslate_JSONErrors(t *testing.T) {
	var dst struct {
		Price float64 `json:"price"`
	}
	err := Translate(json.Unmarshal([]byte(`{"price":"caro"}`), &dst))
	var ve httperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "price")

	err = Translate(json.Unmarshal([]byte(`{`), &dst))
	assert.True(t, httperr.IsValidation(err))

	assert.NoError(t, Translate(nil))
}

func TestTranslate_TruncatedBody(t *testing.T) {
	var dst struct {
		Subject string `json:"subject"`
	}

	for _, body := range []string{`{`, `{"subject":"Demo`, ``} {
		err := Translate(json.NewDecoder(strings.NewReader(body)).Decode(&dst))

		var ve httperr.ValidationError
		require.ErrorAs(t, err, &ve, "body %q", body)
		assert.Contains(t, ve.Fields, "_")
	}
}
