package repository

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
)

var uniqueFields = []string{"identification_number", "email"}

// dbErr traduz erros do driver para a taxonomia de httperr. Erros que já são
// de domínio passam intactos.
func dbErr(err error, entity string, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}

	if constraint, ok := httperr.IsUniqueViolation(err); ok {
		for _, f := range uniqueFields {
			if strings.HasSuffix(constraint, "_"+f) {
				return httperr.FieldError(f, "El valor ya está registrado.")
			}
		}
		return httperr.Validation(map[string]string{"_": "Registro duplicado."})
	}

	if httperr.IsForeignKeyViolation(err) {
		return httperr.ErrConflict(
			entity+"_has_dependents",
			"El registro tiene información asociada y no puede eliminarse.",
		)
	}

	return errors.Wrapf(err, "%s %s", op, entity)
}
