package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()

	// erros saem com o nome JSON do campo
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	return v
}

// Struct valida as tags `validate` e devolve um ValidationError por campo.
func Struct(in any) error {
	return Translate(validate.Struct(in))
}

// Translate converte erros do validator (inclusive os do binding do gin)
// e de JSON malformado em ValidationError.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		fields := make(map[string]string, len(ves))
		for _, fe := range ves {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = message(fe)
			}
		}
		return httperr.Validation(fields)
	}

	var ute *json.UnmarshalTypeError
	if errors.As(err, &ute) {
		return httperr.FieldError(ute.Field, "Tipo de dato inválido.")
	}

	// json.Decoder devolve io.ErrUnexpectedEOF para corpo truncado
	var se *json.SyntaxError
	if errors.As(err, &se) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return httperr.FieldError("_", "JSON inválido.")
	}

	return err
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Este campo es obligatorio."
	case "email":
		return "Debe ser un correo electrónico válido."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("No puede superar %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("No puede ser mayor que %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Debe tener al menos %s caracteres.", fe.Param())
		}
		return fmt.Sprintf("No puede ser menor que %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Debe ser mayor o igual que %s.", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor que %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Debe ser menor o igual que %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Debe ser uno de: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "Valor inválido."
	}
}
