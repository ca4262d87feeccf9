package httperr

import "errors"

// BusinessError representa uma regra de negócio violada (estado inválido,
// vínculo incoerente). Sempre recuperável pelo chamador.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// ValidationError carrega o detalhe por campo.
type ValidationError struct {
	Code   string
	Fields map[string]string
}

func (e ValidationError) Error() string {
	return e.Code
}

func Validation(fields map[string]string) error {
	return ValidationError{Code: "validation_failed", Fields: fields}
}

func FieldError(field, message string) error {
	return Validation(map[string]string{field: message})
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

// ForbiddenError encerra a requisição sem efeito parcial.
type ForbiddenError struct {
	Code string
}

func (e ForbiddenError) Error() string {
	return "forbidden: " + e.Code
}

func ErrForbidden(code string) error {
	return ForbiddenError{Code: code}
}

func IsForbidden(err error) bool {
	var fe ForbiddenError
	return errors.As(err, &fe)
}

var ErrUnauthenticated = errors.New("unauthenticated")

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return e.Entity + "_not_found"
}

func ErrNotFound(entity string) error {
	return NotFoundError{Entity: entity}
}

func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// ConflictError indica dependentes que impedem a exclusão.
type ConflictError struct {
	Code   string
	Reason string
}

func (e ConflictError) Error() string {
	return e.Code + ": " + e.Reason
}

func ErrConflict(code, reason string) error {
	return ConflictError{Code: code, Reason: reason}
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}
