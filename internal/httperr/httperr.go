package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Code    string            `json:"error_code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Input   any               `json:"input,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Respond traduz um erro de caso de uso para a resposta HTTP.
func Respond(c *gin.Context, err error) {
	RespondWithInput(c, err, nil)
}

// RespondWithInput devolve também a entrada original em erros de validação,
// para o cliente reenviar corrigido.
func RespondWithInput(c *gin.Context, err error, input any) {
	var (
		ve ValidationError
		be BusinessError
		fe ForbiddenError
		nf NotFoundError
		ce ConflictError
	)

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    ve.Code,
			Message: "Los datos enviados no son válidos.",
			Fields:  ve.Fields,
			Input:   input,
		})
	case errors.As(err, &be):
		msg := be.Message
		if msg == "" {
			msg = "La operación no es válida en el estado actual."
		}
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    be.Code,
			Message: msg,
			Input:   input,
		})
	case errors.Is(err, ErrUnauthenticated):
		Unauthorized(c, "unauthenticated", "Debe iniciar sesión.")
	case errors.As(err, &fe):
		Forbidden(c, fe.Code, "No tiene permisos para realizar esta acción.")
	case errors.As(err, &nf):
		NotFound(c, nf.Error(), "El registro solicitado no existe.")
	case errors.As(err, &ce):
		Write(c, http.StatusConflict, ce.Code, ce.Reason)
	default:
		zap.L().Error("unhandled request error",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		Internal(c, "internal_error", "Error interno del servidor.")
	}
}
