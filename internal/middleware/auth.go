package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/petcare-manager/internal/config"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
)

const (
	ContextPrincipal = "principal"
	ContextRequestID = "requestID"
)

// PrincipalResolver recarrega o usuário do token a cada requisição, para que
// papel e ativação valham imediatamente.
type PrincipalResolver interface {
	Principal(ctx context.Context, id uint) (*access.Principal, error)
}

func AuthMiddleware(cfg *config.Config, users PrincipalResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Debe iniciar sesión.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Encabezado de autorización inválido.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "La sesión no es válida o expiró.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "La sesión no es válida o expiró.")
			c.Abort()
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			httperr.Unauthorized(c, "invalid_token_payload", "La sesión no es válida o expiró.")
			c.Abort()
			return
		}

		p, err := users.Principal(c.Request.Context(), uint(sub))
		if err != nil {
			if errors.Is(err, httperr.ErrUnauthenticated) {
				httperr.Unauthorized(c, "unknown_user", "La sesión no es válida o expiró.")
				c.Abort()
				return
			}
			httperr.Respond(c, err)
			c.Abort()
			return
		}

		// inativo não passa nem para rotas de leitura
		if !p.Active {
			httperr.Forbidden(c, "inactive_user", "Su usuario está inactivo.")
			c.Abort()
			return
		}

		c.Set(ContextPrincipal, p)
		c.Next()
	}
}

// PrincipalFrom devolve nil em rotas públicas.
func PrincipalFrom(c *gin.Context) *access.Principal {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*access.Principal)
	return p
}
