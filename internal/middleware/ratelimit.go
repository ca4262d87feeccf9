package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/ratelimit"
)

// RateLimit conta por IP dentro do escopo. onLimited é chamado a cada bloqueio
// e pode ser nil.
func RateLimit(limiter ratelimit.Limiter, scope string, onLimited func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			zap.L().Warn("rate limiter unavailable",
				zap.String("scope", scope),
				zap.Error(err),
			)
		}

		if !allowed {
			if onLimited != nil {
				onLimited()
			}
			httperr.Write(c, http.StatusTooManyRequests, "too_many_requests",
				"Ha realizado demasiadas solicitudes. Intente más tarde.")
			c.Abort()
			return
		}

		c.Next()
	}
}
