package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/validators"
)

// idParam lê um id de rota; em caso de erro já respondeu 404.
func idParam(c *gin.Context, name string) (uint, bool) {
	id := cast.ToUint(c.Param(name))
	if id == 0 {
		httperr.NotFound(c, "not_found", "El registro solicitado no existe.")
		return 0, false
	}
	return id, true
}

// bindJSON só decodifica; as regras de validação ficam nos casos de uso.
func bindJSON(c *gin.Context, in any) bool {
	if err := c.ShouldBindJSON(in); err != nil {
		httperr.RespondWithInput(c, validators.Translate(err), nil)
		return false
	}
	return true
}

func queryUint(c *gin.Context, key string) uint {
	return cast.ToUint(c.Query(key))
}

// queryBool devolve nil quando o parâmetro não veio.
func queryBool(c *gin.Context, key string) *bool {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil
	}
	v := cast.ToBool(raw)
	return &v
}

// monthParam lê ?month=YYYY-MM dos calendários; vazio é o mês corrente.
func monthParam(c *gin.Context) (int, int, bool) {
	raw := c.Query("month")
	if raw == "" {
		now := timezone.Now()
		return now.Year(), int(now.Month()), true
	}

	t, err := time.Parse("2006-01", raw)
	if err != nil {
		httperr.Respond(c, httperr.FieldError("month", "Use el formato AAAA-MM."))
		return 0, 0, false
	}
	return t.Year(), int(t.Month()), true
}
