package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
)

type MeHandler struct {
	registry *access.Registry
}

func NewMeHandler(registry *access.Registry) *MeHandler {
	return &MeHandler{registry: registry}
}

// GetMe expõe o que o front precisa para montar menus: permissões e segmentos.
func (h *MeHandler) GetMe(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		httperr.Respond(c, httperr.ErrUnauthenticated)
		return
	}

	segments, restricted := h.registry.Segments(p.Role)

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":     p.UserID,
			"name":   p.Name,
			"role":   p.Role,
			"active": p.Active,
		},
		"permissions": h.registry.Permissions(p.Role),
		"segments":    segments,
		"restricted":  restricted,
	})
}
