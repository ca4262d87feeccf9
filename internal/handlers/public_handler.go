package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/catalog"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/pqr"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende as rotas sem autenticação.
type PublicHandler struct {
	catalog *catalog.Service
	pqrs    *pqr.Service
}

func NewPublicHandler(catalog *catalog.Service, pqrs *pqr.Service) *PublicHandler {
	return &PublicHandler{catalog: catalog, pqrs: pqrs}
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	categories, err := h.catalog.PublicCatalog(c.Request.Context(), c.Query("segment"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, categories)
}

////////////////////////////////////////////////////////
// PQRS
////////////////////////////////////////////////////////

func (h *PublicHandler) SubmitPqr(c *gin.Context) {
	var in pqr.SubmitInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.pqrs.Submit(c.Request.Context(), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}

	httpresp.Created(c, gin.H{
		"id":      p.ID,
		"status":  p.Status,
		"message": "Su solicitud fue registrada. Le responderemos al correo indicado.",
	})
}
