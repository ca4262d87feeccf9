package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/vaccination"
)

const defaultDueDays = 30

type VaccinationHandler struct {
	vaccinations *vaccination.Service
}

func NewVaccinationHandler(svc *vaccination.Service) *VaccinationHandler {
	return &VaccinationHandler{vaccinations: svc}
}

// ListByPet atende /api/pets/:id/vaccinations.
func (h *VaccinationHandler) ListByPet(c *gin.Context) {
	petID, ok := idParam(c, "id")
	if !ok {
		return
	}

	items, err := h.vaccinations.ListByPet(c.Request.Context(), middleware.PrincipalFrom(c), petID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

// Due lista próximas doses em ?days= dias (padrão 30).
func (h *VaccinationHandler) Due(c *gin.Context) {
	days := cast.ToInt(c.Query("days"))
	if days <= 0 {
		days = defaultDueDays
	}

	items, err := h.vaccinations.Due(c.Request.Context(), middleware.PrincipalFrom(c), days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *VaccinationHandler) Create(c *gin.Context) {
	petID, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in vaccination.Input
	if !bindJSON(c, &in) {
		return
	}

	v, err := h.vaccinations.Create(c.Request.Context(), middleware.PrincipalFrom(c), petID, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, v)
}

func (h *VaccinationHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.vaccinations.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := vaccination.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	v, err := h.vaccinations.Update(c.Request.Context(), p, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, v)
}

func (h *VaccinationHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.vaccinations.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
