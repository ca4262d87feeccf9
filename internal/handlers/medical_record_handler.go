package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/medical"
)

type MedicalRecordHandler struct {
	records *medical.Service
}

func NewMedicalRecordHandler(svc *medical.Service) *MedicalRecordHandler {
	return &MedicalRecordHandler{records: svc}
}

func (h *MedicalRecordHandler) List(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.records.List(c.Request.Context(), middleware.PrincipalFrom(c), medical.ListFilter{
		Search:         c.Query("search"),
		PetID:          queryUint(c, "pet_id"),
		VeterinarianID: queryUint(c, "veterinarian_id"),
		From:           c.Query("from"),
		To:             c.Query("to"),
		Page:           page,
		PerPage:        perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

// ByPet atende /api/pets/:id/medical-records.
func (h *MedicalRecordHandler) ByPet(c *gin.Context) {
	petID, ok := idParam(c, "id")
	if !ok {
		return
	}

	items, err := h.records.ByPet(c.Request.Context(), middleware.PrincipalFrom(c), petID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *MedicalRecordHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	rec, err := h.records.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, rec)
}

func (h *MedicalRecordHandler) Create(c *gin.Context) {
	var in medical.Input
	if !bindJSON(c, &in) {
		return
	}

	rec, err := h.records.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, rec)
}

func (h *MedicalRecordHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.records.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := medical.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	rec, err := h.records.Update(c.Request.Context(), p, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, rec)
}

func (h *MedicalRecordHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.records.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
