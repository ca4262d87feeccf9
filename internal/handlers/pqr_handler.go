package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/pqr"
)

type PqrHandler struct {
	pqrs *pqr.Service
}

func NewPqrHandler(svc *pqr.Service) *PqrHandler {
	return &PqrHandler{pqrs: svc}
}

func filterFrom(c *gin.Context) pqr.ListFilter {
	page, perPage := httpresp.Pagination(c)
	return pqr.ListFilter{
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Type:       c.Query("type"),
		AssignedTo: queryUint(c, "assigned_to"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Page:       page,
		PerPage:    perPage,
	}
}

// ======================================================
// READ
// ======================================================

func (h *PqrHandler) List(c *gin.Context) {
	result, err := h.pqrs.List(c.Request.Context(), middleware.PrincipalFrom(c), filterFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

func (h *PqrHandler) Mine(c *gin.Context) {
	result, err := h.pqrs.Mine(c.Request.Context(), middleware.PrincipalFrom(c), filterFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

func (h *PqrHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.pqrs.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

// ======================================================
// WRITE
// ======================================================

func (h *PqrHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in pqr.UpdateInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.pqrs.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, p)
}

func (h *PqrHandler) Assign(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in pqr.AssignInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.pqrs.Assign(c.Request.Context(), middleware.PrincipalFrom(c), id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, p)
}

func (h *PqrHandler) Respond(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in pqr.RespondInput
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.pqrs.Respond(c.Request.Context(), middleware.PrincipalFrom(c), id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, p)
}

func (h *PqrHandler) Close(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.pqrs.Close(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PqrHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.pqrs.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
