package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{catalog: svc}
}

// ======================================================
// CATEGORIES
// ======================================================

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	items, err := h.catalog.ListCategories(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("segment"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var in catalog.CategoryInput
	if !bindJSON(c, &in) {
		return
	}

	cat, err := h.catalog.CreateCategory(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, cat)
}

// ======================================================
// SERVICES
// ======================================================

func (h *CatalogHandler) ListServices(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.catalog.ListServices(c.Request.Context(), middleware.PrincipalFrom(c), catalog.ListFilter{
		Search:     c.Query("search"),
		CategoryID: queryUint(c, "category_id"),
		Segment:    c.Query("segment"),
		Active:     queryBool(c, "active"),
		Page:       page,
		PerPage:    perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	svc, err := h.catalog.GetService(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var in catalog.ServiceInput
	if !bindJSON(c, &in) {
		return
	}

	svc, err := h.catalog.CreateService(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.catalog.GetService(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := catalog.ServiceInputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	svc, err := h.catalog.UpdateService(c.Request.Context(), p, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) UpdatePrice(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in catalog.PriceInput
	if !bindJSON(c, &in) {
		return
	}

	svc, err := h.catalog.UpdatePrice(c.Request.Context(), middleware.PrincipalFrom(c), id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, svc)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.catalog.DeleteService(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
