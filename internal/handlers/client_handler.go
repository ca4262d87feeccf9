package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/client"
)

type ClientHandler struct {
	clients *client.Service
}

func NewClientHandler(clients *client.Service) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// ======================================================
// LIST / SEARCH
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.clients.List(c.Request.Context(), middleware.PrincipalFrom(c), client.ListFilter{
		Search:             c.Query("search"),
		IdentificationType: c.Query("identification_type"),
		Page:               page,
		PerPage:            perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

// Search é o autocomplete: ?q= com pelo menos dois caracteres.
func (h *ClientHandler) Search(c *gin.Context) {
	items, err := h.clients.QuickSearch(c.Request.Context(), middleware.PrincipalFrom(c), c.Query("q"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// DETAIL
// ======================================================

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	cl, err := h.clients.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) History(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	history, err := h.clients.History(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, history)
}

// ======================================================
// WRITE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var in client.Input
	if !bindJSON(c, &in) {
		return
	}

	cl, err := h.clients.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.clients.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := client.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	cl, err := h.clients.Update(c.Request.Context(), p, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.clients.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
