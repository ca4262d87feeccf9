package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/user"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(users *user.Service) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) List(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.users.List(c.Request.Context(), middleware.PrincipalFrom(c), user.ListFilter{
		Search:  c.Query("search"),
		Role:    c.Query("role"),
		Active:  queryBool(c, "active"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	u, err := h.users.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, u)
}

func (h *UserHandler) Create(c *gin.Context) {
	var in user.Input
	if !bindJSON(c, &in) {
		return
	}

	u, err := h.users.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		in.Password = ""
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, u)
}

// Update aceita corpo parcial: o que não vier mantém o valor atual.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.users.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := user.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	u, err := h.users.Update(c.Request.Context(), p, id, in)
	if err != nil {
		in.Password = ""
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, u)
}
