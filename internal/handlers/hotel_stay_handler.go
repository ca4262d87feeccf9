package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/hotelstay"
)

type HotelStayHandler struct {
	stays *hotelstay.Service
}

func NewHotelStayHandler(svc *hotelstay.Service) *HotelStayHandler {
	return &HotelStayHandler{stays: svc}
}

// ======================================================
// READ
// ======================================================

func (h *HotelStayHandler) List(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.stays.List(c.Request.Context(), middleware.PrincipalFrom(c), hotelstay.ListFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		RoomType: c.Query("room_type"),
		From:     c.Query("from"),
		To:       c.Query("to"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

func (h *HotelStayHandler) Calendar(c *gin.Context) {
	year, month, ok := monthParam(c)
	if !ok {
		return
	}

	events, err := h.stays.Calendar(c.Request.Context(), middleware.PrincipalFrom(c), year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, events)
}

func (h *HotelStayHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	hs, err := h.stays.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, hs)
}

// ======================================================
// WRITE
// ======================================================

func (h *HotelStayHandler) Create(c *gin.Context) {
	var in hotelstay.Input
	if !bindJSON(c, &in) {
		return
	}

	hs, err := h.stays.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, hs)
}

func (h *HotelStayHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.stays.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := hotelstay.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	hs, err := h.stays.Update(c.Request.Context(), p, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, hs)
}

func (h *HotelStayHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.stays.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// STATUS
// ======================================================

type stayTransition func(ctx context.Context, p *access.Principal, id uint) (*models.HotelStay, error)

func (h *HotelStayHandler) CheckIn(c *gin.Context)  { h.transition(c, h.stays.CheckIn) }
func (h *HotelStayHandler) CheckOut(c *gin.Context) { h.transition(c, h.stays.CheckOut) }
func (h *HotelStayHandler) Cancel(c *gin.Context)   { h.transition(c, h.stays.Cancel) }

func (h *HotelStayHandler) transition(c *gin.Context, fn stayTransition) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	hs, err := fn(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, hs)
}
