package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	appointments *appointment.Service
}

func NewAppointmentHandler(svc *appointment.Service) *AppointmentHandler {
	return &AppointmentHandler{appointments: svc}
}

// ======================================================
// LIST / CALENDAR
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.appointments.List(c.Request.Context(), middleware.PrincipalFrom(c), appointment.ListFilter{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		ServiceID: queryUint(c, "service_id"),
		UserID:    queryUint(c, "user_id"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

// Calendar recebe ?month=YYYY-MM; sem parâmetro usa o mês corrente.
func (h *AppointmentHandler) Calendar(c *gin.Context) {
	year, month, ok := monthParam(c)
	if !ok {
		return
	}

	events, err := h.appointments.Calendar(c.Request.Context(), middleware.PrincipalFrom(c), year, month)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, events)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.appointments.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var in appointment.Input
	if !bindJSON(c, &in) {
		return
	}

	ap, err := h.appointments.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	p := middleware.PrincipalFrom(c)

	current, err := h.appointments.Get(c.Request.Context(), p, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := appointment.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	ap, err := h.appointments.Update(c.Request.Context(), p, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in appointment.StatusInput
	if !bindJSON(c, &in) {
		return
	}

	ap, err := h.appointments.ChangeStatus(c.Request.Context(), middleware.PrincipalFrom(c), id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.appointments.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}
