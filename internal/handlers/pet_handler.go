package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/imaging"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/observability"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/pet"
)

type PetHandler struct {
	pets    *pet.Service
	metrics *observability.Metrics
}

func NewPetHandler(pets *pet.Service, m *observability.Metrics) *PetHandler {
	return &PetHandler{pets: pets, metrics: m}
}

// ======================================================
// READ
// ======================================================

func (h *PetHandler) List(c *gin.Context) {
	page, perPage := httpresp.Pagination(c)

	result, err := h.pets.List(c.Request.Context(), middleware.PrincipalFrom(c), pet.ListFilter{
		Search:   c.Query("search"),
		Species:  c.Query("species"),
		ClientID: queryUint(c, "client_id"),
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Paged(c, result)
}

func (h *PetHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.pets.Get(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PetHandler) History(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	history, err := h.pets.History(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, history)
}

// ======================================================
// WRITE
// ======================================================

func (h *PetHandler) Create(c *gin.Context) {
	var in pet.Input
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.pets.Create(c.Request.Context(), middleware.PrincipalFrom(c), in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.Created(c, p)
}

func (h *PetHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	principal := middleware.PrincipalFrom(c)

	current, err := h.pets.Get(c.Request.Context(), principal, id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	in := pet.InputOf(current)
	if !bindJSON(c, &in) {
		return
	}

	p, err := h.pets.Update(c.Request.Context(), principal, id, in)
	if err != nil {
		httperr.RespondWithInput(c, err, in)
		return
	}
	httpresp.OK(c, p)
}

func (h *PetHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.pets.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

// ======================================================
// PHOTO
// ======================================================

// UploadPhoto recebe multipart com o campo "photo".
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	// folga para os cabeçalhos do multipart
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, imaging.MaxUploadBytes+64<<10)

	header, err := c.FormFile("photo")
	if err != nil {
		h.observe("rejected")
		httperr.Respond(c, httperr.FieldError("photo", "Debe adjuntar una imagen de máximo 2 MB."))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.observe("failed")
		httperr.Respond(c, err)
		return
	}
	defer file.Close()

	p, err := h.pets.UploadPhoto(c.Request.Context(), middleware.PrincipalFrom(c), id, file)
	if err != nil {
		var ve httperr.ValidationError
		if errors.As(err, &ve) {
			h.observe("rejected")
		} else {
			h.observe("failed")
		}
		httperr.Respond(c, err)
		return
	}

	h.observe("stored")
	httpresp.OK(c, p)
}

func (h *PetHandler) RemovePhoto(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	p, err := h.pets.RemovePhoto(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, p)
}

func (h *PetHandler) observe(outcome string) {
	h.metrics.PhotoUploadsTotal.WithLabelValues(outcome).Inc()
}
