package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/export"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
	"github.com/BruksfildServices01/petcare-manager/internal/usecase/report"
)

type ReportHandler struct {
	reports *report.Service
}

func NewReportHandler(svc *report.Service) *ReportHandler {
	return &ReportHandler{reports: svc}
}

type writeFunc func(ctx context.Context, p *access.Principal, period report.Period, w io.Writer) error

func (h *ReportHandler) Services(c *gin.Context) {
	h.download(c, "servicios", "xlsx", export.ContentTypeXLSX, h.reports.WriteServices)
}

func (h *ReportHandler) Financial(c *gin.Context) {
	h.download(c, "financiero", "xlsx", export.ContentTypeXLSX, h.reports.WriteFinancial)
}

func (h *ReportHandler) Pqrs(c *gin.Context) {
	h.download(c, "pqrs", "csv", export.ContentTypeCSV, h.reports.WritePqrs)
}

func (h *ReportHandler) Breeds(c *gin.Context) {
	h.download(c, "razas", "csv", export.ContentTypeCSV,
		func(ctx context.Context, p *access.Principal, _ report.Period, w io.Writer) error {
			return h.reports.WriteBreeds(ctx, p, w)
		})
}

// download monta o arquivo em memória: um erro no meio ainda vira JSON.
func (h *ReportHandler) download(c *gin.Context, name, ext, contentType string, write writeFunc) {
	var period report.Period
	if err := c.ShouldBindQuery(&period); err != nil {
		httperr.Respond(c, httperr.FieldError("from", "Parámetros de fecha inválidos."))
		return
	}

	var buf bytes.Buffer
	if err := write(c.Request.Context(), middleware.PrincipalFrom(c), period, &buf); err != nil {
		httperr.Respond(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.%s", name, timezone.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
