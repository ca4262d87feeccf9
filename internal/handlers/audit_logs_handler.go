package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/access"
	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/httpresp"
	"github.com/BruksfildServices01/petcare-manager/internal/middleware"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
	"github.com/BruksfildServices01/petcare-manager/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db    *gorm.DB
	guard *access.Guard
}

func NewAuditLogsHandler(db *gorm.DB, guard *access.Guard) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, guard: guard}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	if err := h.guard.Authorize(middleware.PrincipalFrom(c), access.ViewAuditLogs); err != nil {
		httperr.Respond(c, err)
		return
	}

	page, perPage := httpresp.Pagination(c)
	spec := query.New().Paginate(page, perPage)

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if userID := queryUint(c, "user_id"); userID != 0 {
		q = q.Where("user_id = ?", userID)
	}

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := timezone.ParseDate(fromStr)
		if err != nil {
			httperr.Respond(c, httperr.FieldError("from", "Use el formato AAAA-MM-DD."))
			return
		}
		q = q.Where("created_at >= ?", from)
	}

	if toStr := c.Query("to"); toStr != "" {
		to, err := timezone.ParseDate(toStr)
		if err != nil {
			httperr.Respond(c, httperr.FieldError("to", "Use el formato AAAA-MM-DD."))
			return
		}
		q = q.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Error al contar los registros de auditoría.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(spec.PerPage).
		Offset(spec.Offset()).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Error al listar los registros de auditoría.")
		return
	}

	httpresp.Paged(c, query.Page[models.AuditLog]{
		Items:   logs,
		Total:   total,
		Page:    spec.Page,
		PerPage: spec.PerPage,
	})
}
