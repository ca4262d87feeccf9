package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

type PagedResponse[T any] struct {
	Data    []T   `json:"data"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Paged[T any](c *gin.Context, page query.Page[T]) {
	items := page.Items
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, PagedResponse[T]{
		Data:    items,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
	})
}

// Pagination lê ?page= e ?per_page=; valores inválidos viram zero e o
// repositório aplica os padrões.
func Pagination(c *gin.Context) (page, perPage int) {
	return cast.ToInt(c.Query("page")), cast.ToInt(c.Query("per_page"))
}
