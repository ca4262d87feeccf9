package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

// renderer traduz query.Spec para cláusulas gorm de uma tabela.
// Valores de fields com "?" são expressões completas; os demais viram "col = ?".
type renderer struct {
	fields      map[string]string
	search      func(like string) (string, []any)
	segment     func(segs []string) (string, []any)
	defaultSort string
}

func segmentStrings(segs []models.Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = string(s)
	}
	return out
}

// fixedSegment serve tabelas que pertencem inteiras a um segmento.
func fixedSegment(seg models.Segment) func([]string) (string, []any) {
	return func(segs []string) (string, []any) {
		for _, s := range segs {
			if s == string(seg) {
				return "1 = 1", nil
			}
		}
		return "1 = 0", nil
	}
}

func (r renderer) column(field string) (string, error) {
	col, ok := r.fields[field]
	if !ok {
		return "", httperr.FieldError(field, "Filtro no soportado.")
	}
	return col, nil
}

func (r renderer) filter(q *gorm.DB, spec query.Spec) (*gorm.DB, error) {
	for _, p := range spec.Predicates {
		switch pr := p.(type) {

		case query.Eq:
			col, err := r.column(pr.Field)
			if err != nil {
				return nil, err
			}
			if strings.Contains(col, "?") {
				q = q.Where(col, pr.Value)
			} else {
				q = q.Where(col+" = ?", pr.Value)
			}

		case query.EqOrNull:
			col, err := r.column(pr.Field)
			if err != nil {
				return nil, err
			}
			q = q.Where("("+col+" = ? OR "+col+" IS NULL)", pr.Value)

		case query.Search:
			term := strings.ToLower(strings.TrimSpace(pr.Term))
			if term == "" {
				continue
			}
			if r.search == nil {
				return nil, httperr.FieldError("search", "Búsqueda no soportada.")
			}
			sql, args := r.search("%" + term + "%")
			q = q.Where("("+sql+")", args...)

		case query.DateRange:
			col, err := r.column(pr.Field)
			if err != nil {
				return nil, err
			}
			if pr.From != nil {
				q = q.Where(col+" >= ?", *pr.From)
			}
			if pr.To != nil {
				q = q.Where(col+" < ?", *pr.To)
			}

		case query.SegmentIn:
			if len(pr.Segments) == 0 {
				q = q.Where("1 = 0")
				continue
			}
			if r.segment == nil {
				return nil, fmt.Errorf("segment filter not supported here")
			}
			sql, args := r.segment(segmentStrings(pr.Segments))
			q = q.Where(sql, args...)

		default:
			return nil, fmt.Errorf("unsupported predicate %T", p)
		}
	}
	return q, nil
}

func (r renderer) order(q *gorm.DB, spec query.Spec) *gorm.DB {
	if spec.Sort.Field != "" {
		if col, ok := r.fields[spec.Sort.Field]; ok && !strings.Contains(col, "?") {
			if spec.Sort.Desc {
				return q.Order(col + " DESC")
			}
			return q.Order(col + " ASC")
		}
	}
	if r.defaultSort != "" {
		return q.Order(r.defaultSort)
	}
	return q
}

// list executa contagem + página. prepare acrescenta Preload/Joins.
func list[T any](
	ctx context.Context,
	db *gorm.DB,
	r renderer,
	spec query.Spec,
	entity string,
	prepare func(*gorm.DB) *gorm.DB,
) (query.Page[T], error) {

	var model T
	q, err := r.filter(db.WithContext(ctx).Model(&model), spec)
	if err != nil {
		return query.Page[T]{}, err
	}

	page := query.Page[T]{Page: spec.Page, PerPage: spec.PerPage}

	if err := q.Count(&page.Total).Error; err != nil {
		return query.Page[T]{}, dbErr(err, entity, "count")
	}

	q = r.order(q, spec)
	if prepare != nil {
		q = prepare(q)
	}
	if spec.Paginated() {
		q = q.Limit(spec.PerPage).Offset(spec.Offset())
	}

	items := []T{}
	if err := q.Find(&items).Error; err != nil {
		return query.Page[T]{}, dbErr(err, entity, "list")
	}
	page.Items = items

	return page, nil
}

func count[T any](
	ctx context.Context,
	db *gorm.DB,
	r renderer,
	spec query.Spec,
	entity string,
) (int64, error) {

	var model T
	q, err := r.filter(db.WithContext(ctx).Model(&model), spec)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, dbErr(err, entity, "count")
	}
	return total, nil
}

// sum devolve 0 quando não há linhas.
func sum[T any](
	ctx context.Context,
	db *gorm.DB,
	r renderer,
	spec query.Spec,
	expr string,
	entity string,
) (float64, error) {

	var model T
	q, err := r.filter(db.WithContext(ctx).Model(&model), spec)
	if err != nil {
		return 0, err
	}

	var total float64
	if err := q.Select("COALESCE(SUM(" + expr + "), 0)").Scan(&total).Error; err != nil {
		return 0, dbErr(err, entity, "sum")
	}
	return total, nil
}
