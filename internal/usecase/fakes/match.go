// Package fakes traz repositórios em memória para os testes dos casos de uso.
// Os filtros de query.Spec são avaliados de forma simplificada: campos que a
// entidade não expõe são ignorados.
package fakes

import (
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/domain/query"
	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

type row struct {
	fields  map[string]any
	text    string
	segment models.Segment
}

func same(a, b any) bool {
	return fmt.Sprint(deref(a)) == fmt.Sprint(deref(b))
}

func deref(v any) any {
	switch x := v.(type) {
	case *uint:
		if x == nil {
			return nil
		}
		return *x
	case *time.Time:
		if x == nil {
			return nil
		}
		return *x
	case models.Segment:
		return string(x)
	}
	return v
}

func (r row) matches(spec query.Spec) bool {
	for _, p := range spec.Predicates {
		switch pr := p.(type) {
		case query.Eq:
			v, ok := r.fields[pr.Field]
			if ok && !same(v, pr.Value) {
				return false
			}
		case query.EqOrNull:
			v, ok := r.fields[pr.Field]
			if ok && deref(v) != nil && !same(v, pr.Value) {
				return false
			}
		case query.Search:
			term := strings.ToLower(strings.TrimSpace(pr.Term))
			if term != "" && !strings.Contains(strings.ToLower(r.text), term) {
				return false
			}
		case query.DateRange:
			v, ok := r.fields[pr.Field]
			if !ok {
				continue
			}
			t, isTime := deref(v).(time.Time)
			if !isTime {
				return false
			}
			if pr.From != nil && t.Before(*pr.From) {
				return false
			}
			if pr.To != nil && !t.Before(*pr.To) {
				return false
			}
		case query.SegmentIn:
			found := false
			for _, s := range pr.Segments {
				if s == r.segment {
					found = true
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func paginate[T any](items []T, spec query.Spec) query.Page[T] {
	page := query.Page[T]{Total: int64(len(items)), Page: spec.Page, PerPage: spec.PerPage}
	if spec.Paginated() {
		start := spec.Offset()
		if start > len(items) {
			start = len(items)
		}
		end := start + spec.PerPage
		if end > len(items) {
			end = len(items)
		}
		items = items[start:end]
	}
	page.Items = append([]T{}, items...)
	return page
}
