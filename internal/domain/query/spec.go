// Package query descreve filtros de listagem como dados: uma lista de
// predicados combinados com AND, traduzida para SQL só na camada de repositório.
package query

import (
	"time"

	"github.com/BruksfildServices01/petcare-manager/internal/models"
)

const (
	DefaultPerPage = 15
	MaxPerPage     = 100
)

type Predicate interface {
	predicate()
}

// Eq compara um campo lógico do repositório com um valor.
type Eq struct {
	Field string
	Value any
}

// EqOrNull aceita o valor ou NULL.
type EqOrNull struct {
	Field string
	Value any
}

// Search é a busca textual livre; cada repositório decide as colunas.
type Search struct {
	Term string
}

// DateRange filtra [From, To). Limites nil são ignorados.
type DateRange struct {
	Field string
	From  *time.Time
	To    *time.Time
}

// SegmentIn restringe a linhas cujo segmento da categoria está no conjunto.
// Conjunto vazio não casa com nada.
type SegmentIn struct {
	Segments []models.Segment
}

func (Eq) predicate()        {}
func (EqOrNull) predicate()  {}
func (Search) predicate()    {}
func (DateRange) predicate() {}
func (SegmentIn) predicate() {}

type Sort struct {
	Field string
	Desc  bool
}

type Spec struct {
	Predicates []Predicate
	Sort       Sort
	Page       int
	PerPage    int
}

func New(preds ...Predicate) Spec {
	return Spec{}.And(preds...)
}

// And devolve uma cópia com os predicados acrescentados; o receptor não muda.
func (s Spec) And(preds ...Predicate) Spec {
	out := s
	out.Predicates = make([]Predicate, 0, len(s.Predicates)+len(preds))
	out.Predicates = append(out.Predicates, s.Predicates...)
	for _, p := range preds {
		if p != nil {
			out.Predicates = append(out.Predicates, p)
		}
	}
	return out
}

func (s Spec) OrderBy(field string, desc bool) Spec {
	s.Sort = Sort{Field: field, Desc: desc}
	return s
}

func (s Spec) Paginate(page, perPage int) Spec {
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	s.Page = page
	s.PerPage = perPage
	return s
}

func (s Spec) Paginated() bool {
	return s.PerPage > 0
}

func (s Spec) Offset() int {
	if s.Page <= 1 {
		return 0
	}
	return (s.Page - 1) * s.PerPage
}

// SegmentSets devolve todos os SegmentIn presentes, na ordem.
func (s Spec) SegmentSets() [][]models.Segment {
	var out [][]models.Segment
	for _, p := range s.Predicates {
		if si, ok := p.(SegmentIn); ok {
			out = append(out, si.Segments)
		}
	}
	return out
}

// AllowsSegment diz se uma linha do segmento seg passaria por todos os SegmentIn.
func (s Spec) AllowsSegment(seg models.Segment) bool {
	for _, set := range s.SegmentSets() {
		found := false
		for _, allowed := range set {
			if allowed == seg {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

type Page[T any] struct {
	Items   []T
	Total   int64
	Page    int
	PerPage int
}
