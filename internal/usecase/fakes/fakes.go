package fakes

import (
	"sort"
	"sync"

	"github.com/BruksfildServices01/petcare-manager/internal/httperr"
)

// table é um mapa id → valor com ids sequenciais, protegido por mutex.
type table[T any] struct {
	mu     sync.Mutex
	rows   map[uint]T
	nextID uint
	entity string
}

func newTable[T any](entity string) *table[T] {
	return &table[T]{rows: map[uint]T{}, entity: entity}
}

func (t *table[T]) insert(setID func(uint), v func() T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	setID(t.nextID)
	t.rows[t.nextID] = v()
}

func (t *table[T]) put(id uint, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return httperr.ErrNotFound(t.entity)
	}
	t.rows[id] = v
	return nil
}

func (t *table[T]) get(id uint) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, httperr.ErrNotFound(t.entity)
	}
	return v, nil
}

func (t *table[T]) remove(id uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return httperr.ErrNotFound(t.entity)
	}
	delete(t.rows, id)
	return nil
}

// all devolve os valores em ordem de id.
func (t *table[T]) all() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]uint, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}
