package fakes

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/BruksfildServices01/petcare-manager/internal/audit"
	"github.com/BruksfildServices01/petcare-manager/internal/infra/storage"
)

// --------------------------------------------------
// Audit
// --------------------------------------------------

type Audit struct {
	mu      sync.Mutex
	Entries []audit.Entry
}

func (a *Audit) Record(_ context.Context, e audit.Entry) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Entries = append(a.Entries, e)
}

func (a *Audit) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.Entries))
	for i, e := range a.Entries {
		out[i] = e.Action
	}
	return out
}

var _ audit.Recorder = (*Audit)(nil)

// --------------------------------------------------
// Storage
// --------------------------------------------------

type Store struct {
	mu         sync.Mutex
	Objects    map[string][]byte
	FailPut    bool
	FailDelete bool
}

func NewStore() *Store {
	return &Store{Objects: map[string][]byte{}}
}

func (s *Store) Put(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	if s.FailPut {
		return errors.New("put failed")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = data
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	if s.FailDelete {
		return errors.New("delete failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, key)
	return nil
}

func (s *Store) URL(key string) string {
	if key == "" {
		return ""
	}
	return "https://cdn.test/" + key
}

var _ storage.Store = (*Store)(nil)

// --------------------------------------------------
// Rate limit
// --------------------------------------------------

type Limiter struct {
	mu    sync.Mutex
	Limit int
	hits  map[string]int
	Err   error
}

func (l *Limiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.hits == nil {
		l.hits = map[string]int{}
	}
	l.hits[key]++
	if l.Err != nil {
		return true, l.Err
	}
	return l.hits[key] <= l.Limit, nil
}
