package store

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/tagcloud/pkg/cloud"
	"github.com/matzehuels/tagcloud/pkg/errors"
)

// MemoryStore keeps layouts in a map and remembers insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	layouts map[string]cloud.Layout
	order   []string
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{layouts: make(map[string]cloud.Layout)}
}

func (s *MemoryStore) Save(ctx context.Context, l cloud.Layout) (string, error) {
	l = prepare(l)
	l.Tags = slices.Clone(l.Tags)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.layouts[l.ID]; !exists {
		s.order = append(s.order, l.ID)
	}
	s.layouts[l.ID] = l
	return l.ID, nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (cloud.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.layouts[id]
	if !ok {
		return cloud.Layout{}, errors.New(errors.ErrCodeNotFound, "layout %s not found", id)
	}
	l.Tags = slices.Clone(l.Tags)
	return l, nil
}

func (s *MemoryStore) List(ctx context.Context, limit int) ([]cloud.Layout, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.order)
	if limit > 0 {
		n = min(n, limit)
	}
	out := make([]cloud.Layout, 0, n)
	for _, id := range s.order[:n] {
		l := s.layouts[id]
		l.Tags = slices.Clone(l.Tags)
		out = append(out, l)
	}
	return out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.layouts[id]; !ok {
		return errors.New(errors.ErrCodeNotFound, "layout %s not found", id)
	}
	delete(s.layouts, id)
	s.order = slices.DeleteFunc(s.order, func(v string) bool { return v == id })
	return nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

var _ Store = (*MemoryStore)(nil)
