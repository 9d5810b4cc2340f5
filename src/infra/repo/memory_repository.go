// Package repo provides the in-memory RecordStore adapter.
//
// State lives only for the process lifetime; there is no durable storage.
package repo

import (
	"context"
	"fmt"
	"sync"

	"storefront/src/core/domain"
	"storefront/src/core/ports"
)

// MemoryStore is a mutex-guarded, insertion-ordered collection of entities
// keyed by identifier. It implements ports.RecordStore.
type MemoryStore[E ports.Entity] struct {
	mu    sync.RWMutex
	items []E
	index map[string]int
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore[E ports.Entity]() *MemoryStore[E] {
	return &MemoryStore[E]{index: make(map[string]int)}
}

// Append adds an entity. Duplicate identifiers are rejected; the generator
// is expected never to collide, so this is a defensive check only.
func (s *MemoryStore[E]) Append(_ context.Context, entity E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := entity.EntityID()
	if _, ok := s.index[id]; ok {
		return domain.NewAlreadyExistsError(fmt.Sprintf("entity %s", id))
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, entity)
	return nil
}

// All returns a snapshot of every stored entity in insertion order.
func (s *MemoryStore[E]) All(_ context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]E, len(s.items))
	copy(out, s.items)
	return out, nil
}

// FindByID returns the entity with the given identifier, or an error
// wrapping domain.ErrNotFound.
func (s *MemoryStore[E]) FindByID(_ context.Context, id string) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[id]; ok {
		return s.items[i], nil
	}
	var zero E
	return zero, fmt.Errorf("entity %s: %w", id, domain.ErrNotFound)
}

// Len returns the number of stored entities.
func (s *MemoryStore[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
