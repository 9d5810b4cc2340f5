// Package usecase contains the application services orchestrating
// validation, generation, storage, and formatting for each resource type.
package usecase

import (
	"context"
	"log/slog"

	"storefront/src/core/ports"
)

// resourceService is the read side shared by both resource services: pull
// entities from the store and project each one into its display form.
// Create paths differ per resource and live on the embedding service.
type resourceService[E ports.Entity, P any] struct {
	store   ports.RecordStore[E]
	project func(E) P
	log     *slog.Logger
}

// ListAll returns the projection of every stored entity in insertion order.
func (s *resourceService[E, P]) ListAll(ctx context.Context) ([]P, error) {
	entities, err := s.store.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]P, 0, len(entities))
	for _, e := range entities {
		out = append(out, s.project(e))
	}
	s.log.Debug("fetched all records", "count", len(out))
	return out, nil
}

// GetByID returns the projection of the entity with the given identifier,
// or an error wrapping domain.ErrNotFound.
func (s *resourceService[E, P]) GetByID(ctx context.Context, id string) (P, error) {
	entity, err := s.store.FindByID(ctx, id)
	if err != nil {
		var zero P
		return zero, err
	}
	return s.project(entity), nil
}
