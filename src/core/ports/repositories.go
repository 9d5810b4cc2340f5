// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import "context"

// Entity is anything addressable by a unique identifier.
type Entity interface {
	EntityID() string
}

// RecordStore holds entities of one type in insertion order, keyed by
// identifier. Both resource services share this single abstraction.
//
// Implementations must be safe under concurrent Append/All/FindByID: a
// reader sees either the full effect of an append or none of it.
type RecordStore[E Entity] interface {
	// Append adds an entity. It fails with domain.ErrAlreadyExists if the
	// identifier is already present.
	Append(ctx context.Context, entity E) error

	// All returns every stored entity in insertion order. The returned slice
	// is a snapshot; mutating it does not affect the store.
	All(ctx context.Context) ([]E, error)

	// FindByID returns the entity with the given identifier, or an error
	// wrapping domain.ErrNotFound. Absence is a normal outcome, not a fault.
	FindByID(ctx context.Context, id string) (E, error)
}
