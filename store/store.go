/*
Package store defines scenario persistence for the projection service.

PURPOSE:
  The engine itself never persists anything; it computes over a snapshot
  and forgets it. What users do want saved is the snapshot itself - the
  config, phases, and transactions of a projection they set up - so it can
  be reloaded later. This package defines that contract; implementations
  live in memory.go (tests, dev) and sqlite/ (production).

SNAPSHOT SEMANTICS:
  Payload is the serialized input snapshot, opaque to the store. The store
  never interprets it; versioning of the snapshot format is the API
  layer's concern.

SEE ALSO:
  - store/sqlite/sqlite.go: SQLite implementation
  - api/handlers.go: Scenario endpoints using this interface
*/
package store

import (
	"context"
	"errors"
	"time"
)

// ErrScenarioNotFound is returned when the requested scenario ID is unknown.
var ErrScenarioNotFound = errors.New("scenario not found")

// Scenario is one saved input snapshot.
type Scenario struct {
	ID        string
	Name      string
	Payload   []byte // serialized input snapshot, opaque to the store
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScenarioStore persists named input snapshots.
type ScenarioStore interface {
	// Save inserts or replaces a scenario by ID. CreatedAt is preserved on
	// replace; UpdatedAt is set by the store.
	Save(ctx context.Context, s Scenario) error

	// Get returns the scenario or ErrScenarioNotFound.
	Get(ctx context.Context, id string) (Scenario, error)

	// List returns all scenarios ordered by UpdatedAt descending.
	List(ctx context.Context) ([]Scenario, error)

	// Delete removes a scenario. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error
}
