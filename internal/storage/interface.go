package storage

import (
	"context"

	"github.com/salihsuliman/queue-up/internal/fixture"
)

// Storage defines the interface for fixture snapshot persistence.
//
// The fixture is seeded once (typically by the first server instance to
// boot, or out of band) and read at startup; nothing mutates it after
// load. The Redis backend exists so a fleet of instances can share one
// seeded snapshot instead of each shipping the fixture file.
type Storage interface {
	// SaveFixture stores the full fixture document, replacing any
	// previously seeded snapshot.
	SaveFixture(ctx context.Context, f *fixture.File) error

	// GetFixture returns the seeded fixture document, or
	// model.ErrFixtureNotFound if nothing has been seeded yet.
	GetFixture(ctx context.Context) (*fixture.File, error)
}
