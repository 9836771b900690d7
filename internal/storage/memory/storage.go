package memory

import (
	"context"
	"sync"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	fixture *fixture.File
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveFixture(ctx context.Context, f *fixture.File) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fixture = f
	return nil
}

func (s *Storage) GetFixture(ctx context.Context) (*fixture.File, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fixture == nil {
		return nil, model.ErrFixtureNotFound
	}
	return s.fixture, nil
}
