// Package directory owns the frozen snapshot of player records and the
// game catalog. The snapshot is loaded once, at startup or on first
// seed, and then only read; every accessor hands out copies so callers
// cannot mutate shared state. Reads take the RLock purely to order
// against the one-time load, after which they are freely concurrent.
package directory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/storage"
)

// Service provides read access to the player directory
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu        sync.RWMutex
	loaded    bool
	players   []model.Player
	byID      map[model.PlayerID]int
	byGame    map[model.GameID][]int
	games     []model.Game
	gamesByID map[model.GameID]int
	meta      fixture.Metadata
	breakdown map[model.GameID]fixture.GameBreakdown
}

// Stats reports fixture metadata and the per-game breakdown
type Stats struct {
	Metadata      fixture.Metadata
	GameBreakdown map[model.GameID]fixture.GameBreakdown
}

// New creates a directory service over the compiled-in game catalog.
// The player snapshot is empty until one of the Load methods succeeds.
func New(store storage.Storage, logger *slog.Logger) *Service {
	games := model.Catalog()
	gamesByID := make(map[model.GameID]int, len(games))
	for i, g := range games {
		gamesByID[g.ID] = i
	}

	return &Service{
		storage:   store,
		logger:    logger,
		games:     games,
		gamesByID: gamesByID,
	}
}

// LoadFromStorage loads the fixture previously seeded into storage.
// Returns model.ErrFixtureNotFound when nothing has been seeded.
func (s *Service) LoadFromStorage(ctx context.Context) error {
	f, err := s.storage.GetFixture(ctx)
	if err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	return s.install(f)
}

// LoadFromFile loads a fixture file from disk and seeds it into storage
// so other instances (or later restarts) can load from there instead.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	f, err := fixture.Load(path)
	if err != nil {
		return err
	}

	if err := s.storage.SaveFixture(ctx, f); err != nil {
		return err
	}

	return s.install(f)
}

// LoadFixture validates and installs a fixture directly (useful for testing)
func (s *Service) LoadFixture(f *fixture.File) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return s.install(f)
}

func (s *Service) install(f *fixture.File) error {
	players := make([]model.Player, len(f.Players))
	byID := make(map[model.PlayerID]int, len(f.Players))
	byGame := make(map[model.GameID][]int)
	for i, p := range f.Players {
		players[i] = p.Clone()
		byID[p.ID] = i
		byGame[p.Game] = append(byGame[p.Game], i)
	}

	breakdown := f.GameBreakdown
	if breakdown == nil {
		breakdown = fixture.Summarize(f.Players)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = players
	s.byID = byID
	s.byGame = byGame
	s.meta = f.Metadata
	s.breakdown = breakdown
	s.loaded = true

	s.logger.Info("directory loaded",
		slog.Int("players", len(players)),
		slog.Int("games", len(byGame)),
	)

	return nil
}

// IsLoaded returns whether a fixture snapshot has been installed
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Games returns the full game catalog in its canonical order
func (s *Service) Games() []model.Game {
	return model.Catalog()
}

// GameByID looks up a catalog entry. Returns model.ErrGameNotFound for
// an unknown id; callers treat this as a normal branch, not a failure.
func (s *Service) GameByID(id model.GameID) (model.Game, error) {
	i, ok := s.gamesByID[id]
	if !ok {
		return model.Game{}, model.ErrGameNotFound
	}
	return s.games[i], nil
}

// AllPlayers returns the full snapshot in insertion order
func (s *Service) AllPlayers() []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Player, len(s.players))
	for i, p := range s.players {
		out[i] = p.Clone()
	}
	return out
}

// PlayersForGame returns all players for one game in insertion order.
// An unknown or empty game yields an empty slice, never an error.
func (s *Service) PlayersForGame(id model.GameID) []model.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := s.byGame[id]
	out := make([]model.Player, len(indices))
	for i, idx := range indices {
		out[i] = s.players[idx].Clone()
	}
	return out
}

// PlayerByID looks up a single player. Returns model.ErrPlayerNotFound
// for an unknown id.
func (s *Service) PlayerByID(id model.PlayerID) (model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.byID[id]
	if !ok {
		return model.Player{}, model.ErrPlayerNotFound
	}
	return s.players[i].Clone(), nil
}

// Stats returns the fixture metadata and per-game breakdown.
// Returns model.ErrDirectoryNotLoaded before a fixture is installed.
func (s *Service) Stats() (Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return Stats{}, model.ErrDirectoryNotLoaded
	}
	return Stats{
		Metadata:      s.meta,
		GameBreakdown: s.breakdown,
	}, nil
}
