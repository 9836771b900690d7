package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/salihsuliman/queue-up/internal/dependencies/mocks"
	"github.com/salihsuliman/queue-up/internal/dependencies/random"
	"github.com/salihsuliman/queue-up/internal/gen"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/services/search"
	"github.com/salihsuliman/queue-up/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Generate a full fixture, load it, and run the API-level query
// paths against it end to end
func (s *IntegrationSuite) TestGeneratedFixtureRoundTrip() {
	clk := mocks.NewMockClock(time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC))
	generator := gen.NewGenerator(random.NewSeeded(99), clk, gen.DefaultConfig())
	f := generator.Generate()

	s.Require().NoError(s.app.Directory.LoadFixture(f))

	// Every catalog game has its full complement of players
	for _, game := range s.app.Directory.Games() {
		players := s.app.Directory.PlayersForGame(game.ID)
		s.Len(players, 20, "game %s", game.ID)

		inGame := 0
		for _, p := range players {
			if p.CurrentlyInGame {
				inGame++
			}
		}
		s.GreaterOrEqual(inGame, 5, "game %s", game.ID)
	}

	// Every player is reachable by id
	for _, p := range s.app.Directory.AllPlayers() {
		got, err := s.app.Directory.PlayerByID(p.ID)
		s.Require().NoError(err)
		s.Equal(p, got)
	}

	// Stats reflect the generated metadata
	stats, err := s.app.Directory.Stats()
	s.Require().NoError(err)
	s.Equal(180, stats.Metadata.TotalPlayers)
	s.Len(stats.GameBreakdown, 9)
}

func (s *IntegrationSuite) TestFilterOptionsRoundTripThroughSearch() {
	clk := mocks.NewMockClock(time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC))
	f := gen.NewGenerator(random.NewSeeded(7), clk, gen.DefaultConfig()).Generate()
	s.Require().NoError(s.app.Directory.LoadFixture(f))

	players := s.app.Directory.PlayersForGame("valorant")
	opts := search.OptionsFor(players)

	// Every offered option, applied as a filter, yields at least one
	// player carrying exactly that value
	for _, profession := range opts.Professions {
		p := profession
		matched := search.Apply(players, search.Filter{Profession: &p})
		s.Require().NotEmpty(matched, "profession %q", profession)
		for _, m := range matched {
			s.Equal(profession, m.Profession)
		}
	}

	for _, rank := range opts.Ranks {
		r := rank
		matched := search.Apply(players, search.Filter{Rank: &r})
		s.Require().NotEmpty(matched, "rank %q", rank)
	}

	// The age buckets cover every player
	covered := 0
	for _, bucket := range opts.AgeRanges {
		r, err := search.ParseAgeRange(bucket)
		s.Require().NoError(err)
		covered += len(search.Apply(players, search.Filter{Age: &r}))
	}
	s.Equal(len(players), covered)
}

func (s *IntegrationSuite) TestSeededStorageSharedAcrossServices() {
	clk := mocks.NewMockClock(time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC))
	f := gen.NewGenerator(random.NewSeeded(3), clk, gen.Config{PlayersPerGame: 4, MinInGame: 2}).Generate()

	// Seed through one app's storage, load through a second app sharing
	// the same backend
	s.Require().NoError(s.app.Storage.SaveFixture(s.ctx, f))

	other := newWithDependencies(s.app.Storage, testutil.NopLogger())
	s.Require().NoError(other.Directory.LoadFromStorage(s.ctx))

	s.True(other.Directory.IsLoaded())
	s.Len(other.Directory.AllPlayers(), 4*len(model.Catalog()))
}
