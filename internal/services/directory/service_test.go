package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/storage/memory"
	"github.com/salihsuliman/queue-up/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) testFixture() *fixture.File {
	players := []model.Player{
		{
			ID: "valorant_001", Username: "DuelistOne", Game: "valorant",
			Skill: model.SkillPro, Playstyle: []string{"Duelist", "IGL"},
			Online: true, CurrentlyInGame: true, Rank: "Immortal",
			HoursPlayed: 2400, Age: 24, Location: "London, UK", Profession: "Software Engineer",
		},
		{
			ID: "valorant_002", Username: "LurkerTwo", Game: "valorant",
			Skill: model.SkillIntermediate, Playstyle: []string{"Lurker"},
			Online: true, Rank: "Gold",
			HoursPlayed: 820, Age: 19, Location: "Tokyo, Japan", Profession: "Student",
		},
		{
			ID: "minecraft_001", Username: "RedstoneWiz", Game: "minecraft",
			Skill: model.SkillAdvanced, Playstyle: []string{"Redstone"},
			Online: true, CurrentlyInGame: true, Rank: "Expert",
			HoursPlayed: 4100, Age: 28, Location: "Berlin, Germany", Profession: "Artist",
		},
	}
	return &fixture.File{
		Players: players,
		Metadata: fixture.Metadata{
			TotalPlayers:         len(players),
			GamesIncluded:        2,
			CurrentlyInGameCount: 2,
			GeneratedAt:          time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC),
		},
	}
}

func (s *ServiceSuite) TestIsNotLoadedByDefault() {
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestGamesAvailableBeforeLoad() {
	// The catalog is compiled in; it does not depend on the fixture
	games := s.service.Games()
	s.Len(games, 9)
	s.Equal(model.GameID("valorant"), games[0].ID)
}

func (s *ServiceSuite) TestGameByID() {
	game, err := s.service.GameByID("minecraft")
	s.Require().NoError(err)
	s.Equal("Minecraft", game.Name)
}

func (s *ServiceSuite) TestGameByIDUnknown() {
	_, err := s.service.GameByID("half-life-3")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestStatsBeforeLoad() {
	_, err := s.service.Stats()
	s.ErrorIs(err, model.ErrDirectoryNotLoaded)
}

func (s *ServiceSuite) TestLoadFixture() {
	err := s.service.LoadFixture(s.testFixture())
	s.Require().NoError(err)

	s.True(s.service.IsLoaded())
	s.Len(s.service.AllPlayers(), 3)
}

func (s *ServiceSuite) TestLoadFixtureRejectsInvalid() {
	f := s.testFixture()
	f.Players[0].Game = "half-life-3"

	err := s.service.LoadFixture(f)
	s.ErrorIs(err, model.ErrInvalidFixture)
	s.False(s.service.IsLoaded())
}

func (s *ServiceSuite) TestGamePartitionsAreDisjointAndComplete() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	seen := make(map[model.PlayerID]model.GameID)
	total := 0
	for _, game := range s.service.Games() {
		for _, p := range s.service.PlayersForGame(game.ID) {
			s.Equal(game.ID, p.Game)
			_, dup := seen[p.ID]
			s.False(dup, "player %s appears in two partitions", p.ID)
			seen[p.ID] = game.ID
			total++
		}
	}
	s.Equal(len(s.service.AllPlayers()), total)
}

func (s *ServiceSuite) TestPlayersForGamePreservesOrder() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	players := s.service.PlayersForGame("valorant")
	s.Require().Len(players, 2)
	s.Equal(model.PlayerID("valorant_001"), players[0].ID)
	s.Equal(model.PlayerID("valorant_002"), players[1].ID)
}

func (s *ServiceSuite) TestPlayersForGameUnknownGameIsEmpty() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	players := s.service.PlayersForGame("half-life-3")
	s.NotNil(players)
	s.Empty(players)
}

func (s *ServiceSuite) TestPlayerByID() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	p, err := s.service.PlayerByID("minecraft_001")
	s.Require().NoError(err)
	s.Equal("RedstoneWiz", p.Username)
}

func (s *ServiceSuite) TestPlayerByIDUnknown() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	_, err := s.service.PlayerByID("valorant_999")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ServiceSuite) TestLookupsAreIdempotent() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	a, err := s.service.PlayerByID("valorant_001")
	s.Require().NoError(err)
	b, err := s.service.PlayerByID("valorant_001")
	s.Require().NoError(err)
	s.Equal(a, b)
}

func (s *ServiceSuite) TestCallersCannotMutateSnapshot() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	p, err := s.service.PlayerByID("valorant_001")
	s.Require().NoError(err)
	p.Playstyle[0] = "mutated"

	fresh, err := s.service.PlayerByID("valorant_001")
	s.Require().NoError(err)
	s.Equal("Duelist", fresh.Playstyle[0])

	all := s.service.AllPlayers()
	all[0].Username = "mutated"
	again := s.service.AllPlayers()
	s.Equal("DuelistOne", again[0].Username)
}

func (s *ServiceSuite) TestLoadFixtureDoesNotAliasInput() {
	f := s.testFixture()
	s.Require().NoError(s.service.LoadFixture(f))

	f.Players[0].Playstyle[0] = "mutated"

	p, err := s.service.PlayerByID("valorant_001")
	s.Require().NoError(err)
	s.Equal("Duelist", p.Playstyle[0])
}

func (s *ServiceSuite) TestStatsAfterLoad() {
	s.Require().NoError(s.service.LoadFixture(s.testFixture()))

	stats, err := s.service.Stats()
	s.Require().NoError(err)
	s.Equal(3, stats.Metadata.TotalPlayers)

	// Breakdown is derived when the fixture omits it
	s.Require().Contains(stats.GameBreakdown, model.GameID("valorant"))
	s.Equal(2, stats.GameBreakdown["valorant"].TotalPlayers)
	s.Equal(1, stats.GameBreakdown["valorant"].CurrentlyInGame)
}

func (s *ServiceSuite) TestLoadFromStorage() {
	err := s.storage.SaveFixture(s.ctx, s.testFixture())
	s.Require().NoError(err)

	s.Require().NoError(s.service.LoadFromStorage(s.ctx))
	s.True(s.service.IsLoaded())
	s.Len(s.service.AllPlayers(), 3)
}

func (s *ServiceSuite) TestLoadFromStorageWhenEmpty() {
	err := s.service.LoadFromStorage(s.ctx)
	s.ErrorIs(err, model.ErrFixtureNotFound)
	s.False(s.service.IsLoaded())
}
