package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) testFixture() *fixture.File {
	return &fixture.File{
		Players: []model.Player{
			{
				ID: "valorant_001", Username: "DuelistOne", Game: "valorant",
				Skill: model.SkillPro, Playstyle: []string{"Duelist", "IGL"},
				Online: true, CurrentlyInGame: true, Rank: "Immortal",
				HoursPlayed: 2400, Age: 24, Location: "London, UK", Profession: "Student",
			},
		},
		Metadata: fixture.Metadata{
			TotalPlayers:         1,
			GamesIncluded:        1,
			CurrentlyInGameCount: 1,
			GeneratedAt:          time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC),
		},
	}
}

func (s *StorageSuite) TestGetFixtureWhenEmpty() {
	_, err := s.storage.GetFixture(s.ctx)
	s.ErrorIs(err, model.ErrFixtureNotFound)
}

func (s *StorageSuite) TestSaveAndGetFixture() {
	f := s.testFixture()

	err := s.storage.SaveFixture(s.ctx, f)
	s.Require().NoError(err)

	got, err := s.storage.GetFixture(s.ctx)
	s.Require().NoError(err)
	s.Equal(f, got)
}

func (s *StorageSuite) TestFixtureStoredUnderPrefixedKey() {
	s.Require().NoError(s.storage.SaveFixture(s.ctx, s.testFixture()))

	s.True(s.mini.Exists("queueup:fixture"))
}

func (s *StorageSuite) TestFixtureHasNoTTL() {
	s.Require().NoError(s.storage.SaveFixture(s.ctx, s.testFixture()))

	s.Equal(time.Duration(0), s.mini.TTL("queueup:fixture"))
}

func (s *StorageSuite) TestSaveOverwrites() {
	first := s.testFixture()
	s.Require().NoError(s.storage.SaveFixture(s.ctx, first))

	second := s.testFixture()
	second.Players[0].Username = "Renamed"
	s.Require().NoError(s.storage.SaveFixture(s.ctx, second))

	got, err := s.storage.GetFixture(s.ctx)
	s.Require().NoError(err)
	s.Equal("Renamed", got.Players[0].Username)
}

func (s *StorageSuite) TestGetFixtureRejectsCorruptData() {
	s.Require().NoError(s.mini.Set("queueup:fixture", "not json"))

	_, err := s.storage.GetFixture(s.ctx)
	s.Error(err)
	s.NotErrorIs(err, model.ErrFixtureNotFound)
}
