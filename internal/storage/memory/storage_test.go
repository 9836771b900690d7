package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetFixtureWhenEmpty() {
	_, err := s.storage.GetFixture(s.ctx)
	s.ErrorIs(err, model.ErrFixtureNotFound)
}

func (s *StorageSuite) TestSaveAndGetFixture() {
	f := &fixture.File{
		Players: []model.Player{
			{ID: "valorant_001", Username: "DuelistOne", Game: "valorant",
				Skill: model.SkillPro, Age: 24, Location: "London, UK", Profession: "Student"},
		},
		Metadata: fixture.Metadata{
			TotalPlayers: 1,
			GeneratedAt:  time.Date(2025, 8, 14, 9, 30, 0, 0, time.UTC),
		},
	}

	err := s.storage.SaveFixture(s.ctx, f)
	s.Require().NoError(err)

	got, err := s.storage.GetFixture(s.ctx)
	s.Require().NoError(err)
	s.Equal(f, got)
}

func (s *StorageSuite) TestSaveOverwrites() {
	first := &fixture.File{Players: []model.Player{{ID: "valorant_001"}}}
	second := &fixture.File{Players: []model.Player{{ID: "valorant_002"}}}

	s.Require().NoError(s.storage.SaveFixture(s.ctx, first))
	s.Require().NoError(s.storage.SaveFixture(s.ctx, second))

	got, err := s.storage.GetFixture(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("valorant_002"), got.Players[0].ID)
}
