package factory

import (
	"time"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/storage/memory"
	"github.com/salihsuliman/queue-up/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App
}

// NewTestApp creates an App configured for testing with in-memory storage
func NewTestApp() *TestApp {
	store := memory.New()
	app := newWithDependencies(store, testutil.NopLogger())

	return &TestApp{
		App: app,
	}
}

// LoadTestFixture loads a small deterministic fixture for testing
func (t *TestApp) LoadTestFixture() error {
	players := []model.Player{
		{
			ID:              "valorant_001",
			Username:        "ValorantPro01",
			Avatar:          "🎯",
			Game:            "valorant",
			AvailableUntil:  "11:00 PM",
			Skill:           model.SkillPro,
			Playstyle:       []string{"IGL", "Entry Fragger"},
			Online:          true,
			CurrentlyInGame: true,
			Rank:            "Immortal",
			HoursPlayed:     2400,
			Age:             24,
			Location:        "London, UK",
			Profession:      "Software Engineer",
		},
		{
			ID:              "valorant_002",
			Username:        "LurkerKing",
			Avatar:          "👻",
			Game:            "valorant",
			AvailableUntil:  "1:00 AM",
			Skill:           model.SkillIntermediate,
			Playstyle:       []string{"Lurker"},
			Online:          true,
			CurrentlyInGame: false,
			Rank:            "Gold",
			HoursPlayed:     820,
			Age:             19,
			Location:        "Tokyo, Japan",
			Profession:      "Student",
		},
		{
			ID:              "valorant_003",
			Username:        "SentinelMain",
			Avatar:          "🛡️",
			Game:            "valorant",
			AvailableUntil:  "12:30 AM",
			Skill:           model.SkillAdvanced,
			Playstyle:       []string{"Sentinel", "Support"},
			Online:          false,
			CurrentlyInGame: false,
			Rank:            "Platinum",
			HoursPlayed:     1500,
			Age:             28,
			Location:        "London, UK",
			Profession:      "Teacher",
		},
		{
			ID:              "minecraft_001",
			Username:        "RedstoneWiz",
			Avatar:          "🔧",
			Game:            "minecraft",
			AvailableUntil:  "2:00 AM",
			Skill:           model.SkillBeginner,
			Playstyle:       []string{"Redstone", "Builder"},
			Online:          true,
			CurrentlyInGame: true,
			Rank:            "Novice",
			HoursPlayed:     310,
			Age:             17,
			Location:        "Berlin, Germany",
			Profession:      "Student",
		},
		{
			ID:              "minecraft_002",
			Username:        "CreativeSoul",
			Avatar:          "🌸",
			Game:            "minecraft",
			AvailableUntil:  "11:45 PM",
			Skill:           model.SkillAdvanced,
			Playstyle:       []string{"Creative"},
			Online:          true,
			CurrentlyInGame: false,
			Rank:            "Expert",
			HoursPlayed:     4100,
			Age:             31,
			Location:        "Austin, TX",
			Profession:      "Artist",
		},
	}

	f := &fixture.File{
		Players: players,
		Metadata: fixture.Metadata{
			TotalPlayers:         len(players),
			GamesIncluded:        2,
			PlayersPerGame:       0,
			CurrentlyInGameCount: 2,
			GeneratedAt:          time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Description:          "Test fixture",
		},
		GameBreakdown: fixture.Summarize(players),
	}

	return t.Directory.LoadFixture(f)
}
