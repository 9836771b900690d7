package gen

import (
	"fmt"
	"strings"

	"github.com/salihsuliman/queue-up/internal/dependencies/clock"
	"github.com/salihsuliman/queue-up/internal/dependencies/random"
	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
)

// Config controls the shape of a generated fixture
type Config struct {
	// PlayersPerGame is the number of players generated for each
	// catalog game
	PlayersPerGame int
	// MinInGame is the number of leading players per game that are
	// forced into an active session
	MinInGame int
}

// DefaultConfig returns the standard fixture shape
func DefaultConfig() Config {
	return Config{
		PlayersPerGame: 20,
		MinInGame:      5,
	}
}

// Generator produces directory fixtures from the game catalog
type Generator struct {
	random random.Random
	clock  clock.Clock
	config Config
}

// NewGenerator creates a fixture generator
func NewGenerator(rnd random.Random, clk clock.Clock, config Config) *Generator {
	return &Generator{
		random: rnd,
		clock:  clk,
		config: config,
	}
}

// Generate produces a complete fixture covering every catalog game
func (g *Generator) Generate() *fixture.File {
	games := model.Catalog()

	var players []model.Player
	for _, game := range games {
		players = append(players, g.playersForGame(game.ID)...)
	}

	inGame := 0
	for _, p := range players {
		if p.CurrentlyInGame {
			inGame++
		}
	}

	return &fixture.File{
		Players: players,
		Metadata: fixture.Metadata{
			TotalPlayers:         len(players),
			GamesIncluded:        len(games),
			PlayersPerGame:       g.config.PlayersPerGame,
			CurrentlyInGameCount: inGame,
			GeneratedAt:          g.clock.Now(),
			Description: fmt.Sprintf(
				"Seed data for the Queue Up player directory with demographic profiles. "+
					"%d players per game, at least %d per game in active sessions.",
				g.config.PlayersPerGame, g.config.MinInGame),
		},
		GameBreakdown: fixture.Summarize(players),
	}
}

func (g *Generator) playersForGame(gameID model.GameID) []model.Player {
	ranks := gameRanks[gameID]
	playstyles := gamePlaystyles[gameID]

	players := make([]model.Player, 0, g.config.PlayersPerGame)
	for i := 1; i <= g.config.PlayersPerGame; i++ {
		levels := model.SkillLevels()
		skill := levels[g.random.Intn(len(levels))]

		// The first MinInGame players are always in a session so every
		// game shows live activity; the rest have a 25% chance.
		inGame := i <= g.config.MinInGame || g.random.Intn(100) < 25

		age := fixture.MinAge + g.random.WeightedIndex(ageWeights)

		players = append(players, model.Player{
			ID:              playerID(gameID, i),
			Username:        g.username(gameID, skill, playstyles, i),
			Avatar:          avatars[i%len(avatars)],
			Game:            gameID,
			AvailableUntil:  availabilityTimes[g.random.Intn(len(availabilityTimes))],
			Skill:           skill,
			Playstyle:       g.pickPlaystyles(playstyles),
			Online:          g.random.Intn(100) < 90,
			CurrentlyInGame: inGame,
			Rank:            ranks[g.random.Intn(len(ranks))],
			HoursPlayed:     g.random.Intn(5000) + 100,
			Age:             age,
			Location:        locations[g.random.Intn(len(locations))],
			Profession:      professions[g.random.Intn(len(professions))],
		})
	}

	return players
}

// playerID builds identifiers like "valorant_001" or
// "league_of_legends_014".
func playerID(gameID model.GameID, i int) model.PlayerID {
	slug := strings.ReplaceAll(string(gameID), "-", "_")
	return model.PlayerID(fmt.Sprintf("%s_%03d", slug, i))
}

func (g *Generator) username(gameID model.GameID, skill model.SkillLevel, playstyles []string, i int) string {
	id := string(gameID)
	templates := []string{
		fmt.Sprintf("%s%sPro%02d", strings.ToUpper(id[:1]), id[1:], i),
		fmt.Sprintf("%sPlayer%d", skill, i),
		fmt.Sprintf("%s%d", strings.ReplaceAll(playstyles[i%len(playstyles)], " ", ""), i),
		fmt.Sprintf("Gamer%s%d", skill, i),
		fmt.Sprintf("Elite%s%d", strings.ToUpper(id[:3]), i),
	}
	return templates[i%len(templates)]
}

// pickPlaystyles draws three styles and drops duplicates, so a player
// carries between one and three distinct playstyles.
func (g *Generator) pickPlaystyles(playstyles []string) []string {
	picked := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		style := playstyles[g.random.Intn(len(playstyles))]
		if !contains(picked, style) {
			picked = append(picked, style)
		}
	}
	return picked
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
