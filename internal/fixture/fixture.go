// Package fixture defines the pre-generated seed data format and its
// load-time validation. A fixture is produced offline (see cmd/genfixture)
// and loaded exactly once per process to populate the player directory.
package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/salihsuliman/queue-up/internal/model"
)

// File is the decoded fixture document.
type File struct {
	Players       []model.Player                 `json:"players"`
	Metadata      Metadata                       `json:"metadata"`
	GameBreakdown map[model.GameID]GameBreakdown `json:"gameBreakdown,omitempty"`
}

// Metadata describes the generation run that produced the fixture.
type Metadata struct {
	TotalPlayers         int       `json:"totalPlayers"`
	GamesIncluded        int       `json:"gamesIncluded"`
	PlayersPerGame       int       `json:"playersPerGame"`
	CurrentlyInGameCount int       `json:"currentlyInGameCount"`
	GeneratedAt          time.Time `json:"generatedAt"`
	Description          string    `json:"description,omitempty"`
}

// GameBreakdown summarizes one game's slice of the fixture.
type GameBreakdown struct {
	TotalPlayers      int                      `json:"totalPlayers"`
	CurrentlyInGame   int                      `json:"currentlyInGame"`
	SkillDistribution map[model.SkillLevel]int `json:"skillDistribution"`
	AgeDistribution   map[string]int           `json:"ageDistribution"`
	TopLocations      []string                 `json:"topLocations"`
	TopProfessions    []string                 `json:"topProfessions"`
}

// Age bounds enforced at load time, matching the generator's range.
const (
	MinAge = 16
	MaxAge = 35
)

// Decode reads and validates a fixture document. Any malformed input,
// JSON syntax, wrong types, or schema violations, is rejected with an
// error wrapping model.ErrInvalidFixture. The directory never serves a
// partially valid fixture.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidFixture, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads a fixture from a file on disk.
func Load(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Decode(file)
}

// Validate checks the fixture schema: required fields present, skill
// levels in the closed enumeration, ages in range, ids unique across
// the whole document, and every game reference resolving against the
// compiled-in catalog.
func (f *File) Validate() error {
	if len(f.Players) == 0 {
		return fmt.Errorf("%w: no players", model.ErrInvalidFixture)
	}

	games := make(map[model.GameID]struct{})
	for _, g := range model.Catalog() {
		games[g.ID] = struct{}{}
	}

	seen := make(map[model.PlayerID]struct{}, len(f.Players))
	for i, p := range f.Players {
		if p.ID == "" {
			return fmt.Errorf("%w: player %d: missing id", model.ErrInvalidFixture, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate player id %q", model.ErrInvalidFixture, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Username == "" {
			return fmt.Errorf("%w: player %q: missing username", model.ErrInvalidFixture, p.ID)
		}
		if _, ok := games[p.Game]; !ok {
			return fmt.Errorf("%w: player %q: unknown game %q", model.ErrInvalidFixture, p.ID, p.Game)
		}
		if !p.Skill.Valid() {
			return fmt.Errorf("%w: player %q: invalid skill %q", model.ErrInvalidFixture, p.ID, p.Skill)
		}
		if p.Age < MinAge || p.Age > MaxAge {
			return fmt.Errorf("%w: player %q: age %d out of range", model.ErrInvalidFixture, p.ID, p.Age)
		}
		if p.Location == "" {
			return fmt.Errorf("%w: player %q: missing location", model.ErrInvalidFixture, p.ID)
		}
		if p.Profession == "" {
			return fmt.Errorf("%w: player %q: missing profession", model.ErrInvalidFixture, p.ID)
		}
	}

	return nil
}
