package model

// PlayerID uniquely identifies a player across the whole directory,
// not just within a single game.
type PlayerID string

// SkillLevel is the closed self-reported skill enumeration.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillPro          SkillLevel = "Pro"
)

// SkillLevels lists all valid skill levels in ascending order.
func SkillLevels() []SkillLevel {
	return []SkillLevel{SkillBeginner, SkillIntermediate, SkillAdvanced, SkillPro}
}

// Valid reports whether s is one of the known skill levels.
func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillPro:
		return true
	default:
		return false
	}
}

// Player is one directory record. The directory is a frozen snapshot:
// players are produced by the offline fixture generator and never
// created, updated, or deleted at runtime.
//
// JSON tags match the fixture file format.
type Player struct {
	ID       PlayerID `json:"id"`
	Username string   `json:"username"`
	Avatar   string   `json:"avatar,omitempty"`
	Game     GameID   `json:"game"`

	// AvailableUntil is a display-only time-of-day string such as
	// "11:30 PM". It is never parsed or compared against the clock.
	AvailableUntil string `json:"availableUntil"`

	Skill           SkillLevel `json:"skill"`
	Playstyle       []string   `json:"playstyle"`
	Online          bool       `json:"online"`
	CurrentlyInGame bool       `json:"currentlyInGame"`

	// Rank is drawn from the per-game ranked ladder. Empty means the
	// player is unranked.
	Rank string `json:"rank,omitempty"`

	HoursPlayed int    `json:"hoursPlayed"`
	Age         int    `json:"age"`
	Location    string `json:"location"`
	Profession  string `json:"profession"`
}

// Clone returns a deep copy of the player. Accessors hand out clones so
// callers cannot mutate the shared snapshot through the Playstyle slice.
func (p Player) Clone() Player {
	out := p
	if p.Playstyle != nil {
		out.Playstyle = make([]string, len(p.Playstyle))
		copy(out.Playstyle, p.Playstyle)
	}
	return out
}
