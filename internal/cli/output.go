package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case GameList:
		o.printGameList(v)
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case SearchResult:
		o.printSearchResult(v)
	case FilterOptions:
		o.printFilterOptions(v)
	case Stats:
		o.printStats(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Game response type (matches API)
type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	PlayerCount string `json:"player_count"`
	Publisher   string `json:"publisher"`
	Logo        string `json:"logo"`
}

// GameList response type
type GameList struct {
	Games []Game `json:"games"`
}

// Player response type
type Player struct {
	ID              string   `json:"id"`
	Username        string   `json:"username"`
	Avatar          string   `json:"avatar,omitempty"`
	Game            string   `json:"game"`
	AvailableUntil  string   `json:"available_until"`
	Skill           string   `json:"skill"`
	Playstyle       []string `json:"playstyle"`
	Online          bool     `json:"online"`
	CurrentlyInGame bool     `json:"currently_in_game"`
	Rank            string   `json:"rank,omitempty"`
	HoursPlayed     int      `json:"hours_played"`
	Age             int      `json:"age"`
	Location        string   `json:"location"`
	Profession      string   `json:"profession"`
}

// PlayerList response type
type PlayerList struct {
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// SearchResult response type
type SearchResult struct {
	Game    string   `json:"game"`
	Until   string   `json:"until,omitempty"`
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// FilterOptions response type
type FilterOptions struct {
	AgeRanges   []string `json:"age_ranges"`
	Professions []string `json:"professions"`
	Locations   []string `json:"locations"`
	Ranks       []string `json:"ranks"`
}

// StatsMetadata response type
type StatsMetadata struct {
	TotalPlayers         int    `json:"total_players"`
	GamesIncluded        int    `json:"games_included"`
	PlayersPerGame       int    `json:"players_per_game"`
	CurrentlyInGameCount int    `json:"currently_in_game_count"`
	GeneratedAt          string `json:"generated_at"`
	Description          string `json:"description,omitempty"`
}

// GameBreakdown response type
type GameBreakdown struct {
	TotalPlayers      int            `json:"total_players"`
	CurrentlyInGame   int            `json:"currently_in_game"`
	SkillDistribution map[string]int `json:"skill_distribution"`
	AgeDistribution   map[string]int `json:"age_distribution"`
	TopLocations      []string       `json:"top_locations"`
	TopProfessions    []string       `json:"top_professions"`
}

// Stats response type
type Stats struct {
	Metadata      StatsMetadata            `json:"metadata"`
	GameBreakdown map[string]GameBreakdown `json:"game_breakdown"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Category: %s\n", g.Category)
	fmt.Printf("Players: %s\n", g.PlayerCount)
	fmt.Printf("Publisher: %s\n", g.Publisher)
}

func (o *Output) printGameList(l GameList) {
	fmt.Printf("Games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		fmt.Printf("  - %s (%s) - %s\n", g.Name, g.ID, g.Category)
	}
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s %s (%s)\n", p.Avatar, p.Username, p.ID)
	fmt.Printf("Game: %s\n", p.Game)
	fmt.Printf("Skill: %s\n", p.Skill)
	if p.Rank != "" {
		fmt.Printf("Rank: %s\n", p.Rank)
	}
	if len(p.Playstyle) > 0 {
		fmt.Printf("Playstyle: %s\n", strings.Join(p.Playstyle, ", "))
	}
	fmt.Printf("Status: %s\n", playerStatus(p))
	fmt.Printf("Available until: %s\n", p.AvailableUntil)
	fmt.Printf("Hours played: %d\n", p.HoursPlayed)
	fmt.Printf("Age: %d\n", p.Age)
	fmt.Printf("Location: %s\n", p.Location)
	fmt.Printf("Profession: %s\n", p.Profession)
}

func playerStatus(p Player) string {
	switch {
	case p.CurrentlyInGame:
		return "in game"
	case p.Online:
		return "online"
	default:
		return "offline"
	}
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", l.Count)
	o.printPlayerRows(l.Players)
}

func (o *Output) printSearchResult(r SearchResult) {
	fmt.Printf("Game: %s\n", r.Game)
	if r.Until != "" {
		fmt.Printf("Until: %s\n", r.Until)
	}
	fmt.Printf("Matches (%d):\n", r.Count)
	o.printPlayerRows(r.Players)
}

func (o *Output) printPlayerRows(players []Player) {
	for _, p := range players {
		rank := p.Rank
		if rank == "" {
			rank = "unranked"
		}
		fmt.Printf("  - %s (%s) - %s, %s, %s [%s]\n",
			p.Username, p.ID, p.Skill, rank, p.Location, playerStatus(p))
	}
}

func (o *Output) printFilterOptions(f FilterOptions) {
	fmt.Printf("Age ranges: %s\n", strings.Join(f.AgeRanges, ", "))
	fmt.Printf("Professions: %s\n", strings.Join(f.Professions, ", "))
	fmt.Printf("Locations: %s\n", strings.Join(f.Locations, ", "))
	fmt.Printf("Ranks: %s\n", strings.Join(f.Ranks, ", "))
}

func (o *Output) printStats(s Stats) {
	fmt.Printf("Total players: %d\n", s.Metadata.TotalPlayers)
	fmt.Printf("Games included: %d\n", s.Metadata.GamesIncluded)
	fmt.Printf("Players per game: %d\n", s.Metadata.PlayersPerGame)
	fmt.Printf("Currently in game: %d\n", s.Metadata.CurrentlyInGameCount)
	fmt.Printf("Generated at: %s\n", s.Metadata.GeneratedAt)

	games := make([]string, 0, len(s.GameBreakdown))
	for game := range s.GameBreakdown {
		games = append(games, game)
	}
	sort.Strings(games)

	fmt.Println("\nGame breakdown:")
	for _, game := range games {
		b := s.GameBreakdown[game]
		fmt.Printf("  %s: %d players (%d in game)\n", game, b.TotalPlayers, b.CurrentlyInGame)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
