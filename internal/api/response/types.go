package response

import (
	"time"

	"github.com/salihsuliman/queue-up/internal/fixture"
	"github.com/salihsuliman/queue-up/internal/model"
	"github.com/salihsuliman/queue-up/internal/services/directory"
	"github.com/salihsuliman/queue-up/internal/services/search"
)

// Game represents a catalog entry in API responses
type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	PlayerCount string `json:"player_count"`
	Publisher   string `json:"publisher"`
	Logo        string `json:"logo"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g model.Game) Game {
	return Game{
		ID:          string(g.ID),
		Name:        g.Name,
		Category:    g.Category,
		PlayerCount: g.PlayerCount,
		Publisher:   g.Publisher,
		Logo:        g.Logo,
	}
}

// GameList wraps the catalog
type GameList struct {
	Games []Game `json:"games"`
}

// GameListFromModel converts a catalog slice
func GameListFromModel(games []model.Game) GameList {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = GameFromModel(g)
	}
	return GameList{Games: out}
}

// Player represents a directory record in API responses
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

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:              string(p.ID),
		Username:        p.Username,
		Avatar:          p.Avatar,
		Game:            string(p.Game),
		AvailableUntil:  p.AvailableUntil,
		Skill:           string(p.Skill),
		Playstyle:       p.Playstyle,
		Online:          p.Online,
		CurrentlyInGame: p.CurrentlyInGame,
		Rank:            p.Rank,
		HoursPlayed:     p.HoursPlayed,
		Age:             p.Age,
		Location:        p.Location,
		Profession:      p.Profession,
	}
}

// PlayerList wraps a plain player listing
type PlayerList struct {
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// PlayerListFromModel converts a player slice
func PlayerListFromModel(players []model.Player) PlayerList {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return PlayerList{Count: len(out), Players: out}
}

// SearchResult is the response for a filtered player search.
// Until echoes the caller's availability cutoff; it is display-only
// and never participates in filtering.
type SearchResult struct {
	Game    string   `json:"game"`
	Until   string   `json:"until,omitempty"`
	Count   int      `json:"count"`
	Players []Player `json:"players"`
}

// SearchResultFromModel builds a SearchResult from filtered players
func SearchResultFromModel(gameID model.GameID, until string, players []model.Player) SearchResult {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return SearchResult{
		Game:    string(gameID),
		Until:   until,
		Count:   len(out),
		Players: out,
	}
}

// FilterOptions lists the values a filter selector can offer
type FilterOptions struct {
	AgeRanges   []string `json:"age_ranges"`
	Professions []string `json:"professions"`
	Locations   []string `json:"locations"`
	Ranks       []string `json:"ranks"`
}

// FilterOptionsFromModel converts search.Options
func FilterOptionsFromModel(o search.Options) FilterOptions {
	return FilterOptions{
		AgeRanges:   o.AgeRanges,
		Professions: o.Professions,
		Locations:   o.Locations,
		Ranks:       o.Ranks,
	}
}

// StatsMetadata describes the fixture generation run
type StatsMetadata struct {
	TotalPlayers         int       `json:"total_players"`
	GamesIncluded        int       `json:"games_included"`
	PlayersPerGame       int       `json:"players_per_game"`
	CurrentlyInGameCount int       `json:"currently_in_game_count"`
	GeneratedAt          time.Time `json:"generated_at"`
	Description          string    `json:"description,omitempty"`
}

// GameBreakdown summarizes one game's slice of the directory
type GameBreakdown struct {
	TotalPlayers      int            `json:"total_players"`
	CurrentlyInGame   int            `json:"currently_in_game"`
	SkillDistribution map[string]int `json:"skill_distribution"`
	AgeDistribution   map[string]int `json:"age_distribution"`
	TopLocations      []string       `json:"top_locations"`
	TopProfessions    []string       `json:"top_professions"`
}

// Stats is the response for directory statistics
type Stats struct {
	Metadata      StatsMetadata            `json:"metadata"`
	GameBreakdown map[string]GameBreakdown `json:"game_breakdown"`
}

// StatsFromModel converts directory.Stats
func StatsFromModel(s directory.Stats) Stats {
	breakdown := make(map[string]GameBreakdown, len(s.GameBreakdown))
	for gameID, b := range s.GameBreakdown {
		breakdown[string(gameID)] = gameBreakdownFromModel(b)
	}
	return Stats{
		Metadata: StatsMetadata{
			TotalPlayers:         s.Metadata.TotalPlayers,
			GamesIncluded:        s.Metadata.GamesIncluded,
			PlayersPerGame:       s.Metadata.PlayersPerGame,
			CurrentlyInGameCount: s.Metadata.CurrentlyInGameCount,
			GeneratedAt:          s.Metadata.GeneratedAt,
			Description:          s.Metadata.Description,
		},
		GameBreakdown: breakdown,
	}
}

func gameBreakdownFromModel(b fixture.GameBreakdown) GameBreakdown {
	skills := make(map[string]int, len(b.SkillDistribution))
	for skill, n := range b.SkillDistribution {
		skills[string(skill)] = n
	}
	return GameBreakdown{
		TotalPlayers:      b.TotalPlayers,
		CurrentlyInGame:   b.CurrentlyInGame,
		SkillDistribution: skills,
		AgeDistribution:   b.AgeDistribution,
		TopLocations:      b.TopLocations,
		TopProfessions:    b.TopProfessions,
	}
}
