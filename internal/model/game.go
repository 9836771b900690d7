package model

// GameID identifies a game in the fixed catalog
type GameID string

// Game is a static catalog entry. The catalog is compiled into the
// binary and never changes at runtime.
type Game struct {
	ID          GameID `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	PlayerCount string `json:"playerCount"`
	Publisher   string `json:"publisher"`
	Logo        string `json:"logo"`
}
