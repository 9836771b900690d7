package search

import (
	"sort"

	"github.com/salihsuliman/queue-up/internal/model"
)

// distinct collects the non-empty values extract yields for each
// player, deduplicated and sorted lexicographically.
func distinct(players []model.Player, extract func(*model.Player) string) []string {
	seen := make(map[string]struct{})
	for i := range players {
		if v := extract(&players[i]); v != "" {
			seen[v] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Professions returns the distinct professions among players, sorted
func Professions(players []model.Player) []string {
	return distinct(players, func(p *model.Player) string { return p.Profession })
}

// Locations returns the distinct locations among players, sorted
func Locations(players []model.Player) []string {
	return distinct(players, func(p *model.Player) string { return p.Location })
}

// Ranks returns the distinct ranks among players, sorted. Unranked
// players contribute nothing.
func Ranks(players []model.Player) []string {
	return distinct(players, func(p *model.Player) string { return p.Rank })
}

// Options holds the values a filter selector UI can offer for one
// player set. AgeRanges is the fixed bucket list; the rest are derived
// from the players themselves.
type Options struct {
	AgeRanges   []string
	Professions []string
	Locations   []string
	Ranks       []string
}

// ageRangeOptions is the fixed set of age buckets the UI offers
var ageRangeOptions = []string{"16-20", "21-25", "26-30", "31-35"}

// OptionsFor derives the filter options for a player set
func OptionsFor(players []model.Player) Options {
	return Options{
		AgeRanges:   append([]string(nil), ageRangeOptions...),
		Professions: Professions(players),
		Locations:   Locations(players),
		Ranks:       Ranks(players),
	}
}
