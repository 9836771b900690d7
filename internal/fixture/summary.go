package fixture

import "github.com/salihsuliman/queue-up/internal/model"

// ageBucket returns the display bucket an age falls into. Buckets match
// the filter options the UI offers.
func ageBucket(age int) string {
	switch {
	case age <= 20:
		return "16-20"
	case age <= 25:
		return "21-25"
	case age <= 30:
		return "26-30"
	default:
		return "31-35"
	}
}

// topN collects up to n distinct values in first-seen order.
func topN(values []string, n int) []string {
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Summarize computes the per-game breakdown for a player set. The
// generator embeds this in the fixture it writes; the directory falls
// back to computing it when a fixture omits the block.
func Summarize(players []model.Player) map[model.GameID]GameBreakdown {
	perGame := make(map[model.GameID][]model.Player)
	for _, p := range players {
		perGame[p.Game] = append(perGame[p.Game], p)
	}

	out := make(map[model.GameID]GameBreakdown, len(perGame))
	for gameID, gamePlayers := range perGame {
		b := GameBreakdown{
			TotalPlayers:      len(gamePlayers),
			SkillDistribution: make(map[model.SkillLevel]int),
			AgeDistribution:   make(map[string]int),
		}
		var locations, professions []string
		for _, p := range gamePlayers {
			if p.CurrentlyInGame {
				b.CurrentlyInGame++
			}
			b.SkillDistribution[p.Skill]++
			b.AgeDistribution[ageBucket(p.Age)]++
			locations = append(locations, p.Location)
			professions = append(professions, p.Profession)
		}
		b.TopLocations = topN(locations, 5)
		b.TopProfessions = topN(professions, 5)
		out[gameID] = b
	}
	return out
}
