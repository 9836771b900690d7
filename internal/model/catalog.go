package model

// catalog is the fixed set of supported games. Logos are icon asset
// paths resolved by the UI layer.
var catalog = []Game{
	{
		ID:          "valorant",
		Name:        "Valorant",
		Category:    "FPS",
		PlayerCount: "5v5",
		Publisher:   "Riot Games",
		Logo:        "logos/valorant.png",
	},
	{
		ID:          "league-of-legends",
		Name:        "League of Legends",
		Category:    "MOBA",
		PlayerCount: "5v5",
		Publisher:   "Riot Games",
		Logo:        "logos/league-of-legends.png",
	},
	{
		ID:          "apex-legends",
		Name:        "Apex Legends",
		Category:    "Battle Royale",
		PlayerCount: "3-player squads",
		Publisher:   "Respawn Entertainment",
		Logo:        "logos/apex-legends.png",
	},
	{
		ID:          "cs2",
		Name:        "Counter-Strike 2",
		Category:    "FPS",
		PlayerCount: "5v5",
		Publisher:   "Valve",
		Logo:        "logos/cs2.png",
	},
	{
		ID:          "overwatch-2",
		Name:        "Overwatch 2",
		Category:    "FPS",
		PlayerCount: "5v5",
		Publisher:   "Blizzard Entertainment",
		Logo:        "logos/overwatch-2.png",
	},
	{
		ID:          "fortnite",
		Name:        "Fortnite",
		Category:    "Battle Royale",
		PlayerCount: "Squads/Duos/Solo",
		Publisher:   "Epic Games",
		Logo:        "logos/fortnite.png",
	},
	{
		ID:          "minecraft",
		Name:        "Minecraft",
		Category:    "Sandbox",
		PlayerCount: "Varies",
		Publisher:   "Mojang Studios",
		Logo:        "logos/minecraft.png",
	},
	{
		ID:          "rocket-league",
		Name:        "Rocket League",
		Category:    "Sports",
		PlayerCount: "3v3",
		Publisher:   "Psyonix",
		Logo:        "logos/rocket-league.png",
	},
	{
		ID:          "warzone",
		Name:        "Call of Duty: Warzone",
		Category:    "Battle Royale",
		PlayerCount: "Squads/Trios/Duos",
		Publisher:   "Activision",
		Logo:        "logos/warzone.png",
	},
}

// Catalog returns a copy of the fixed game catalog in its canonical order.
func Catalog() []Game {
	out := make([]Game, len(catalog))
	copy(out, catalog)
	return out
}
