package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/salihsuliman/queue-up/internal/dependencies/clock"
	"github.com/salihsuliman/queue-up/internal/dependencies/random"
	"github.com/salihsuliman/queue-up/internal/gen"
)

func main() {
	var (
		out       = flag.String("out", "data/players.json", "Output fixture path")
		seed      = flag.Int64("seed", 0, "Random seed (0 uses a crypto source)")
		players   = flag.Int("players", 20, "Players generated per game")
		minInGame = flag.Int("min-in-game", 5, "Players per game forced into an active session")
	)
	flag.Parse()

	var rnd random.Random
	if *seed != 0 {
		rnd = random.NewSeeded(*seed)
	} else {
		rnd = random.New()
	}

	generator := gen.NewGenerator(rnd, clock.New(), gen.Config{
		PlayersPerGame: *players,
		MinInGame:      *minInGame,
	})
	f := generator.Generate()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode fixture: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write fixture: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %s: %d players across %d games (%d in game)\n",
		*out, f.Metadata.TotalPlayers, f.Metadata.GamesIncluded, f.Metadata.CurrentlyInGameCount)
}
