package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "Player directory commands",
	}

	cmd.AddCommand(newPlayersListCmd())
	cmd.AddCommand(newPlayersGetCmd())
	cmd.AddCommand(newPlayersSearchCmd())

	return cmd
}

func newPlayersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every player in the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerList

			if err := client.Get("/api/v1/players", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayersGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a single player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Player

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayersSearchCmd() *cobra.Command {
	var game, age, profession, location, rank, until string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search a game's players with filters",
		Long: `Search a game's players with optional demographic filters.

Each filter accepts "all" (or may be omitted) to leave that dimension
unconstrained. The age filter takes a range like "21-25".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := url.Values{}
			if age != "" {
				query.Set("age", age)
			}
			if profession != "" {
				query.Set("profession", profession)
			}
			if location != "" {
				query.Set("location", location)
			}
			if rank != "" {
				query.Set("rank", rank)
			}
			if until != "" {
				query.Set("until", until)
			}

			path := fmt.Sprintf("/api/v1/games/%s/players", game)
			if encoded := query.Encode(); encoded != "" {
				path += "?" + encoded
			}

			var result SearchResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&age, "age", "", `Age range filter, e.g. "21-25"`)
	cmd.Flags().StringVar(&profession, "profession", "", "Profession filter")
	cmd.Flags().StringVar(&location, "location", "", "Location filter")
	cmd.Flags().StringVar(&rank, "rank", "", "Rank filter")
	cmd.Flags().StringVar(&until, "until", "", `Availability cutoff, e.g. "1:00 AM"`)
	_ = cmd.MarkFlagRequired("game")

	return cmd
}
