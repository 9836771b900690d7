package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters <game-id>",
		Short: "Show filter options for a game",
		Long: `Show the filter values a game's players actually carry: the fixed
age range buckets plus the distinct professions, locations, and ranks
present in that game's directory slice.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result FilterOptions

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/filters", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
