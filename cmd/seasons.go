package cmd

import (
	"fmt"

	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
)

func newSeasonsCmd() *cobra.Command {
	seasonsCmd := &cobra.Command{
		Use:   "seasons",
		Short: "Ranked battle seasons and statistics",
	}

	seasonsCmd.AddCommand(newSeasonsListCmd())
	seasonsCmd.AddCommand(newSeasonsShipStatsCmd())
	seasonsCmd.AddCommand(newSeasonsPlayerStatsCmd())
	return seasonsCmd
}

// parseOptionalIDs parses a comma-separated id flag, returning nil when unset.
func parseOptionalIDs(flag, value string) ([]int64, error) {
	if value == "" {
		return nil, nil
	}
	ids, err := parseIDs([]string{value})
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", flag, err)
	}
	return ids, nil
}

func newSeasonsListCmd() *cobra.Command {
	var seasonID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ranked battle seasons",
		Example: `  # Every season
  wows seasons list

  # Two specific seasons as JSON
  wows seasons list --season-id 10,11 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := resolveRegion()
			if err != nil {
				return err
			}
			seasons, err := parseOptionalIDs("season-id", seasonID)
			if err != nil {
				return err
			}

			opts := append(commonOptions(cmd), wows.SeasonIDs(seasons...))
			return runAndRender(cmd, wows.RankedSeasons(region, opts...), renderSeasons)
		},
	}

	cmd.Flags().StringVar(&seasonID, "season-id", "", "Comma-separated season ids (max 100)")
	addFieldsFlag(cmd)

	return cmd
}

func renderSeasons(data any) error {
	keys, recs := records(data)
	if len(recs) == 0 {
		getIO().Printf("No seasons found.\n")
		return nil
	}

	for _, rec := range recs {
		rec["start"] = formatUnix(rec["start_at"])
		rec["finish"] = formatUnix(rec["close_at"])
	}

	return printRecords([]column{
		{"SEASON_ID", "$key"},
		{"NAME", "season_name"},
		{"MIN_TIER", "min_ship_tier"},
		{"MAX_TIER", "max_ship_tier"},
		{"START", "start"},
		{"FINISH", "finish"},
	}, keys, recs)
}

func newSeasonsShipStatsCmd() *cobra.Command {
	var (
		seasonID    string
		shipID      string
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "ship-stats <account_id>",
		Short: "Show a player's ranked statistics per ship",
		Example: `  # One season, one ship
  wows seasons ship-stats 1000123456 --season-id 11 --ship-id 3751786480`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if len(ids) != 1 {
				return fmt.Errorf("exactly one account id is required")
			}
			region, err := resolveRegion()
			if err != nil {
				return err
			}
			seasons, err := parseOptionalIDs("season-id", seasonID)
			if err != nil {
				return err
			}
			ships, err := parseOptionalIDs("ship-id", shipID)
			if err != nil {
				return err
			}

			opts := append(commonOptions(cmd),
				wows.SeasonIDs(seasons...),
				wows.ShipIDs(ships...),
				wows.AccessToken(accessToken),
			)
			return runAndRender(cmd, wows.RankedShipStatistics(region, ids[0], opts...), printFlat)
		},
	}

	cmd.Flags().StringVar(&seasonID, "season-id", "", "Comma-separated season ids (max 100)")
	cmd.Flags().StringVar(&shipID, "ship-id", "", "Comma-separated ship ids (max 100)")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token for private account data")
	addFieldsFlag(cmd)

	return cmd
}

func newSeasonsPlayerStatsCmd() *cobra.Command {
	var (
		seasonID    string
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "player-stats <account_id>...",
		Short: "Show players' ranked statistics",
		Example: `  # All seasons for two players
  wows seasons player-stats 1000123456 1000654321`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			region, err := resolveRegion()
			if err != nil {
				return err
			}
			seasons, err := parseOptionalIDs("season-id", seasonID)
			if err != nil {
				return err
			}

			opts := append(commonOptions(cmd),
				wows.SeasonIDs(seasons...),
				wows.AccessToken(accessToken),
			)
			return runAndRender(cmd, wows.RankedPlayerStatistics(region, ids, opts...), printFlat)
		},
	}

	cmd.Flags().StringVar(&seasonID, "season-id", "", "Comma-separated season ids (max 100)")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token for private account data")
	addFieldsFlag(cmd)

	return cmd
}
