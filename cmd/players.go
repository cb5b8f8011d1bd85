package cmd

import (
	"context"
	"fmt"

	"github.com/aviadshiber/wows/internal/output"
	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newPlayersCmd() *cobra.Command {
	playersCmd := &cobra.Command{
		Use:   "players",
		Short: "Search players and show their statistics",
		Long:  "Search World of Warships players by name and look up their profile, achievements, and statistics.",
	}

	playersCmd.AddCommand(newPlayersSearchCmd())
	playersCmd.AddCommand(newPlayersInfoCmd())
	playersCmd.AddCommand(newPlayersAchievementsCmd())
	playersCmd.AddCommand(newPlayersStatsByDateCmd())
	return playersCmd
}

func newPlayersSearchCmd() *cobra.Command {
	var (
		exact      bool
		limit      int
		allRegions bool
	)

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search players by name",
		Long: `Search players whose name starts with the given text (at least 3 characters),
sorted alphabetically. With --exact, several names may be given separated by commas.`,
		Example: `  # Find a player on the NA server
  wows players search PotatoSquad --limit 1

  # Exact match for several names on EU
  wows players search "Flamu,Notser" --exact --region eu

  # Search every region at once
  wows players search PotatoSquad --all-regions

  # Only the account ids
  wows players search Potato --json --jq '.data[].account_id'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 || limit > 100 {
				return fmt.Errorf("--limit must be between 0 and 100")
			}

			opts := commonOptions(cmd)
			if exact {
				opts = append(opts, wows.Type("exact"))
			}
			opts = append(opts, wows.Limit(limit))

			if allRegions {
				return runPlayersSearchAllRegions(cmd, args[0], opts)
			}

			region, err := resolveRegion()
			if err != nil {
				return err
			}
			return runAndRender(cmd, wows.SearchPlayers(region, args[0], opts...), renderPlayersSearch)
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, "Match whole names instead of prefixes")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of players to return (max 100)")
	cmd.Flags().BoolVar(&allRegions, "all-regions", false, "Search every region concurrently")
	addFieldsFlag(cmd)

	return cmd
}

func renderPlayersSearch(data any) error {
	keys, recs := records(data)
	if len(recs) == 0 {
		getIO().Printf("No players found.\n")
		return nil
	}
	return printRecords([]column{
		{"ACCOUNT_ID", "account_id"},
		{"NICKNAME", "nickname"},
	}, keys, recs)
}

// runPlayersSearchAllRegions fans the search out to every region over one
// shared transport and merges the results, tagged with their region.
func runPlayersSearchAllRegions(cmd *cobra.Command, search string, opts []wows.QueryOption) error {
	c, err := newAsyncClient()
	if err != nil {
		return err
	}

	// Requests still in flight when this returns, on success or on the
	// first failing region, are cancelled.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	regions := wows.Regions()
	futures := make([]*wows.Future, len(regions))
	for i, r := range regions {
		futures[i] = c.Go(ctx, wows.SearchPlayers(r, search, opts...))
	}

	if cfgJSONL && !jsonOutputRequested(cmd) {
		return streamRegionResults(ctx, regions, futures)
	}

	results := make([]*wows.Response, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	for i := range futures {
		g.Go(func() error {
			resp, err := futures[i].Await(gctx)
			if err != nil {
				return fmt.Errorf("searching %s: %w", regions[i], err)
			}
			if err := checkEnvelope(resp); err != nil {
				return fmt.Errorf("searching %s: %w", regions[i], err)
			}
			results[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	merged := make([]any, 0)
	for i, resp := range results {
		for _, rec := range tagRegion(resp, regions[i]) {
			merged = append(merged, rec)
		}
	}

	handled, err := handleJSONOutput(cmd, merged)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	keys, recs := records(merged)
	if len(recs) == 0 {
		getIO().Printf("No players found.\n")
		return nil
	}
	return printRecords([]column{
		{"REGION", "region"},
		{"ACCOUNT_ID", "account_id"},
		{"NICKNAME", "nickname"},
	}, keys, recs)
}

// streamRegionResults writes each region's players as JSON Lines in region
// order, as soon as that region has answered.
func streamRegionResults(ctx context.Context, regions []wows.Region, futures []*wows.Future) error {
	w := output.NewJSONLWriter(getIO().Out)
	for i, f := range futures {
		resp, err := f.Await(ctx)
		if err != nil {
			return fmt.Errorf("searching %s: %w", regions[i], err)
		}
		if err := checkEnvelope(resp); err != nil {
			return fmt.Errorf("searching %s: %w", regions[i], err)
		}
		for _, rec := range tagRegion(resp, regions[i]) {
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	return nil
}

// tagRegion copies the players in resp, adding the region they were found in.
func tagRegion(resp *wows.Response, region wows.Region) []map[string]any {
	_, recs := records(dataOf(resp))
	tagged := make([]map[string]any, len(recs))
	for i, rec := range recs {
		t := make(map[string]any, len(rec)+1)
		for k, v := range rec {
			t[k] = v
		}
		t["region"] = region.String()
		tagged[i] = t
	}
	return tagged
}

func newPlayersInfoCmd() *cobra.Command {
	var (
		extra       string
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "info <account_id>...",
		Short: "Show player profiles and statistics",
		Long: `Show profile data for one or more players (up to 100). Without --fields a
summary of random battle statistics is printed; with --fields every returned
field is listed.`,
		Example: `  # Random battle summary
  wows players info 1000123456

  # Only PvP statistics, flattened
  wows players info 1000123456 --fields statistics.pvp

  # Several players as JSON
  wows players info 1000123456,1000654321 --json`,
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

			opts := append(commonOptions(cmd), wows.Extra(splitCSV(extra)...), wows.AccessToken(accessToken))
			fields, _ := cmd.Flags().GetString("fields")
			return runAndRender(cmd, wows.PlayerPersonalData(region, ids, opts...), func(data any) error {
				warnMissing(data, "account")
				if fields != "" {
					return printFlat(data)
				}
				return renderPlayersInfo(data)
			})
		},
	}

	cmd.Flags().StringVar(&extra, "extra", "", "Extra sections, e.g. statistics.pve,statistics.rank_solo")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token for private account data")
	addFieldsFlag(cmd)

	return cmd
}

func renderPlayersInfo(data any) error {
	keys, recs := records(data)
	if len(recs) == 0 {
		getIO().Printf("No players found (profiles may be hidden).\n")
		return nil
	}

	for _, rec := range recs {
		battles := lookup(rec, "statistics.pvp.battles")
		rec["win_rate"] = winRate(lookup(rec, "statistics.pvp.wins"), battles)
		rec["avg_damage"] = average(lookup(rec, "statistics.pvp.damage_dealt"), battles)
		rec["created"] = formatUnix(rec["created_at"])
	}

	return printRecords([]column{
		{"ACCOUNT_ID", "$key"},
		{"NICKNAME", "nickname"},
		{"LEVEL", "leveling_tier"},
		{"BATTLES", "statistics.pvp.battles"},
		{"WIN_RATE", "win_rate"},
		{"AVG_DAMAGE", "avg_damage"},
		{"HIDDEN", "hidden_profile"},
		{"CREATED", "created"},
	}, keys, recs)
}

func newPlayersAchievementsCmd() *cobra.Command {
	var accessToken string

	cmd := &cobra.Command{
		Use:   "achievements <account_id>...",
		Short: "Show achievements earned by players",
		Example: `  # Achievement counts for a player
  wows players achievements 1000123456`,
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

			opts := append(commonOptions(cmd), wows.AccessToken(accessToken))
			return runAndRender(cmd, wows.PlayerAchievements(region, ids, opts...), printFlat)
		},
	}

	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token for private account data")
	addFieldsFlag(cmd)

	return cmd
}

func newPlayersStatsByDateCmd() *cobra.Command {
	var (
		dates       string
		extra       string
		accessToken string
	)

	cmd := &cobra.Command{
		Use:   "stats-by-date <account_id>...",
		Short: "Show daily statistics slices",
		Long: `Show statistics slices for the given dates (YYYYMMDD, up to 10, within the last
28 days). Yesterday's slice is returned when no dates are given.`,
		Example: `  # Yesterday's slice
  wows players stats-by-date 1000123456

  # Specific days including PvE
  wows players stats-by-date 1000123456 --dates 20240101,20240102 --extra pve`,
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

			opts := append(commonOptions(cmd),
				wows.Dates(splitCSV(dates)...),
				wows.Extra(splitCSV(extra)...),
				wows.AccessToken(accessToken),
			)
			return runAndRender(cmd, wows.PlayerStatisticsByDate(region, ids, opts...), printFlat)
		},
	}

	cmd.Flags().StringVar(&dates, "dates", "", "Comma-separated dates, YYYYMMDD")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra sections, e.g. pve")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token for private account data")
	addFieldsFlag(cmd)

	return cmd
}
