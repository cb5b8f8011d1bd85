package cmd

import (
	"fmt"

	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
)

func newShipsCmd() *cobra.Command {
	shipsCmd := &cobra.Command{
		Use:   "ships",
		Short: "Browse warships and per-ship statistics",
		Long:  "List warships from the encyclopedia, show ship parameters, and print a player's statistics per ship.",
	}

	shipsCmd.AddCommand(newShipsListCmd())
	shipsCmd.AddCommand(newShipsProfileCmd())
	shipsCmd.AddCommand(newShipsStatsCmd())
	return shipsCmd
}

func newShipsListCmd() *cobra.Command {
	var (
		nation string
		types  string
		shipID string
		limit  int
		page   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List warships",
		Example: `  # Japanese destroyers
  wows ships list --nation japan --type Destroyer

  # Second page of 50 ships
  wows ships list --limit 50 --page 2

  # Names only
  wows ships list --json --jq '.data[].name'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := resolveRegion()
			if err != nil {
				return err
			}

			opts := commonOptions(cmd)
			opts = append(opts,
				wows.Nation(splitCSV(nation)...),
				wows.Type(splitCSV(types)...),
				wows.Limit(limit),
				wows.PageNo(page),
			)
			if shipID != "" {
				ids, err := parseIDs([]string{shipID})
				if err != nil {
					return err
				}
				opts = append(opts, wows.ShipIDs(ids...))
			}

			return runAndRender(cmd, wows.Warships(region, opts...), renderShipsList)
		},
	}

	cmd.Flags().StringVar(&nation, "nation", "", "Comma-separated nations, e.g. usa,japan")
	cmd.Flags().StringVar(&types, "type", "", "Comma-separated ship types: AirCarrier, Battleship, Destroyer, Cruiser, Submarine")
	cmd.Flags().StringVar(&shipID, "ship-id", "", "Comma-separated ship ids (max 100)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of ships per page")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	addFieldsFlag(cmd)

	return cmd
}

func renderShipsList(data any) error {
	keys, recs := records(data)
	if len(recs) == 0 {
		getIO().Printf("No ships found.\n")
		return nil
	}
	return printRecords([]column{
		{"SHIP_ID", "$key"},
		{"NAME", "name"},
		{"TIER", "tier"},
		{"TYPE", "type"},
		{"NATION", "nation"},
		{"PREMIUM", "is_premium"},
	}, keys, recs)
}

func newShipsProfileCmd() *cobra.Command {
	var modules struct {
		artillery, diveBomber, engine, fighter, fireControl int64
		flightControl, hull, torpedoBomber, torpedoes       int64
	}

	cmd := &cobra.Command{
		Use:   "profile <ship_id>",
		Short: "Show ship parameters for a module configuration",
		Long: `Show the parameters of a ship. The stock configuration is used unless
specific modules are selected.`,
		Example: `  # Stock configuration
  wows ships profile 3751786480

  # With a specific hull and guns
  wows ships profile 3751786480 --hull-id 3341897520 --artillery-id 3341832400`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			if len(ids) != 1 {
				return fmt.Errorf("exactly one ship id is required")
			}
			region, err := resolveRegion()
			if err != nil {
				return err
			}

			opts := append(commonOptions(cmd),
				wows.ArtilleryID(modules.artillery),
				wows.DiveBomberID(modules.diveBomber),
				wows.EngineID(modules.engine),
				wows.FighterID(modules.fighter),
				wows.FireControlID(modules.fireControl),
				wows.FlightControlID(modules.flightControl),
				wows.HullID(modules.hull),
				wows.TorpedoBomberID(modules.torpedoBomber),
				wows.TorpedoesID(modules.torpedoes),
			)
			return runAndRender(cmd, wows.ShipParameters(region, ids[0], opts...), printFlat)
		},
	}

	f := cmd.Flags()
	f.Int64Var(&modules.artillery, "artillery-id", 0, "Main battery module id")
	f.Int64Var(&modules.diveBomber, "dive-bomber-id", 0, "Dive bomber module id")
	f.Int64Var(&modules.engine, "engine-id", 0, "Engine module id")
	f.Int64Var(&modules.fighter, "fighter-id", 0, "Fighter module id")
	f.Int64Var(&modules.fireControl, "fire-control-id", 0, "Gun fire control system module id")
	f.Int64Var(&modules.flightControl, "flight-control-id", 0, "Flight control module id")
	f.Int64Var(&modules.hull, "hull-id", 0, "Hull module id")
	f.Int64Var(&modules.torpedoBomber, "torpedo-bomber-id", 0, "Torpedo bomber module id")
	f.Int64Var(&modules.torpedoes, "torpedoes-id", 0, "Torpedo tubes module id")
	addFieldsFlag(cmd)

	return cmd
}

func newShipsStatsCmd() *cobra.Command {
	var (
		shipID      string
		extra       string
		accessToken string
		inGarage    bool
	)

	cmd := &cobra.Command{
		Use:   "stats <account_id>",
		Short: "Show a player's statistics per ship",
		Example: `  # Random battle results for every ship a player has played
  wows ships stats 1000123456

  # Only ships currently in port, including co-op battles
  wows ships stats 1000123456 --in-garage --extra pve

  # A single ship
  wows ships stats 1000123456 --ship-id 3751786480`,
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

			opts := append(commonOptions(cmd),
				wows.Extra(splitCSV(extra)...),
				wows.AccessToken(accessToken),
			)
			if shipID != "" {
				shipIDs, err := parseIDs([]string{shipID})
				if err != nil {
					return err
				}
				opts = append(opts, wows.ShipIDs(shipIDs...))
			}
			if cmd.Flags().Changed("in-garage") {
				opts = append(opts, wows.InGarage(inGarage))
			}

			return runAndRender(cmd, wows.PlayerShipStatistics(region, ids[0], opts...), renderShipStats)
		},
	}

	cmd.Flags().StringVar(&shipID, "ship-id", "", "Comma-separated ship ids (max 100)")
	cmd.Flags().StringVar(&extra, "extra", "", "Extra sections, e.g. pve,rank_solo")
	cmd.Flags().StringVar(&accessToken, "access-token", "", "Access token for private account data")
	cmd.Flags().BoolVar(&inGarage, "in-garage", false, "Only ships currently in port (requires access token for private data)")
	addFieldsFlag(cmd)

	return cmd
}

// renderShipStats prints one row per ship. The data is keyed by account id
// with a list of ship entries under each key.
func renderShipStats(data any) error {
	var recs []map[string]any
	if m, ok := data.(map[string]any); ok {
		for _, entries := range m {
			_, shipRecs := records(entries)
			recs = append(recs, shipRecs...)
		}
	}
	if len(recs) == 0 {
		getIO().Printf("No ship statistics found (profile may be hidden).\n")
		return nil
	}

	for _, rec := range recs {
		battles := lookup(rec, "pvp.battles")
		rec["win_rate"] = winRate(lookup(rec, "pvp.wins"), battles)
		rec["avg_damage"] = average(lookup(rec, "pvp.damage_dealt"), battles)
		rec["avg_frags"] = averageFrags(lookup(rec, "pvp.frags"), battles)
	}

	return printRecords([]column{
		{"SHIP_ID", "ship_id"},
		{"BATTLES", "pvp.battles"},
		{"WIN_RATE", "win_rate"},
		{"AVG_DAMAGE", "avg_damage"},
		{"AVG_FRAGS", "avg_frags"},
		{"DISTANCE", "distance"},
	}, make([]string, len(recs)), recs)
}

func averageFrags(frags, battles any) string {
	f, okF := toFloat(frags)
	b, okB := toFloat(battles)
	if !okF || !okB || b == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f", f/b)
}
