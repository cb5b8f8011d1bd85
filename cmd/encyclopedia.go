package cmd

import (
	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
)

// encyclopediaEntry describes one encyclopedia listing command.
type encyclopediaEntry struct {
	use     string
	short   string
	example string
	request func(wows.Region, ...wows.QueryOption) wows.Request
	columns []column

	// Optional filters the endpoint accepts.
	idFlag   string
	idOption func(...int64) wows.QueryOption
	typed    bool
	nation   bool
	paged    bool
}

var encyclopediaEntries = []encyclopediaEntry{
	{
		use:     "achievements",
		short:   "List achievements",
		example: "  wows encyclopedia achievements --json --jq '.data.battle | keys'",
		request: wows.Achievements,
	},
	{
		use:     "modules",
		short:   "List ship modules",
		example: "  wows encyclopedia modules --type Hull --nation usa --limit 20",
		request: wows.Modules,
		columns: []column{
			{"MODULE_ID", "$key"},
			{"NAME", "name"},
			{"TYPE", "type"},
			{"PRICE_CREDIT", "price_credit"},
		},
		idFlag:   "module-id",
		idOption: wows.ModuleIDs,
		typed:    true,
		nation:   true,
		paged:    true,
	},
	{
		use:     "exterior",
		short:   "List camouflages, flags and signals",
		example: "  wows encyclopedia exterior --type Flags",
		request: wows.ExteriorItems,
		columns: []column{
			{"EXTERIOR_ID", "$key"},
			{"NAME", "name"},
			{"TYPE", "type"},
			{"PRICE_CREDIT", "price_credit"},
			{"PRICE_GOLD", "price_gold"},
		},
		idFlag:   "exterior-id",
		idOption: wows.ExteriorIDs,
		typed:    true,
		paged:    true,
	},
	{
		use:     "upgrades",
		short:   "List ship upgrades",
		example: "  wows encyclopedia upgrades --upgrade-id 4280431536",
		request: wows.Upgrades,
		columns: []column{
			{"UPGRADE_ID", "$key"},
			{"NAME", "name"},
			{"PRICE_CREDIT", "price_credit"},
		},
		idFlag:   "upgrade-id",
		idOption: wows.UpgradeIDs,
		paged:    true,
	},
	{
		use:     "levels",
		short:   "List service record levels",
		example: "  wows encyclopedia levels",
		request: wows.ServiceRecordLevels,
		columns: []column{
			{"LEVEL", "$key"},
			{"EXPERIENCE", "experience"},
			{"TIER", "tier"},
		},
	},
	{
		use:     "commanders",
		short:   "List commanders",
		example: "  wows encyclopedia commanders --commander-id 3966677904",
		request: wows.Commanders,
		columns: []column{
			{"COMMANDER_ID", "$key"},
			{"NAME", "first_names"},
			{"LAST_NAME", "last_names"},
			{"NATION", "nation"},
		},
		idFlag:   "commander-id",
		idOption: wows.CommanderIDs,
	},
	{
		use:     "skills",
		short:   "List commander skills",
		example: "  wows encyclopedia skills",
		request: wows.CommanderSkills,
		columns: []column{
			{"SKILL_ID", "$key"},
			{"NAME", "name"},
			{"TIER", "tier"},
			{"TYPE", "type_name"},
		},
		idFlag:   "skill-id",
		idOption: wows.SkillIDs,
	},
	{
		use:     "ranks",
		short:   "List commander ranks",
		example: "  wows encyclopedia ranks --nation usa",
		request: wows.CommanderRanks,
		nation:  true,
	},
	{
		use:     "battle-types",
		short:   "List battle types",
		example: "  wows encyclopedia battle-types",
		request: wows.BattleTypes,
		columns: []column{
			{"TYPE", "$key"},
			{"NAME", "name"},
			{"DESCRIPTION", "description"},
		},
	},
}

func newEncyclopediaCmd() *cobra.Command {
	encCmd := &cobra.Command{
		Use:     "encyclopedia",
		Aliases: []string{"enc"},
		Short:   "Browse the game encyclopedia",
		Long:    "Browse static game data: ship modules, camouflages, upgrades, commanders, achievements, and more.",
	}

	encCmd.AddCommand(newEncyclopediaInfoCmd())
	for _, entry := range encyclopediaEntries {
		encCmd.AddCommand(newEncyclopediaEntryCmd(entry))
	}
	return encCmd
}

func newEncyclopediaInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show encyclopedia metadata (game version, ship types, nations)",
		Example: `  # Current game version
  wows encyclopedia info --json --jq '.data.game_version'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := resolveRegion()
			if err != nil {
				return err
			}
			return runAndRender(cmd, wows.EncyclopediaInfo(region, commonOptions(cmd)...), printFlat)
		},
	}
	addFieldsFlag(cmd)
	return cmd
}

func newEncyclopediaEntryCmd(entry encyclopediaEntry) *cobra.Command {
	var (
		ids    string
		types  string
		nation string
		limit  int
		page   int
	)

	cmd := &cobra.Command{
		Use:     entry.use,
		Short:   entry.short,
		Example: entry.example,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := resolveRegion()
			if err != nil {
				return err
			}

			opts := commonOptions(cmd)
			if ids != "" {
				parsed, err := parseIDs([]string{ids})
				if err != nil {
					return err
				}
				opts = append(opts, entry.idOption(parsed...))
			}
			opts = append(opts,
				wows.Type(splitCSV(types)...),
				wows.Nation(splitCSV(nation)...),
				wows.Limit(limit),
				wows.PageNo(page),
			)

			return runAndRender(cmd, entry.request(region, opts...), func(data any) error {
				fields, _ := cmd.Flags().GetString("fields")
				if len(entry.columns) == 0 || fields != "" {
					return printFlat(data)
				}
				keys, recs := records(data)
				if len(recs) == 0 {
					getIO().Printf("Nothing found.\n")
					return nil
				}
				return printRecords(entry.columns, keys, recs)
			})
		},
	}

	if entry.idFlag != "" {
		cmd.Flags().StringVar(&ids, entry.idFlag, "", "Comma-separated ids (max 100)")
	}
	if entry.typed {
		cmd.Flags().StringVar(&types, "type", "", "Comma-separated item types")
	}
	if entry.nation {
		cmd.Flags().StringVar(&nation, "nation", "", "Comma-separated nations")
	}
	if entry.paged {
		cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of items per page")
		cmd.Flags().IntVar(&page, "page", 0, "Page number")
	}
	addFieldsFlag(cmd)

	return cmd
}
