package cmd

import (
	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
)

func newClansCmd() *cobra.Command {
	clansCmd := &cobra.Command{
		Use:   "clans",
		Short: "Search clans and show clan details",
	}

	clansCmd.AddCommand(newClansSearchCmd())
	clansCmd.AddCommand(newClansInfoCmd())
	clansCmd.AddCommand(newClansMemberCmd())
	clansCmd.AddCommand(newClansGlossaryCmd())
	return clansCmd
}

func newClansSearchCmd() *cobra.Command {
	var (
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search clans by tag or name",
		Long:  "Search clans by tag or name (at least 2 characters). Without text, clans are listed by creation date.",
		Example: `  # Clans whose tag or name starts with "KSD"
  wows clans search KSD --region eu

  # Second page of 20
  wows clans search KSD --limit 20 --page 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := resolveRegion()
			if err != nil {
				return err
			}

			var search string
			if len(args) == 1 {
				search = args[0]
			}
			opts := append(commonOptions(cmd), wows.Limit(limit), wows.PageNo(page))
			return runAndRender(cmd, wows.SearchClans(region, search, opts...), renderClans)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of clans to return (max 100)")
	cmd.Flags().IntVar(&page, "page", 0, "Page number")
	addFieldsFlag(cmd)

	return cmd
}

func renderClans(data any) error {
	keys, recs := records(data)
	if len(recs) == 0 {
		getIO().Printf("No clans found.\n")
		return nil
	}

	for _, rec := range recs {
		rec["created"] = formatUnix(rec["created_at"])
	}

	return printRecords([]column{
		{"CLAN_ID", "clan_id"},
		{"TAG", "tag"},
		{"NAME", "name"},
		{"MEMBERS", "members_count"},
		{"CREATED", "created"},
	}, keys, recs)
}

func newClansInfoCmd() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "info <clan_id>...",
		Short: "Show clan details",
		Example: `  # Clan summary
  wows clans info 500000001

  # Include the member list
  wows clans info 500000001 --extra members --json`,
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

			opts := append(commonOptions(cmd), wows.Extra(splitCSV(extra)...))
			fields, _ := cmd.Flags().GetString("fields")
			return runAndRender(cmd, wows.ClanDetails(region, ids, opts...), func(data any) error {
				warnMissing(data, "clan")
				if fields != "" || extra != "" {
					return printFlat(data)
				}
				return renderClanDetails(data)
			})
		},
	}

	cmd.Flags().StringVar(&extra, "extra", "", "Extra sections, e.g. members")
	addFieldsFlag(cmd)

	return cmd
}

func renderClanDetails(data any) error {
	keys, recs := records(data)
	if len(recs) == 0 {
		getIO().Printf("No clans found.\n")
		return nil
	}

	for _, rec := range recs {
		rec["created"] = formatUnix(rec["created_at"])
	}

	return printRecords([]column{
		{"CLAN_ID", "$key"},
		{"TAG", "tag"},
		{"NAME", "name"},
		{"MEMBERS", "members_count"},
		{"LEADER", "leader_name"},
		{"CREATED", "created"},
	}, keys, recs)
}

func newClansMemberCmd() *cobra.Command {
	var extra string

	cmd := &cobra.Command{
		Use:   "member <account_id>...",
		Short: "Show players' clan membership",
		Example: `  # Clan and role of a player
  wows clans member 1000123456 --extra clan`,
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

			opts := append(commonOptions(cmd), wows.Extra(splitCSV(extra)...))
			return runAndRender(cmd, wows.PlayerClanData(region, ids, opts...), func(data any) error {
				keys, recs := records(data)
				if len(recs) == 0 {
					getIO().Printf("No clan membership found.\n")
					return nil
				}
				for _, rec := range recs {
					rec["joined"] = formatUnix(rec["joined_at"])
				}
				return printRecords([]column{
					{"ACCOUNT_ID", "$key"},
					{"NICKNAME", "account_name"},
					{"CLAN_ID", "clan_id"},
					{"ROLE", "role"},
					{"JOINED", "joined"},
				}, keys, recs)
			})
		},
	}

	cmd.Flags().StringVar(&extra, "extra", "", "Extra sections, e.g. clan")
	addFieldsFlag(cmd)

	return cmd
}

func newClansGlossaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "glossary",
		Short: "Show clan roles and other clan entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			region, err := resolveRegion()
			if err != nil {
				return err
			}
			return runAndRender(cmd, wows.ClanGlossary(region, commonOptions(cmd)...), printFlat)
		},
	}
	addFieldsFlag(cmd)
	return cmd
}
