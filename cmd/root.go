// Package cmd defines the CLI commands for the wows tool.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/aviadshiber/wows/internal/iostreams"
	"github.com/aviadshiber/wows/internal/logging"
	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// versionInfo is set by main via SetVersionInfo.
	versionInfo struct {
		version string
		commit  string
		date    string
	}

	// Global flag values bound to viper.
	cfgRegion   string
	cfgLanguage string
	cfgQuiet    bool
	cfgDebug    bool
	cfgJSON     string
	cfgJQ       string
	cfgTemplate string
	cfgCSV      bool
	cfgJSONL    bool

	io     *iostreams.IOStreams
	logger = zerolog.Nop()
)

// SetVersionInfo stores build metadata for the version command.
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

var rootCmd = &cobra.Command{
	Use:   "wows",
	Short: "World of Warships CLI - look up players, ships, and clans",
	Long: `wows is a command-line tool for the World of Warships public API.

It searches players and clans, prints player and ship statistics, and browses
the encyclopedia. Output can be formatted as tables, CSV, JSON, or filtered
with jq expressions and Go templates.

Configuration is stored in ~/.config/wows/config.yaml and can be overridden
with flags or environment variables (WOWS_APPLICATION_ID, WOWS_REGION,
WOWS_LANGUAGE). A .env file in the working directory is loaded first.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s := getIO()

		debug := cfgDebug || os.Getenv("WOWS_DEBUG") == "1"
		logger = logging.SetupEnvironment(s.ErrOut, debug, s.ErrColorEnabled())
		s.SetQuiet(viper.GetBool("quiet"))

		// Validate region if provided.
		if region := viper.GetString("region"); region != "" {
			if _, err := wows.ParseRegion(region); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	// Load config file into global viper.
	home, _ := os.UserHomeDir()
	if home != "" {
		viper.SetConfigFile(home + "/.config/wows/config.yaml")
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig() // Ignore error if file doesn't exist yet.
	}

	// Bind env vars before flag parsing.
	viper.SetEnvPrefix("WOWS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Persistent flags available to all subcommands.
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgRegion, "region", "r", "", "API region: na, eu, ru, asia (env: WOWS_REGION)")
	pf.StringVarP(&cfgLanguage, "language", "l", "", "Response language, e.g. en, ru, de (env: WOWS_LANGUAGE)")
	pf.BoolVarP(&cfgQuiet, "quiet", "q", false, "Suppress non-essential output (env: WOWS_QUIET)")
	pf.BoolVar(&cfgDebug, "debug", false, "Log API requests to stderr (env: WOWS_DEBUG=1)")
	pf.StringVar(&cfgJSON, "json", "", "Output JSON; optionally comma-separated field list")
	pf.StringVar(&cfgJQ, "jq", "", "Filter JSON output with a jq expression (requires --json)")
	pf.StringVar(&cfgTemplate, "template", "", "Format output with a Go template (requires --json)")
	pf.BoolVar(&cfgCSV, "csv", false, "Output tables as CSV")
	pf.BoolVar(&cfgJSONL, "jsonl", false, "Output table rows as JSON Lines")

	// Allow --json to be used without a value (e.g., "wows version --json").
	pf.Lookup("json").NoOptDefVal = " "

	// Bind flags to viper keys so env vars and config file values also work.
	_ = viper.BindPFlag("region", pf.Lookup("region"))
	_ = viper.BindPFlag("language", pf.Lookup("language"))
	_ = viper.BindPFlag("quiet", pf.Lookup("quiet"))

	// Register subcommands.
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newShipsCmd())
	rootCmd.AddCommand(newEncyclopediaCmd())
	rootCmd.AddCommand(newSeasonsCmd())
	rootCmd.AddCommand(newClansCmd())
	rootCmd.AddCommand(newRawCmd())
}

// Execute runs the root command. Called from main.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		// Print error in red to stderr.
		s := getIO()
		fmt.Fprintln(s.ErrOut, s.Failure("Error: "+err.Error()))
		return err
	}
	return nil
}

// getIO returns the current IOStreams instance, initializing if needed.
func getIO() *iostreams.IOStreams {
	if io == nil {
		io = iostreams.New()
	}
	return io
}

// jsonOutputRequested reports whether the --json flag was explicitly set.
func jsonOutputRequested(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("json")
}
