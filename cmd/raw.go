package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/aviadshiber/wows/internal/output"
	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "raw <block/method> [key=value]...",
		Short: "Call any API method and print the response",
		Long: `Call any World of Warships API method by its block and method name and print
the decoded response unchanged, including error envelopes. The command still
exits with an error when the API reports one.

The application ID is always added from the configuration and cannot be
overridden with a parameter.`,
		Example: `  # Equivalent to "wows players search PotatoSquad --limit 1"
  wows raw account/list search=PotatoSquad limit=1

  # Any method, filtered with jq
  wows raw encyclopedia/info --jq '.data.game_version'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, err := parseEndpoint(args[0])
			if err != nil {
				return err
			}
			opts, err := parseParams(args[1:])
			if err != nil {
				return err
			}
			if lang := viper.GetString("language"); lang != "" {
				opts = append([]wows.QueryOption{wows.Language(lang)}, opts...)
			}
			region, err := resolveRegion()
			if err != nil {
				return err
			}
			return runRaw(cmd, wows.NewRequest(region, endpoint, opts...))
		},
	}

	return cmd
}

func runRaw(cmd *cobra.Command, req wows.Request) error {
	c, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*wows.DefaultTimeout)
	defer cancel()

	resp, err := c.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", req.Endpoint, err)
	}

	s := getIO()
	jqExpr, _ := cmd.Flags().GetString("jq")
	tmpl, _ := cmd.Flags().GetString("template")
	switch {
	case jqExpr != "":
		err = output.ApplyJQ(s.Out, resp.Data, jqExpr)
	case tmpl != "":
		err = output.ApplyTemplate(s.Out, resp.Data, tmpl)
	default:
		err = output.PrintJSON(s.Out, resp.Data)
	}
	if err != nil {
		return err
	}

	return checkEnvelope(resp)
}

// parseEndpoint parses "block/method", tolerating the leading "wows/" and
// surrounding slashes of a full API path.
func parseEndpoint(s string) (wows.Endpoint, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	s = strings.TrimPrefix(s, "wows/")
	block, method, ok := strings.Cut(s, "/")
	if !ok || block == "" || method == "" || strings.Contains(method, "/") {
		return wows.Endpoint{}, fmt.Errorf("invalid method %q; expected block/method, e.g. account/list", s)
	}
	return wows.Endpoint{Block: block, Method: method}, nil
}

// parseParams converts key=value arguments into query options.
func parseParams(args []string) ([]wows.QueryOption, error) {
	opts := make([]wows.QueryOption, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q; expected key=value", arg)
		}
		opts = append(opts, wows.Param(key, value))
	}
	return opts, nil
}
