package cmd

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aviadshiber/wows/internal/output"
	"github.com/aviadshiber/wows/pkg/wows"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// transport overrides the HTTP transport of every client the CLI creates.
// Tests set it; nil means a real *http.Client.
var transport wows.Doer

// newClient creates a Wargaming API client from the current configuration
// state (viper config + env vars + flags).
func newClient() (*wows.Client, error) {
	appID, err := requireApplicationID()
	if err != nil {
		return nil, err
	}
	return wows.New(appID, clientOptions()...), nil
}

// newAsyncClient creates a client whose calls run concurrently over one
// shared, pooled transport owned by the CLI.
func newAsyncClient() (*wows.AsyncClient, error) {
	appID, err := requireApplicationID()
	if err != nil {
		return nil, err
	}
	return wows.NewAsync(appID, sharedTransport(), clientOptions()...)
}

func clientOptions() []wows.Option {
	return []wows.Option{
		wows.WithHTTPClient(transport),
		wows.WithLogger(logger),
		wows.WithUserAgent("wows-cli/" + versionInfo.version),
	}
}

func sharedTransport() wows.Doer {
	if transport != nil {
		return transport
	}
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConnsPerHost = 8
	return &http.Client{Timeout: wows.DefaultTimeout, Transport: t}
}

// requireApplicationID returns the configured application ID or an error
// telling the user how to set it.
func requireApplicationID() (string, error) {
	appID := viper.GetString("application_id")
	if appID == "" {
		return "", fmt.Errorf("application ID is required; set via `WOWS_APPLICATION_ID` env or `wows config set application_id <id>`")
	}
	return appID, nil
}

// resolveRegion returns the configured region, defaulting to NA.
func resolveRegion() (wows.Region, error) {
	region := viper.GetString("region")
	if region == "" {
		return wows.NA, nil
	}
	return wows.ParseRegion(region)
}

// commonOptions collects the query options shared by most commands: the
// global --language and the command's --fields, when it has one.
func commonOptions(cmd *cobra.Command) []wows.QueryOption {
	var opts []wows.QueryOption
	if lang := viper.GetString("language"); lang != "" {
		opts = append(opts, wows.Language(lang))
	}
	if f := cmd.Flags().Lookup("fields"); f != nil && f.Value.String() != "" {
		opts = append(opts, wows.Fields(splitCSV(f.Value.String())...))
	}
	return opts
}

// addFieldsFlag registers the --fields projection flag.
func addFieldsFlag(cmd *cobra.Command) {
	cmd.Flags().String("fields", "", "Comma-separated response fields; prefix with - to exclude")
}

// fetch sends req and treats an upstream error envelope as a command
// failure. The library leaves that decision to its caller.
func fetch(ctx context.Context, req wows.Request) (*wows.Response, error) {
	c, err := newClient()
	if err != nil {
		return nil, err
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", req.Endpoint, err)
	}
	if err := checkEnvelope(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// checkEnvelope converts an upstream "status":"error" body or an HTTP error
// status into an error.
func checkEnvelope(resp *wows.Response) error {
	env, err := resp.Envelope()
	if err == nil && env.Status == "error" && env.Error != nil {
		if env.Error.Field != "" {
			return fmt.Errorf("API error %d: %s (%s=%v)", env.Error.Code, env.Error.Message, env.Error.Field, env.Error.Value)
		}
		return fmt.Errorf("API error %d: %s", env.Error.Code, env.Error.Message)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode, strings.TrimSpace(string(resp.Body)))
	}
	return nil
}

// dataOf returns the "data" member of a response.
func dataOf(resp *wows.Response) any {
	return resp.Map()["data"]
}

// handleJSONOutput processes a parsed JSON value through --jq or --template
// filters, or prints it as pretty JSON. It returns true if JSON output was
// handled (i.e., --json was requested), false otherwise.
func handleJSONOutput(cmd *cobra.Command, data any) (bool, error) {
	if !jsonOutputRequested(cmd) {
		return false, nil
	}

	fieldList, _ := cmd.Flags().GetString("json")
	return true, writeJSON(cmd, filterJSONFields(data, splitCSV(fieldList)))
}

// writeJSON prints data through --jq or --template, or as pretty JSON.
func writeJSON(cmd *cobra.Command, data any) error {
	s := getIO()

	jqExpr, _ := cmd.Flags().GetString("jq")
	tmpl, _ := cmd.Flags().GetString("template")
	switch {
	case jqExpr != "":
		return output.ApplyJQ(s.Out, data, jqExpr)
	case tmpl != "":
		return output.ApplyTemplate(s.Out, data, tmpl)
	default:
		return output.PrintJSON(s.Out, data)
	}
}

// handleEnvelopeJSON is handleJSONOutput for a whole response: the --json
// field list selects fields of the records under "data" and the envelope
// around them is kept.
func handleEnvelopeJSON(cmd *cobra.Command, resp *wows.Response) (bool, error) {
	if !jsonOutputRequested(cmd) {
		return false, nil
	}

	env := resp.Map()
	if env == nil {
		return true, writeJSON(cmd, resp.Data)
	}

	fieldList, _ := cmd.Flags().GetString("json")
	wrapped := make(map[string]any, len(env))
	for k, v := range env {
		wrapped[k] = v
	}
	if data, ok := env["data"]; ok {
		wrapped["data"] = filterJSONFields(data, splitCSV(fieldList))
	}
	return true, writeJSON(cmd, wrapped)
}

// filterJSONFields applies the --json field list to lists and id-keyed
// objects of records. Other shapes are returned unchanged.
func filterJSONFields(data any, fields []string) any {
	if len(fields) == 0 {
		return data
	}
	switch v := data.(type) {
	case []any:
		records := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				records = append(records, m)
			}
		}
		return output.FilterFields(records, fields)
	case map[string]any:
		filtered := make(map[string]any, len(v))
		for k, item := range v {
			if m, ok := item.(map[string]any); ok {
				filtered[k] = output.FilterFieldsSingle(m, fields)
			} else {
				filtered[k] = item
			}
		}
		return filtered
	}
	return data
}

// column maps a table header to a dotted path inside a record. The path
// "$key" refers to the key the record was found under.
type column struct {
	header string
	path   string
}

// records normalizes response data into rows. The API returns either a list
// of objects or an object keyed by id; keyed objects are sorted by key and
// null entries (hidden or unknown ids) are skipped. An object holding any
// member that is neither an object nor null is a single record.
func records(data any) ([]string, []map[string]any) {
	switch v := data.(type) {
	case []any:
		keys := make([]string, 0, len(v))
		recs := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				keys = append(keys, "")
				recs = append(recs, m)
			}
		}
		return keys, recs
	case map[string]any:
		ids := make([]string, 0, len(v))
		for k, item := range v {
			switch item.(type) {
			case map[string]any:
				ids = append(ids, k)
			case nil:
			default:
				return []string{""}, []map[string]any{v}
			}
		}
		sortIDs(ids)
		recs := make([]map[string]any, len(ids))
		for i, k := range ids {
			recs[i] = v[k].(map[string]any)
		}
		return ids, recs
	}
	return nil, nil
}

// sortIDs sorts numerically when every id is a number, lexically otherwise.
func sortIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.ParseInt(ids[i], 10, 64)
		b, errB := strconv.ParseInt(ids[j], 10, 64)
		if errA == nil && errB == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
}

// warnMissing reports ids the API answered with null, which happens for
// unknown ids and hidden profiles. Quiet mode silences it.
func warnMissing(data any, what string) {
	s := getIO()
	m, ok := data.(map[string]any)
	if !ok || s.IsQuiet() {
		return
	}
	var missing []string
	for k, v := range m {
		if v == nil {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return
	}
	sortIDs(missing)
	s.Errorf("%s no data for %s %s\n", s.Warning("!"), what, strings.Join(missing, ", "))
}

// lookup walks a dotted path through nested objects.
func lookup(m map[string]any, path string) any {
	var cur any = m
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[part]
	}
	return cur
}

// printRecords renders records with the given columns as a table, CSV or
// JSON Lines depending on the global output flags.
func printRecords(cols []column, keys []string, recs []map[string]any) error {
	s := getIO()

	if cfgJSONL {
		return output.PrintJSONL(s.Out, recs)
	}

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.header
	}

	rows := make([][]string, 0, len(recs))
	for i, rec := range recs {
		row := make([]string, len(cols))
		for j, c := range cols {
			if c.path == "$key" {
				row[j] = keys[i]
				continue
			}
			row[j] = output.FormatValue(lookup(rec, c.path))
		}
		rows = append(rows, row)
	}

	if cfgCSV {
		return output.PrintCSV(s.Out, headers, rows)
	}
	output.PrintTable(s.Out, headers, rows, s.IsTerminal())
	return nil
}

// printFlat renders every record as FIELD/VALUE rows with dotted field
// names, prefixed by the record id when the data is keyed.
func printFlat(data any) error {
	s := getIO()

	keys, recs := records(data)
	if len(recs) == 0 {
		s.Printf("No data returned.\n")
		return nil
	}

	headers := []string{"ID", "FIELD", "VALUE"}
	var rows [][]string
	for i, rec := range recs {
		fields, flat := output.Flatten(rec)
		for _, f := range fields {
			rows = append(rows, []string{keys[i], f, flat[f]})
		}
	}

	if cfgCSV {
		return output.PrintCSV(s.Out, headers, rows)
	}
	output.PrintTable(s.Out, headers, rows, s.IsTerminal())
	return nil
}

// runAndRender fetches req and either prints JSON (when --json is set) or
// hands the response data to render.
func runAndRender(cmd *cobra.Command, req wows.Request, render func(data any) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*wows.DefaultTimeout)
	defer cancel()

	resp, err := fetch(ctx, req)
	if err != nil {
		return err
	}

	handled, err := handleEnvelopeJSON(cmd, resp)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}

	return render(dataOf(resp))
}

// parseIDs parses numeric ids given as separate arguments and/or comma
// separated lists.
func parseIDs(args []string) ([]int64, error) {
	var ids []int64
	for _, arg := range args {
		for _, part := range splitCSV(arg) {
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil || id <= 0 {
				return nil, fmt.Errorf("invalid id %q; ids must be positive integers", part)
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one id is required")
	}
	return ids, nil
}

// winRate formats wins/battles as a percentage.
func winRate(wins, battles any) string {
	w, okW := toFloat(wins)
	b, okB := toFloat(battles)
	if !okW || !okB || b == 0 {
		return ""
	}
	return fmt.Sprintf("%.2f%%", w/b*100)
}

// average formats total/battles.
func average(total, battles any) string {
	t, okT := toFloat(total)
	b, okB := toFloat(battles)
	if !okT || !okB || b == 0 {
		return ""
	}
	return fmt.Sprintf("%.0f", t/b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// formatUnix renders a unix timestamp as a date.
func formatUnix(v any) string {
	f, ok := toFloat(v)
	if !ok || f == 0 {
		return ""
	}
	return time.Unix(int64(f), 0).UTC().Format("2006-01-02")
}

// splitCSV splits a comma-separated string into trimmed, non-empty parts.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
