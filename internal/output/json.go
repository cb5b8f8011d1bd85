// Package output provides formatters for CLI output: JSON, table, CSV, and JSONL.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/itchyny/gojq"
)

// PrintJSON pretty-prints v as indented JSON to w.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// FilterFields takes a slice of maps and returns a new slice containing only
// the specified fields from each map.
func FilterFields(data []map[string]any, fields []string) []map[string]any {
	if len(fields) == 0 {
		return data
	}
	result := make([]map[string]any, 0, len(data))
	for _, item := range data {
		filtered := make(map[string]any, len(fields))
		for _, f := range fields {
			if val, ok := item[f]; ok {
				filtered[f] = val
			}
		}
		result = append(result, filtered)
	}
	return result
}

// FilterFieldsSingle filters a single map to only the specified fields.
func FilterFieldsSingle(data map[string]any, fields []string) map[string]any {
	if len(fields) == 0 {
		return data
	}
	filtered := make(map[string]any, len(fields))
	for _, f := range fields {
		if val, ok := data[f]; ok {
			filtered[f] = val
		}
	}
	return filtered
}

// ApplyJQ runs a jq expression against the input data and writes results to w.
func ApplyJQ(w io.Writer, data any, expr string) error {
	query, err := gojq.Parse(expr)
	if err != nil {
		return fmt.Errorf("parsing jq expression: %w", err)
	}

	iter := query.Run(normalizeNumbers(data))
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return fmt.Errorf("jq evaluation: %w", err)
		}
		if err := PrintJSON(w, v); err != nil {
			return fmt.Errorf("writing jq result: %w", err)
		}
	}
	return nil
}

// ApplyTemplate renders data through a Go text/template and writes to w.
func ApplyTemplate(w io.Writer, data any, tmpl string) error {
	t, err := template.New("").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	_, err = buf.WriteTo(w)
	return err
}

// normalizeNumbers converts json.Number values, which gojq does not accept,
// into int or float64.
func normalizeNumbers(v any) any {
	switch v := v.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i)
		}
		f, _ := v.Float64()
		return f
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = normalizeNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = normalizeNumbers(val)
		}
		return out
	}
	return v
}

// Flatten turns nested objects into dotted keys, e.g. statistics.pvp.wins,
// and returns the keys sorted. Arrays are rendered inline as JSON.
func Flatten(data map[string]any) ([]string, map[string]string) {
	flat := make(map[string]string)
	flattenInto(flat, "", data)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, flat
}

func flattenInto(flat map[string]string, prefix string, v any) {
	switch v := v.(type) {
	case map[string]any:
		if len(v) == 0 && prefix != "" {
			flat[prefix] = "{}"
			return
		}
		for k, val := range v {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			flattenInto(flat, key, val)
		}
	default:
		flat[prefix] = FormatValue(v)
	}
}

// FormatValue renders a decoded JSON value as a table cell.
func FormatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strings.TrimSuffix(fmt.Sprintf("%.2f", v), ".00")
	case bool, int, int64:
		return fmt.Sprint(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
