package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintTable writes rows under headers. On a terminal the rows are rendered as
// aligned columns; otherwise as tab-separated values for piping. Cells are
// flattened to one line either way, since API descriptions may contain
// newlines and tabs.
func PrintTable(w io.Writer, headers []string, rows [][]string, isTTY bool) {
	rows = singleLine(rows)
	if !isTTY {
		printTSV(w, headers, rows)
		return
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					BetweenColumns: tw.Off,
					BetweenRows:    tw.Off,
				},
			},
		})),
	)

	table.Header(toAny(headers)...)
	for _, row := range rows {
		table.Append(toAny(row)...)
	}
	table.Render()
}

// PrintCSV writes headers and rows as CSV. Cells keep their newlines; CSV
// quoting preserves them.
func PrintCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

func printTSV(w io.Writer, headers []string, rows [][]string) {
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
}

var cellReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func singleLine(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = cellReplacer.Replace(c)
		}
		out[i] = cells
	}
	return out
}

func toAny(ss []string) []any {
	result := make([]any, len(ss))
	for i, s := range ss {
		result[i] = s
	}
	return result
}
