// Package renderer turns calculation results into markdown for the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/sharonbn/stopquote"
)

// SummaryMarkdown renders summary rows as a markdown table.
func SummaryMarkdown(rows []stopquote.SummaryRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Stop Quotes\n\n")
	fmt.Fprintln(&b, "| Symbol | Gain | Last Price | Existing Stop | New Stop | Comments |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|:---|")

	for _, r := range rows {
		existing, newStop := " ", " "
		if r.HasExisting {
			existing = r.ExistingStop.String()
		}
		if r.HasNew {
			newStop = r.NewStop.String()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			r.Symbol,
			r.Gain.String(),
			r.LastPrice.String(),
			existing,
			newStop,
			r.Comments,
		)
	}
	return b.String()
}
