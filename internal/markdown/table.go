// Package markdown renders pipe tables for the generated document.
package markdown

import (
	"fmt"
	"strings"
)

// Sanitize makes a value safe for a single table cell: line breaks
// become <br> and column delimiters are backslash-escaped. It must be
// applied exactly once, at render time.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", "<br>")
	return strings.ReplaceAll(s, "|", `\|`)
}

// Table renders a header row, a separator row and one row per record.
// Every cell is sanitized. Each row must have exactly one cell per
// header; a mismatch is a bug in the caller and panics.
func Table(headers []string, rows [][]string) string {
	var b strings.Builder

	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	b.WriteString("| " + strings.Join(separators, " | ") + " |\n")

	for _, row := range rows {
		if len(row) != len(headers) {
			panic(fmt.Sprintf("markdown: row has %d cells, want %d", len(row), len(headers)))
		}
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = Sanitize(cell)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}

	return b.String()
}
