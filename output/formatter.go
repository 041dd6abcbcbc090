// Package output provides formatters for rendering variable-range reports.
//
// Currently supported formats:
//   - Text: the classic indented HamLib exploration report
//   - Table: aligned ASCII table
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per dataset
package output

import (
	"io"
	"sort"

	"github.com/hamtools/hamcat/catalog"
)

// Formatter defines the interface for report formatters.
//
// Implementers must provide Format to render a report in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the report in the formatter's specific format
	Format(report catalog.Report) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// sortedVariables returns a range map's variable names in sorted order, so
// every formatter prints variables deterministically.
func sortedVariables(ranges map[string][]string) []string {
	names := make([]string, 0, len(ranges))
	for name := range ranges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
