package output

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/hamtools/hamcat/catalog"
)

// TableFormatter renders the report as an aligned ASCII table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table report formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders one row per dataset/variable pair. Datasets without
// variables still get a row so they stay visible in the report.
func (t *TableFormatter) Format(report catalog.Report) error {
	table := tablewriter.NewWriter(t.writer)
	table.SetHeader([]string{"Dataset", "Variable", "Values"})

	for _, ds := range report {
		if len(ds.Ranges) == 0 {
			table.Append([]string{ds.Dataset, "", ""})
			continue
		}
		for _, name := range sortedVariables(ds.Ranges) {
			table.Append([]string{ds.Dataset, name, strings.Join(ds.Ranges[name], " ")})
		}
	}

	table.Render()
	return nil
}
