package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/hamtools/hamcat/catalog"
)

// CSVFormatter outputs the report as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV report formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header row and one record per dataset/variable pair,
// with the observed values space-joined in the last column. A dataset
// without variables produces a record with empty variable and values
// columns.
func (c *CSVFormatter) Format(report catalog.Report) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write([]string{"dataset", "variable", "values"}); err != nil {
		return err
	}

	for _, ds := range report {
		if len(ds.Ranges) == 0 {
			if err := csvWriter.Write([]string{ds.Dataset, "", ""}); err != nil {
				return err
			}
			continue
		}
		for _, name := range sortedVariables(ds.Ranges) {
			record := []string{ds.Dataset, name, strings.Join(ds.Ranges[name], " ")}
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}

	return nil
}
