package output

import (
	"fmt"
	"io"

	"github.com/hamtools/hamcat/catalog"
)

// TextFormatter writes the classic HamLib exploration report:
//
//	tfim1:
//	  graph: [1D 2D]
//	  size: [4 8]
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new plain-text report formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TextFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes one indented block per dataset. A dataset without
// variables prints just its header line.
func (t *TextFormatter) Format(report catalog.Report) error {
	for _, ds := range report {
		if _, err := fmt.Fprintf(t.writer, "%s:\n", ds.Dataset); err != nil {
			return err
		}
		for _, name := range sortedVariables(ds.Ranges) {
			if _, err := fmt.Fprintf(t.writer, "  %s: %v\n", name, ds.Ranges[name]); err != nil {
				return err
			}
		}
	}
	return nil
}
