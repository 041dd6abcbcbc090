package output

import (
	"encoding/json"
	"io"

	"github.com/hamtools/hamcat/catalog"
)

// JSONFormatter outputs the report as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines report formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per dataset entry
func (j *JSONFormatter) Format(report catalog.Report) error {
	encoder := json.NewEncoder(j.writer)
	for _, ds := range report {
		if err := encoder.Encode(ds); err != nil {
			return err
		}
	}
	return nil
}
