// Package output provides formatters for rendering variable-range reports.
//
// This package defines the Formatter interface and provides implementations
// for common output formats. All formatters consume a catalog.Report and
// print its datasets in report order with variables sorted by name.
//
// # Supported Formats
//
//   - Text: the indented per-dataset report HamLib explorers are used to
//   - Table: aligned ASCII table, one row per dataset/variable pair
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per dataset (suitable for streaming)
//
// # Basic Usage
//
// Using the text formatter:
//
//	formatter := output.NewTextFormatter(os.Stdout)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
//
// Using the table formatter:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
//
// # Writing to Different Destinations
//
// Change output destination dynamically:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//
//	file, err := os.Create("ranges.jsonl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	formatter.SetOutput(file)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
//
// # Formatter Interface
//
// Implement custom formatters by satisfying the Formatter interface:
//
//	type Formatter interface {
//	    Format(report catalog.Report) error
//	    SetOutput(w io.Writer)
//	}
//
// # Empty Datasets
//
// A dataset that yielded no variables stays visible in every format: the
// text formatter prints its header line, the table and CSV formatters emit
// a row with empty variable and values columns, and the JSON formatter
// emits its object with an empty ranges map.
package output
