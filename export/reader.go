package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/segmentio/parquet-go"
)

// ReadRecords loads every term record from a parquet file written by
// WriteParquet. The whole file is read into memory.
func ReadRecords(path string) ([]TermRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	reader := parquet.NewReader(pqFile)
	defer reader.Close()

	records := make([]TermRecord, 0)
	for {
		row := make(map[string]interface{})
		err := reader.Read(&row)
		if err != nil {
			// Use errors.Is for proper EOF detection
			if errors.Is(err, io.EOF) || err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		records = append(records, recordFromRow(row))
	}

	return records, nil
}

// recordFromRow rebuilds a TermRecord from the reader's map form.
func recordFromRow(row map[string]interface{}) TermRecord {
	var rec TermRecord
	if v, ok := row["term"].(int32); ok {
		rec.Term = v
	}
	if v, ok := row["coeff_re"].(float64); ok {
		rec.CoeffRe = v
	}
	if v, ok := row["coeff_im"].(float64); ok {
		rec.CoeffIm = v
	}
	switch v := row["ops"].(type) {
	case string:
		rec.Ops = v
	case []byte:
		rec.Ops = string(v)
	}
	if v, ok := row["weight"].(int32); ok {
		rec.Weight = v
	}
	return rec
}
