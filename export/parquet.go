package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/segmentio/parquet-go"

	"github.com/hamtools/hamcat/pauli"
)

// TermRecord is one exported term row. Operators are rendered in canonical
// token form ("X0 Z2") so the column round-trips through the term parser.
type TermRecord struct {
	Term    int32   `parquet:"term"`
	CoeffRe float64 `parquet:"coeff_re"`
	CoeffIm float64 `parquet:"coeff_im"`
	Ops     string  `parquet:"ops"`
	Weight  int32   `parquet:"weight"`
}

// Records flattens an operator list into exportable rows, one per term, in
// list order.
func Records(list pauli.OperatorList) []TermRecord {
	records := make([]TermRecord, len(list))
	for i, t := range list {
		records[i] = TermRecord{
			Term:    int32(i),
			CoeffRe: real(t.Coeff),
			CoeffIm: imag(t.Coeff),
			Ops:     strings.Join(t.OpTokens(), " "),
			Weight:  int32(t.Weight()),
		}
	}
	return records
}

// WriteParquet writes the list to w as a parquet file. An empty list still
// produces a valid file carrying the term schema and zero rows.
func WriteParquet(w io.Writer, list pauli.OperatorList) error {
	writer := parquet.NewGenericWriter[TermRecord](w)
	if len(list) > 0 {
		if _, err := writer.Write(Records(list)); err != nil {
			return fmt.Errorf("failed to write term records: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
