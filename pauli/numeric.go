package pauli

import (
	"strconv"
	"strings"
)

// IsNumeric reports whether s parses as a floating-point number.
// Surrounding whitespace is ignored. It never panics: unparseable input is
// simply not numeric.
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}
