package catalog

import (
	"fmt"
	"strings"
)

// Spec names one scan target: a logical dataset name, the path of the
// backing record collection, and an optional fixed-variable constraint
// narrowing the scan to records where that variable holds that value.
type Spec struct {
	Name       string
	Path       string
	FixedVar   string
	FixedValue string
}

// ParseSpec parses the "name:path[:var=value]" argument format. Anything
// after a third ':' is ignored.
func ParseSpec(s string) (Spec, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return Spec{}, fmt.Errorf("spec %q: want name:path[:var=value]", s)
	}
	spec := Spec{Name: parts[0], Path: parts[1]}
	if len(parts) > 2 {
		name, value, ok := strings.Cut(parts[2], "=")
		if !ok {
			return Spec{}, fmt.Errorf("spec %q: constraint %q: want var=value", s, parts[2])
		}
		spec.FixedVar, spec.FixedValue = name, value
	}
	return spec, nil
}
