package catalog

import "strings"

// ParseInstanceName decomposes a HamLib record name into variable
// assignments. The name splits on '_'; each segment containing '-' binds
// one variable: the text before the first hyphen names it, the text
// between the first and second hyphen is its value. A hyphenated value
// such as "1D-grid-pbc" therefore truncates to "1D"; values that must
// survive whole cannot contain hyphens. Segments without a hyphen bind
// nothing, and a repeated variable keeps the last value.
func ParseInstanceName(name string) map[string]string {
	vars := make(map[string]string)
	for _, segment := range strings.Split(name, "_") {
		key, value, ok := strings.Cut(segment, "-")
		if !ok {
			continue
		}
		value, _, _ = strings.Cut(value, "-")
		vars[key] = value
	}
	return vars
}
