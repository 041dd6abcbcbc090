package pauli

import (
	"fmt"
	"regexp"
	"strings"
)

// looseTermRe captures one loose term: the first whitespace-free token is
// the coefficient, the bracketed remainder is the operator list.
var looseTermRe = regexp.MustCompile(`^(\S+)\s*\[(.*?)\]`)

// termSeparator joins canonical terms. The embedded newline keeps large
// operators one term per line, the layout HamLib files use on disk.
const termSeparator = " +\n"

// Normalize rewrites a loosely formatted payload, "coeff [ops]" terms
// joined by bare '+', into canonical "(coeff) [ops]" terms joined by
// " +\n". Terms that do not match the loose grammar are dropped.
//
// Splitting happens on every '+', so a loose complex coefficient such as
// "1.5+0.5j" is itself split and only its trailing part survives. Loose
// payloads are expected to carry real coefficients; complex ones require
// canonical form.
func Normalize(data []byte) []byte {
	out, _ := NormalizeWithOptions(data, Options{})
	return out
}

// NormalizeWithOptions rewrites like Normalize. In Strict mode a non-empty
// term that misses the loose grammar is an error instead of being dropped.
func NormalizeWithOptions(data []byte, opts Options) ([]byte, error) {
	var canonical []string
	for _, chunk := range strings.Split(string(data), "+") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		m := looseTermRe.FindStringSubmatch(chunk)
		if m == nil {
			if opts.Mode == Strict {
				return nil, fmt.Errorf("term %q does not match \"coefficient [operators]\"", chunk)
			}
			continue
		}
		canonical = append(canonical, fmt.Sprintf("(%s) [%s]", m[1], strings.TrimSpace(m[2])))
	}
	return []byte(strings.Join(canonical, termSeparator)), nil
}

// NormalizeIfNeeded returns data unchanged when it already contains a
// canonical term, and the Normalize rewrite otherwise. The result always
// satisfies !NeedsNormalization or is empty, so applying it twice returns
// the same bytes as applying it once.
func NormalizeIfNeeded(data []byte) []byte {
	if !NeedsNormalization(data) {
		return data
	}
	return Normalize(data)
}
