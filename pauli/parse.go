package pauli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// parsedTermRe captures the coefficient and operator list of one
	// canonical term: the coefficient is any run without ')', the
	// operator list any run without ']'.
	parsedTermRe = regexp.MustCompile(`\(([^)]+)\)\s*\[(.*?)\]`)

	// opTokenRe matches an operator token by prefix: one Pauli letter and
	// a qubit index. Trailing text after the digits is ignored, the prefix
	// semantics existing HamLib payloads rely on.
	opTokenRe = regexp.MustCompile(`^([XYZ])(\d+)`)
)

// CoefficientError reports a term coefficient that failed to parse as a
// complex number. It is always fatal: coercing a corrupt coefficient to
// zero would silently change the represented operator.
type CoefficientError struct {
	Raw string
	Err error
}

func (e *CoefficientError) Error() string {
	return fmt.Sprintf("malformed coefficient %q: %v", e.Raw, e.Err)
}

func (e *CoefficientError) Unwrap() error {
	return e.Err
}

// Result carries parsed terms plus whatever lenient parsing skipped.
type Result struct {
	Terms OperatorList

	// Skipped lists operator tokens that matched no Pauli pattern, in
	// source order. Always empty in Strict mode.
	Skipped []string
}

// Parse extracts every canonical "(coeff) [ops]" term from data, in match
// order, skipping unrecognized operator tokens. Text outside term matches
// is ignored, so the canonical " +\n" separator needs no special handling.
func Parse(data []byte) (OperatorList, error) {
	res, err := ParseWithOptions(data, Options{})
	if err != nil {
		return nil, err
	}
	return res.Terms, nil
}

// ParseWithOptions parses like Parse and additionally reports skipped
// tokens. In Strict mode an unrecognized operator token is an error.
func ParseWithOptions(data []byte, opts Options) (*Result, error) {
	res := &Result{}
	for _, m := range parsedTermRe.FindAllSubmatch(data, -1) {
		coeff, err := parseCoefficient(string(m[1]))
		if err != nil {
			return nil, err
		}
		ops := make(map[int]byte)
		for _, token := range strings.Fields(string(m[2])) {
			om := opTokenRe.FindStringSubmatch(token)
			if om == nil {
				if opts.Mode == Strict {
					return nil, fmt.Errorf("unrecognized operator token %q", token)
				}
				res.Skipped = append(res.Skipped, token)
				continue
			}
			index, err := strconv.Atoi(om[2])
			if err != nil {
				// Digits beyond the int range.
				if opts.Mode == Strict {
					return nil, fmt.Errorf("operator token %q: qubit index out of range", token)
				}
				res.Skipped = append(res.Skipped, token)
				continue
			}
			ops[index] = om[1][0]
		}
		res.Terms = append(res.Terms, Term{Ops: ops, Coeff: coeff})
	}
	return res, nil
}

// parseCoefficient reads Python-style complex notation: "1.5", "-2",
// "1.5+0.5j", "0.5j". strconv speaks 'i' where HamLib speaks 'j'.
func parseCoefficient(raw string) (complex128, error) {
	s := strings.TrimSpace(raw)
	c, err := strconv.ParseComplex(strings.ReplaceAll(s, "j", "i"), 128)
	if err != nil {
		return 0, &CoefficientError{Raw: s, Err: err}
	}
	return c, nil
}
