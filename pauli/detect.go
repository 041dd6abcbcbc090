package pauli

import "regexp"

// canonicalTermRe matches one canonical "(coeff) [ops]" term. The
// coefficient grammar is a signed real with an optional fractional part,
// then an optional signed imaginary part with a trailing 'j'. The
// imaginary digits are integer-only: this is the exact shape existing
// HamLib files were validated against, and widening it would reclassify
// payloads that today take the normalization path.
var canonicalTermRe = regexp.MustCompile(`\(\s*-?\d+(\.\d+)?(\+|\-)?\d*?j?\s*\)\s*\[.*?\]`)

// NeedsNormalization reports whether data lacks any canonical
// "(coeff) [ops]" term and must pass through Normalize before parsing.
// A payload mixing canonical and loose terms counts as canonical.
func NeedsNormalization(data []byte) bool {
	return !canonicalTermRe.Match(data)
}
