package pauli

import (
	"sort"
	"strconv"
	"strings"
)

// OpTokens returns the term's operator tokens ("X0", "Z2") ordered by
// qubit index.
func (t Term) OpTokens() []string {
	qubits := make([]int, 0, len(t.Ops))
	for q := range t.Ops {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)
	tokens := make([]string, len(qubits))
	for i, q := range qubits {
		tokens[i] = string(t.Ops[q]) + strconv.Itoa(q)
	}
	return tokens
}

// String renders the term in canonical "(coeff) [ops]" form.
func (t Term) String() string {
	return "(" + formatCoefficient(t.Coeff) + ") [" + strings.Join(t.OpTokens(), " ") + "]"
}

// Canonical renders the list in the canonical text form understood by
// Parse, terms joined by " +\n". Rendering and re-parsing reproduces the
// list exactly: coefficients are printed with the shortest decimal form
// that round-trips through float64.
func (l OperatorList) Canonical() []byte {
	terms := make([]string, len(l))
	for i, t := range l {
		terms[i] = t.String()
	}
	return []byte(strings.Join(terms, termSeparator))
}

// formatCoefficient prints a complex coefficient the way the term grammar
// reads it: fixed-point notation, never exponent form, with a 'j'
// imaginary marker.
func formatCoefficient(c complex128) string {
	re := strconv.FormatFloat(real(c), 'f', -1, 64)
	if imag(c) == 0 {
		return re
	}
	im := strconv.FormatFloat(imag(c), 'f', -1, 64)
	if real(c) == 0 {
		return im + "j"
	}
	if imag(c) > 0 {
		return re + "+" + im + "j"
	}
	return re + im + "j"
}
