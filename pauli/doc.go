// Package pauli parses the HamLib text encoding of qubit Hamiltonians into
// sparse, qubit-indexed Pauli operator lists.
//
// This package implements the full text pipeline:
//   - Canonical-form detection for raw dataset payloads
//   - Normalization of loosely formatted terms into canonical form
//   - Parsing canonical text into an ordered list of sparse terms
//   - Rendering operator lists back to canonical text
//   - Qubit-count inference over a parsed list
//   - Numeric classification shared with the catalog scanner
//
// # Text Forms
//
// A canonical term is a parenthesized coefficient followed by a bracketed,
// space-separated operator list, with terms joined by " +\n":
//
//	(0.5) [X0 X1] +
//	(-1.5+2j) [Z0 Z2] +
//	(2) []
//
// The loose form drops the parentheses and joins terms with a bare "+":
//
//	0.5 [X0 X1] + 2.0 [Z0 Z2]
//
// Coefficients use Python-style complex notation with a trailing 'j'
// imaginary marker. An empty bracket pair is a pure identity term and is
// preserved through parsing and rendering.
//
// # Basic Usage
//
// Normalize a raw payload when needed, then parse it:
//
//	data = pauli.NormalizeIfNeeded(data)
//
//	terms, err := pauli.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(pauli.QubitCount(terms))
//
// # Handling Modes
//
// By default the parser and normalizer are lenient: operator tokens that do
// not look like a Pauli letter plus a qubit index are skipped, and loose
// terms that do not match the term grammar are dropped. Strict mode turns
// both into errors:
//
//	res, err := pauli.ParseWithOptions(data, pauli.Options{Mode: pauli.Strict})
//
// Lenient skips are reported through Result.Skipped so callers can log them.
//
// # Error Handling
//
// The package returns descriptive errors for:
//   - Coefficients that do not parse as complex numbers (*CoefficientError,
//     always fatal, in either mode)
//   - Unrecognized operator tokens in Strict mode
//   - Loose terms that miss the term grammar in Strict mode
package pauli
