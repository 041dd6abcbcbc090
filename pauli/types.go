package pauli

// Term is one sparse Pauli term: a complex coefficient attached to a map
// from qubit index to Pauli letter ('X', 'Y' or 'Z'). Qubits absent from
// the map act as the identity, so an empty map is a pure identity term.
type Term struct {
	Ops   map[int]byte
	Coeff complex128
}

// Weight returns how many qubits the term acts on non-trivially.
func (t Term) Weight() int {
	return len(t.Ops)
}

// OperatorList is an ordered list of sparse Pauli terms. Order follows the
// order of appearance in the source text and is preserved by rendering.
type OperatorList []Term

// Mode selects how parsing and normalization treat text that does not match
// the expected grammar.
type Mode int

const (
	// Lenient skips unrecognized operator tokens and drops loose terms
	// that miss the term grammar. This mirrors how the HamLib files are
	// read in practice: stray annotations are tolerated.
	Lenient Mode = iota

	// Strict turns everything Lenient would skip or drop into an error.
	Strict
)

// String returns the mode name for logs and error messages.
func (m Mode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return "unknown"
	}
}

// Options configures ParseWithOptions and NormalizeWithOptions.
type Options struct {
	Mode Mode
}
