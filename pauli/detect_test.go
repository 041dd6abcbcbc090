package pauli

import (
	"testing"
)

func TestNeedsNormalization(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		// Canonical payloads
		{"single canonical term", "(1.0) [X0 Y1]", false},
		{"canonical multiline", "(0.5) [X0 X1] +\n(-1.5) [Z0 Z2]", false},
		{"integer coefficient", "(2) [Y1]", false},
		{"negative coefficient", "(-3.5) [X0]", false},
		{"integer imaginary part", "(1+2j) [X0]", false},
		{"pure imaginary", "(0.5j) [X0]", false},
		{"identity term", "(2) []", false},
		{"spaces inside parens", "( 1.0 ) [X0]", false},

		// One canonical term anywhere marks the payload canonical
		{"mixed canonical and loose", "(1.0) [X0] + 2.0 [Z1]", false},

		// Loose payloads
		{"loose single term", "1.0 [X0 Y1]", true},
		{"loose multi term", "1.0 [X0 Y1] + 2.0 [Z2]", true},
		{"empty", "", true},
		{"no brackets", "(1.0)", true},

		// A fractional imaginary part is outside the canonical
		// coefficient grammar, so this payload is rewritten.
		{"fractional imaginary part", "(1.5+0.5j) [X0]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NeedsNormalization([]byte(tt.in)); got != tt.want {
				t.Errorf("NeedsNormalization(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
