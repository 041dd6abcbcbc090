package pauli

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want OperatorList
	}{
		{
			"complex and real coefficients",
			"(1.5+0.5j) [X0 Z2] +\n(2.0) [Y1]",
			OperatorList{
				{Ops: map[int]byte{0: 'X', 2: 'Z'}, Coeff: complex(1.5, 0.5)},
				{Ops: map[int]byte{1: 'Y'}, Coeff: complex(2, 0)},
			},
		},
		{
			"negative coefficient",
			"(-3.5) [Z0 Z1]",
			OperatorList{
				{Ops: map[int]byte{0: 'Z', 1: 'Z'}, Coeff: complex(-3.5, 0)},
			},
		},
		{
			"pure imaginary coefficient",
			"(0.5j) [Y3]",
			OperatorList{
				{Ops: map[int]byte{3: 'Y'}, Coeff: complex(0, 0.5)},
			},
		},
		{
			"identity term preserved",
			"(2.5) []",
			OperatorList{
				{Ops: map[int]byte{}, Coeff: complex(2.5, 0)},
			},
		},
		{
			"coefficient with inner spaces",
			"( 1.0 ) [X0]",
			OperatorList{
				{Ops: map[int]byte{0: 'X'}, Coeff: complex(1, 0)},
			},
		},
		{
			"token matched by prefix",
			"(1.0) [X0abc]",
			OperatorList{
				{Ops: map[int]byte{0: 'X'}, Coeff: complex(1, 0)},
			},
		},
		{
			"repeated qubit keeps last letter",
			"(1.0) [X0 Z0]",
			OperatorList{
				{Ops: map[int]byte{0: 'Z'}, Coeff: complex(1, 0)},
			},
		},
		{
			"text outside terms ignored",
			"header\n(1.0) [X0] +\n(2.0) [Z1]\ntrailer",
			OperatorList{
				{Ops: map[int]byte{0: 'X'}, Coeff: complex(1, 0)},
				{Ops: map[int]byte{1: 'Z'}, Coeff: complex(2, 0)},
			},
		},
		{
			"empty input",
			"",
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_MalformedCoefficient(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"letters", "(abc) [X0]"},
		{"blank", "( ) [X0]"},
		{"double sign", "(1.5++2j) [X0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.in))
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.in)
			}
			var cerr *CoefficientError
			if !errors.As(err, &cerr) {
				t.Errorf("Parse(%q) error = %v, want *CoefficientError", tt.in, err)
			}
		})
	}
}

func TestParseWithOptions_SkippedTokens(t *testing.T) {
	res, err := ParseWithOptions([]byte("(1.0) [X0 W1 Y2 q3]"), Options{})
	if err != nil {
		t.Fatalf("ParseWithOptions() error = %v", err)
	}
	if len(res.Terms) != 1 {
		t.Fatalf("ParseWithOptions() terms = %d, want 1", len(res.Terms))
	}
	wantOps := map[int]byte{0: 'X', 2: 'Y'}
	if !reflect.DeepEqual(res.Terms[0].Ops, wantOps) {
		t.Errorf("ParseWithOptions() ops = %v, want %v", res.Terms[0].Ops, wantOps)
	}
	wantSkipped := []string{"W1", "q3"}
	if !reflect.DeepEqual(res.Skipped, wantSkipped) {
		t.Errorf("ParseWithOptions() skipped = %v, want %v", res.Skipped, wantSkipped)
	}
}

func TestParseWithOptions_Strict(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"clean input passes", "(1.0) [X0 Y1 Z2]", false},
		{"unknown letter fails", "(1.0) [X0 W1]", true},
		{"lowercase letter fails", "(1.0) [x0]", true},
		{"bare letter fails", "(1.0) [X]", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions([]byte(tt.in), Options{Mode: Strict})
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseWithOptions(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestParse_AfterNormalize(t *testing.T) {
	raw := []byte("32.0 [] + 2.0 [Z0 Z2] + 1.0 [X0 X1]")

	list, err := Parse(NormalizeIfNeeded(raw))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := OperatorList{
		{Ops: map[int]byte{}, Coeff: complex(32, 0)},
		{Ops: map[int]byte{0: 'Z', 2: 'Z'}, Coeff: complex(2, 0)},
		{Ops: map[int]byte{0: 'X', 1: 'X'}, Coeff: complex(1, 0)},
	}
	if !reflect.DeepEqual(list, want) {
		t.Errorf("Parse() = %v, want %v", list, want)
	}
}
