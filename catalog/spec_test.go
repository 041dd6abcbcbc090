package catalog

import (
	"testing"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Spec
		wantErr bool
	}{
		{
			"name and path",
			"tfim2:downloaded_hamlib_files/tfim.hdf5",
			Spec{Name: "tfim2", Path: "downloaded_hamlib_files/tfim.hdf5"},
			false,
		},
		{
			"with fixed constraint",
			"tfim1:tfim.hdf5:graph=1D",
			Spec{Name: "tfim1", Path: "tfim.hdf5", FixedVar: "graph", FixedValue: "1D"},
			false,
		},
		{
			"constraint value keeps extra equals",
			"a:b:k=v=w",
			Spec{Name: "a", Path: "b", FixedVar: "k", FixedValue: "v=w"},
			false,
		},
		{
			"missing path",
			"bare",
			Spec{},
			true,
		},
		{
			"constraint without equals",
			"a:b:noeq",
			Spec{},
			true,
		},
		{
			"empty constraint",
			"a:b:",
			Spec{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpec(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSpec(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSpec(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
