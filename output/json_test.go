package output

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/hamtools/hamcat/catalog"
)

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	if err := f.Format(sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Format() wrote %d lines, want 2", len(lines))
	}

	var first catalog.DatasetRanges
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Unmarshal(%q) error = %v", lines[0], err)
	}
	if first.Dataset != "tfim1" {
		t.Errorf("first dataset = %q, want %q", first.Dataset, "tfim1")
	}
	if want := []string{"4", "8", "1D"}; !reflect.DeepEqual(first.Ranges["size"], want) {
		t.Errorf("size range = %v, want %v", first.Ranges["size"], want)
	}

	var second catalog.DatasetRanges
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Unmarshal(%q) error = %v", lines[1], err)
	}
	if second.Dataset != "empty" {
		t.Errorf("second dataset = %q, want %q", second.Dataset, "empty")
	}
	if len(second.Ranges) != 0 {
		t.Errorf("second ranges = %v, want empty", second.Ranges)
	}
}

func TestJSONFormatter_Format_EmptyReport(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(&buf)

	if err := f.Format(catalog.Report{}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if got := buf.String(); got != "" {
		t.Errorf("Format() = %q, want empty", got)
	}
}
