package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hamtools/hamcat/pauli"
	"github.com/hamtools/hamcat/store"
)

// Opener opens the record collection behind a spec path.
type Opener func(path string) (store.Store, error)

// Scanner aggregates the variable ranges of parameterized dataset
// collections.
type Scanner struct {
	open Opener
	log  *zap.Logger
}

// NewScanner builds a Scanner. A nil logger disables logging.
func NewScanner(open Opener, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{open: open, log: logger}
}

// DatasetRanges holds the observed value range of every variable in one
// dataset collection.
type DatasetRanges struct {
	Dataset string              `json:"dataset"`
	Ranges  map[string][]string `json:"ranges"`
}

// Report lists per-dataset ranges in the order the specs were given.
type Report []DatasetRanges

// Ranges scans every spec's collection and aggregates the distinct values
// observed per variable. A collection whose records carry no variables, or
// none matching the fixed constraint, still gets a report entry with an
// empty range map.
func (s *Scanner) Ranges(specs []Spec) (Report, error) {
	report := make(Report, 0, len(specs))
	for _, spec := range specs {
		ranges, err := s.scan(spec)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", spec.Name, err)
		}
		report = append(report, DatasetRanges{Dataset: spec.Name, Ranges: ranges})
	}
	return report, nil
}

func (s *Scanner) scan(spec Spec) (map[string][]string, error) {
	st, err := s.open(spec.Path)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	keys, err := st.ListKeys("")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]map[string]struct{})
	for _, key := range keys {
		// The instance name is the part before any ':' annotation.
		instance, _, _ := strings.Cut(key, ":")
		vars := ParseInstanceName(instance)
		if spec.FixedVar != "" {
			v, ok := vars[spec.FixedVar]
			if !ok || v != spec.FixedValue {
				continue
			}
		}
		for name, value := range vars {
			// The fixed variable is an input to the scan, not a finding.
			if spec.FixedVar != "" && name == spec.FixedVar {
				continue
			}
			if seen[name] == nil {
				seen[name] = make(map[string]struct{})
			}
			seen[name][value] = struct{}{}
		}
	}

	s.log.Debug("scanned record collection",
		zap.String("dataset", spec.Name),
		zap.String("path", spec.Path),
		zap.Int("keys", len(keys)),
		zap.Int("variables", len(seen)))

	ranges := make(map[string][]string, len(seen))
	for name, values := range seen {
		ranges[name] = sortValues(values)
	}
	return ranges, nil
}

// sortValues orders distinct values numerically first, ascending, with the
// non-numeric remainder sorted lexically after. Mixed sets such as integer
// sizes alongside topology names ("2", "4", "1D") stay readable this way.
func sortValues(set map[string]struct{}) []string {
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Slice(values, func(i, j int) bool {
		return valueLess(values[i], values[j])
	})
	return values
}

func valueLess(a, b string) bool {
	aNum, bNum := pauli.IsNumeric(a), pauli.IsNumeric(b)
	switch {
	case aNum && bNum:
		fa, _ := strconv.ParseFloat(strings.TrimSpace(a), 64)
		fb, _ := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if fa != fb {
			return fa < fb
		}
		return a < b
	case aNum:
		return true
	case bNum:
		return false
	default:
		return a < b
	}
}
