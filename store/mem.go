package store

import (
	"fmt"
	"sort"
	"strings"
)

// MemStore is an in-memory Store keyed by '/'-separated dataset paths. It
// backs tests and embedded catalogs without touching the filesystem.
type MemStore struct {
	datasets map[string][]byte
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{datasets: make(map[string][]byte)}
}

// Put stores a dataset payload under a '/'-separated path, replacing any
// previous payload at that path.
func (m *MemStore) Put(name string, payload []byte) {
	m.datasets[strings.Trim(name, "/")] = payload
}

// ReadDataset returns the payload stored at name.
func (m *MemStore) ReadDataset(name string) ([]byte, error) {
	payload, ok := m.datasets[strings.Trim(name, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return payload, nil
}

// ListKeys returns the immediate children under a group path, sorted. A
// group with no entries yields an empty list, not an error.
func (m *MemStore) ListKeys(group string) ([]string, error) {
	prefix := strings.Trim(group, "/")
	if prefix != "" {
		prefix += "/"
	}

	seen := make(map[string]struct{})
	for name := range m.datasets {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		child := strings.TrimPrefix(name, prefix)
		if i := strings.Index(child, "/"); i >= 0 {
			child = child[:i]
		}
		seen[child] = struct{}{}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close is a no-op for in-memory stores.
func (m *MemStore) Close() error {
	return nil
}
