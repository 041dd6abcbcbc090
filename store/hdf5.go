package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/batchatco/go-native-netcdf/netcdf"
	"github.com/batchatco/go-native-netcdf/netcdf/api"
)

// HDF5Store reads HamLib HDF5 files through a pure Go NetCDF4/HDF5 reader.
// HamLib stores each Hamiltonian as a scalar string dataset keyed by
// instance name, optionally nested under subgroups.
type HDF5Store struct {
	path string
	root api.Group
}

var _ Store = (*HDF5Store)(nil)

// Open opens an HDF5 or NetCDF file for reading.
func Open(path string) (*HDF5Store, error) {
	root, err := netcdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return &HDF5Store{path: path, root: root}, nil
}

// Close releases the underlying file handle. Subgroup handles share it and
// must not outlive the store.
func (s *HDF5Store) Close() error {
	s.root.Close()
	return nil
}

// ReadDataset returns the raw payload of the dataset at a '/'-separated
// path. Presence is checked against the group listing first, so a missing
// dataset is reported as ErrDatasetNotFound rather than a read failure.
func (s *HDF5Store) ReadDataset(name string) ([]byte, error) {
	group, leaf, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	if !containsName(group.ListVariables(), leaf) {
		return nil, fmt.Errorf("%w: %s in %s", ErrDatasetNotFound, name, s.path)
	}
	vr, err := group.GetVariable(leaf)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s from %s: %w", name, s.path, err)
	}
	return payloadBytes(name, vr.Values)
}

// ListKeys returns the subgroup and dataset names directly under a
// '/'-separated group path, sorted. The empty string names the root.
func (s *HDF5Store) ListKeys(group string) ([]string, error) {
	g, err := s.groupAt(group)
	if err != nil {
		return nil, err
	}
	keys := append(g.ListSubgroups(), g.ListVariables()...)
	sort.Strings(keys)
	return keys, nil
}

// resolve splits a dataset path into its parent group and leaf name.
func (s *HDF5Store) resolve(name string) (api.Group, string, error) {
	trimmed := strings.Trim(name, "/")
	i := strings.LastIndex(trimmed, "/")
	if i < 0 {
		return s.root, trimmed, nil
	}
	g, err := s.groupAt(trimmed[:i])
	if err != nil {
		return nil, "", err
	}
	return g, trimmed[i+1:], nil
}

// groupAt walks '/'-separated segments down from the root.
func (s *HDF5Store) groupAt(path string) (api.Group, error) {
	g := s.root
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		if segment == "" {
			continue
		}
		sub, err := g.GetGroup(segment)
		if err != nil {
			return nil, fmt.Errorf("group %q in %s: %w", path, s.path, err)
		}
		g = sub
	}
	return g, nil
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}

// payloadBytes coerces the reader's value representation into raw bytes.
// HamLib Hamiltonians are scalar strings; some files carry byte arrays.
func payloadBytes(name string, values interface{}) ([]byte, error) {
	switch v := values.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case []int8:
		out := make([]byte, len(v))
		for i, b := range v {
			out[i] = byte(b)
		}
		return out, nil
	case []string:
		return []byte(strings.Join(v, "\n")), nil
	default:
		return nil, fmt.Errorf("dataset %s: unsupported payload type %T", name, values)
	}
}
