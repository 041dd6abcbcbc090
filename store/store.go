package store

import "errors"

// ErrDatasetNotFound reports a dataset name absent from a store. Absence
// is recoverable: callers typically log it and move on, unlike read errors
// which signal a damaged file.
var ErrDatasetNotFound = errors.New("dataset not found")

// Store is one opened hierarchical record collection. Dataset names and
// group paths use '/' separators; the empty string names the root group.
type Store interface {
	// ReadDataset returns the raw payload of the named dataset. The error
	// wraps ErrDatasetNotFound when the store has no dataset by that name.
	ReadDataset(name string) ([]byte, error)

	// ListKeys returns the names of the children, groups and datasets
	// alike, directly under the named group, in sorted order.
	ListKeys(group string) ([]string, error)

	// Close releases the underlying resources.
	Close() error
}
