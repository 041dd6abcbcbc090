package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_ReadDataset(t *testing.T) {
	m := NewMemStore()
	m.Put("tfim_graph-1D-grid-pbc_size-4", []byte("(1.0) [X0]"))

	payload, err := m.ReadDataset("tfim_graph-1D-grid-pbc_size-4")
	require.NoError(t, err)
	assert.Equal(t, []byte("(1.0) [X0]"), payload)
}

func TestMemStore_ReadDataset_NotFound(t *testing.T) {
	m := NewMemStore()
	m.Put("present", []byte("x"))

	_, err := m.ReadDataset("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatasetNotFound)
}

func TestMemStore_PutOverwrites(t *testing.T) {
	m := NewMemStore()
	m.Put("ds", []byte("old"))
	m.Put("ds", []byte("new"))

	payload, err := m.ReadDataset("ds")
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), payload)
}

func TestMemStore_ListKeys(t *testing.T) {
	m := NewMemStore()
	m.Put("b_size-8", []byte("x"))
	m.Put("a_size-4", []byte("x"))
	m.Put("grp/inner_size-2", []byte("x"))
	m.Put("grp/deeper/leaf", []byte("x"))

	keys, err := m.ListKeys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"a_size-4", "b_size-8", "grp"}, keys)

	inner, err := m.ListKeys("grp")
	require.NoError(t, err)
	assert.Equal(t, []string{"deeper", "inner_size-2"}, inner)
}

func TestMemStore_ListKeys_UnknownGroup(t *testing.T) {
	m := NewMemStore()
	m.Put("present", []byte("x"))

	keys, err := m.ListKeys("nope")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMemStore_SlashTrimming(t *testing.T) {
	m := NewMemStore()
	m.Put("/grp/ds/", []byte("x"))

	payload, err := m.ReadDataset("grp/ds")
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), payload)
}
