package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newAttachedStore(t *testing.T) (*Store, string) {
	t.Helper()
	dataDir := t.TempDir()
	s := NewStore()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}
	require.NoError(t, s.Attach(cfg))
	t.Cleanup(func() { _ = s.Detach() })
	return s, dataDir
}

func TestStoreAttachCreatesDatabase(t *testing.T) {
	_, dataDir := newAttachedStore(t)

	_, err := os.Stat(filepath.Join(dataDir, dbFileName))
	require.NoError(t, err)
}

func TestStoreLoadEmptyDatabase(t *testing.T) {
	s, _ := newAttachedStore(t)

	inv, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Len())
}

func TestStoreRoundTripPreservesOrder(t *testing.T) {
	s, _ := newAttachedStore(t)

	inv := types.NewInventory()
	require.NoError(t, inv.Add("zucchini", 9))
	require.NoError(t, inv.Add("apple", 2))
	require.NoError(t, inv.Add("melon", 6))
	require.NoError(t, s.Save(inv))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.True(t, inv.Equal(loaded), "loaded inventory differs: %v vs %v", inv.Items(), loaded.Items())
}

func TestStoreSaveReplacesPreviousState(t *testing.T) {
	s, _ := newAttachedStore(t)

	first := types.NewInventory()
	require.NoError(t, first.Add("apple", 10))
	require.NoError(t, s.Save(first))

	second := types.NewInventory()
	require.NoError(t, second.Add("banana", 4))
	require.NoError(t, s.Save(second))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	assert.False(t, loaded.Has("apple"))
	assert.Equal(t, 4, loaded.Qty("banana"))
}

func TestStorePersistsAcrossAttaches(t *testing.T) {
	dataDir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dataDir}

	s := NewStore()
	require.NoError(t, s.Attach(cfg))
	inv := types.NewInventory()
	require.NoError(t, inv.Add("apple", 7))
	require.NoError(t, s.Save(inv))
	require.NoError(t, s.Detach())

	s2 := NewStore()
	require.NoError(t, s2.Attach(cfg))
	defer s2.Detach()

	loaded, err := s2.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Qty("apple"))
}

func TestStoreLifecycle(t *testing.T) {
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	s := NewStore()
	require.NoError(t, s.Attach(cfg))
	assert.ErrorIs(t, s.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "Detach must be idempotent")

	_, err := s.Load()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.Save(types.NewInventory()), types.ErrStoreDetached)
}
