package jsonfile

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// newAttachedStore attaches a store to a fresh inventory file path inside
// a temp directory.
func newAttachedStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	s := NewStore()
	cfg := types.Config{Backend: types.BackendJSONFile, File: path}
	require.NoError(t, s.Attach(cfg))
	t.Cleanup(func() { _ = s.Detach() })
	return s, path
}

func TestStoreRoundTrip(t *testing.T) {
	s, _ := newAttachedStore(t)

	inv := types.NewInventory()
	require.NoError(t, inv.Add("apple", 10))
	require.NoError(t, inv.Add("banana", 15))
	require.NoError(t, inv.Add("cherry", 3))

	require.NoError(t, s.Save(inv))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.True(t, inv.Equal(loaded), "loaded inventory differs: %v vs %v", inv.Items(), loaded.Items())
}

func TestStoreSavePreservesInsertionOrder(t *testing.T) {
	s, path := newAttachedStore(t)

	inv := types.NewInventory()
	require.NoError(t, inv.Add("zucchini", 9))
	require.NoError(t, inv.Add("apple", 2))
	require.NoError(t, inv.Add("melon", 6))

	require.NoError(t, s.Save(inv))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Keys appear in insertion order, not sorted.
	zi := indexOf(t, data, `"zucchini"`)
	ai := indexOf(t, data, `"apple"`)
	mi := indexOf(t, data, `"melon"`)
	assert.Less(t, zi, ai)
	assert.Less(t, ai, mi)
}

func TestStoreSaveIndentsOutput(t *testing.T) {
	s, path := newAttachedStore(t)

	inv := types.NewInventory()
	require.NoError(t, inv.Add("apple", 10))
	require.NoError(t, s.Save(inv))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"apple\": 10\n}", string(data))
}

func TestStoreLoadMissingFile(t *testing.T) {
	s, _ := newAttachedStore(t)

	inv, err := s.Load()
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Len())
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStoreLoadMalformedFile(t *testing.T) {
	s, path := newAttachedStore(t)

	corrupt := []byte("{not valid json")
	require.NoError(t, os.WriteFile(path, corrupt, 0o644))

	inv, err := s.Load()
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.Len())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, fs.ErrNotExist)

	// The corrupted file is left untouched on disk.
	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, corrupt, after)
}

func TestStoreLoadRejectsNonObject(t *testing.T) {
	s, path := newAttachedStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0o644))

	inv, err := s.Load()
	assert.Equal(t, 0, inv.Len())
	assert.ErrorIs(t, err, errNotObject)
}

func TestStoreLoadRejectsBadQuantities(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero quantity", content: `{"apple": 0}`},
		{name: "negative quantity", content: `{"apple": -3}`},
		{name: "fractional quantity", content: `{"apple": 2.5}`},
		{name: "string quantity", content: `{"apple": "ten"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, path := newAttachedStore(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			inv, err := s.Load()
			assert.Equal(t, 0, inv.Len())
			assert.Error(t, err)
		})
	}
}

func TestStoreLoadEmptyObject(t *testing.T) {
	s, path := newAttachedStore(t)
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o644))

	inv, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 0, inv.Len())
}

func TestStoreSaveOverwritesPreviousState(t *testing.T) {
	s, _ := newAttachedStore(t)

	first := types.NewInventory()
	require.NoError(t, first.Add("apple", 10))
	require.NoError(t, first.Add("banana", 5))
	require.NoError(t, s.Save(first))

	second := types.NewInventory()
	require.NoError(t, second.Add("cherry", 1))
	require.NoError(t, s.Save(second))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
	assert.Equal(t, 1, loaded.Qty("cherry"))
	assert.False(t, loaded.Has("apple"))
}

func TestStoreLifecycle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	cfg := types.Config{Backend: types.BackendJSONFile, File: path}

	s := NewStore()
	require.NoError(t, s.Attach(cfg))
	assert.ErrorIs(t, s.Attach(cfg), types.ErrAlreadyAttached)

	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach(), "Detach must be idempotent")

	_, err := s.Load()
	assert.ErrorIs(t, err, types.ErrStoreDetached)
	assert.ErrorIs(t, s.Save(types.NewInventory()), types.ErrStoreDetached)
}

func TestStoreAttachRejectsBadConfig(t *testing.T) {
	s := NewStore()
	err := s.Attach(types.Config{Backend: "postgres"})
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
}

func TestStoreAttachCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "inventory.json")
	s := NewStore()
	cfg := types.Config{Backend: types.BackendJSONFile, File: path}
	require.NoError(t, s.Attach(cfg))
	defer s.Detach()

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func indexOf(t *testing.T, data []byte, sub string) int {
	t.Helper()
	idx := bytes.Index(data, []byte(sub))
	require.GreaterOrEqual(t, idx, 0, "expected %q in %q", sub, data)
	return idx
}
