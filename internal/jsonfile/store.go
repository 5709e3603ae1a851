// Package jsonfile implements the JSON-file storage backend for Pantry.
// A single UTF-8 JSON object holds the whole inventory: keys are item
// names, values are positive integer quantities, key order is insertion
// order.
package jsonfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Store implements types.Store over a single JSON file.
type Store struct {
	attached bool
	path     string
}

// NewStore creates a new JSON-file store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach validates the config and resolves the inventory file path.
// The parent directory is created if needed; the file itself is not,
// since a missing file is the expected first-run state.
// Returns ErrAlreadyAttached if already attached.
func (s *Store) Attach(config types.Config) error {
	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	path := config.File
	if path == "" {
		path = types.DefaultFileName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create inventory directory: %w", err)
		}
	}

	s.path = path
	s.attached = true
	return nil
}

// Detach releases the store. Idempotent.
func (s *Store) Detach() error {
	s.attached = false
	return nil
}

// Path returns the resolved inventory file path. Empty until attached.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the inventory file. It always returns a usable
// inventory: a missing file yields an empty inventory and an error
// wrapping fs.ErrNotExist; malformed content yields an empty inventory
// and a decode error, leaving the file on disk untouched.
func (s *Store) Load() (*types.Inventory, error) {
	if !s.attached {
		return types.NewInventory(), types.ErrStoreDetached
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.NewInventory(), fmt.Errorf("inventory file %q: %w", s.path, err)
		}
		// Unreadable-but-existing files follow the malformed-content
		// path: empty inventory plus a diagnostic-grade error.
		return types.NewInventory(), fmt.Errorf("reading %q: %w", s.path, err)
	}

	inv, err := decodeInventory(data)
	if err != nil {
		return types.NewInventory(), fmt.Errorf("decoding %q: %w", s.path, err)
	}
	return inv, nil
}

// Save encodes the inventory with stable key order and 4-space indentation
// and overwrites the file in full. There is no temp-and-rename step: a
// failure mid-write may leave the file partially written.
func (s *Store) Save(inv *types.Inventory) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	data, err := encodeInventory(inv)
	if err != nil {
		return fmt.Errorf("encoding inventory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", s.path, err)
	}
	return nil
}
