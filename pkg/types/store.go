package types

import "errors"

// Store defines the interface for backend-agnostic inventory persistence.
// Callers attach to a backend, load and save the inventory, and detach
// when done.
type Store interface {
	// Attach connects the Store to the backend described by config.
	// Idempotent on first call; returns ErrAlreadyAttached if called
	// while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, Load and Save return ErrStoreDetached.
	Detach() error

	// Load reads the persisted inventory. It always returns a usable
	// (possibly empty) Inventory. A missing file yields an empty
	// inventory and an error wrapping fs.ErrNotExist, which callers
	// treat as informational. Malformed content yields an empty
	// inventory and an error; the file on disk is left untouched.
	Load() (*Inventory, error)

	// Save writes the inventory in full, overwriting previous state.
	// There is no atomicity guarantee: a failure mid-write may leave
	// the destination partially written.
	Save(inv *Inventory) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)
