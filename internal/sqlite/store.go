// Package sqlite implements the SQLite storage backend for Pantry.
// The inventory lives in a single items table inside pantry.db under the
// configured data directory. Unlike the JSON-file backend the database is
// durable across attaches; Save replaces the table contents in one
// transaction.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// dbFileName is the database file created under Config.DataDir.
const dbFileName = "pantry.db"

// Store implements types.Store backed by a SQLite database.
type Store struct {
	attached bool
	db       *sql.DB
}

// NewStore creates a new SQLite store. The store is not attached; call
// Attach with a Config to initialize.
func NewStore() *Store {
	return &Store{}
}

// Attach creates the data directory if needed, opens the database, and
// ensures the schema exists. Returns ErrAlreadyAttached if already
// attached.
func (s *Store) Attach(config types.Config) error {
	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(createItems); err != nil {
		db.Close()
		return fmt.Errorf("create schema: %w", err)
	}

	s.db = db
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (s *Store) Detach() error {
	if !s.attached {
		return nil
	}
	s.attached = false
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

// Load reads all items in insertion order. A query failure yields an
// empty inventory and the error, mirroring the JSON-file backend.
func (s *Store) Load() (*types.Inventory, error) {
	if !s.attached {
		return types.NewInventory(), types.ErrStoreDetached
	}

	rows, err := s.db.Query(`SELECT name, qty FROM items ORDER BY position`)
	if err != nil {
		return types.NewInventory(), fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	inv := types.NewInventory()
	for rows.Next() {
		var name string
		var qty int
		if err := rows.Scan(&name, &qty); err != nil {
			return types.NewInventory(), fmt.Errorf("scan item: %w", err)
		}
		if err := inv.Add(name, qty); err != nil {
			return types.NewInventory(), fmt.Errorf("item %q: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return types.NewInventory(), fmt.Errorf("iterate items: %w", err)
	}
	return inv, nil
}

// Save replaces the items table with the inventory contents in one
// transaction, reassigning positions in insertion order.
func (s *Store) Save(inv *types.Inventory) error {
	if !s.attached {
		return types.ErrStoreDetached
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear items: %w", err)
	}
	for _, item := range inv.Items() {
		if _, err := tx.Exec(`INSERT INTO items (name, qty) VALUES (?, ?)`, item.Name, item.Qty); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %q: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
