// Store construction shared by pantry CLI commands.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mesh-intelligence/pantry/internal/jsonfile"
	"github.com/mesh-intelligence/pantry/internal/sqlite"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// attachStore resolves config, constructs the configured backend, and
// attaches it. The caller must defer store.Detach().
func attachStore() (types.Store, types.Config, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, types.Config{}, err
	}

	var store types.Store
	switch cfg.Backend {
	case types.BackendSQLite:
		store = sqlite.NewStore()
	default:
		store = jsonfile.NewStore()
	}

	if err := store.Attach(cfg); err != nil {
		return nil, cfg, fmt.Errorf("attach store: %w", err)
	}
	return store, cfg, nil
}

// storeLocation returns the durable location for diagnostics and
// confirmations: the inventory file for the jsonfile backend, the data
// directory for sqlite.
func storeLocation(cfg types.Config) string {
	if cfg.Backend == types.BackendSQLite {
		return filepath.Join(cfg.DataDir, "pantry.db")
	}
	return cfg.File
}
