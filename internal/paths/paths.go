// Package paths resolves configuration, data, and inventory-file locations.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".pantry"
	DefaultDataDirName   = ".pantry-db"
)

// Environment variable names for location overrides.
const (
	EnvConfigDir     = "PANTRY_CONFIG_DIR"
	EnvDataDir       = "PANTRY_DATA_DIR"
	EnvInventoryFile = "PANTRY_INVENTORY_FILE"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > PANTRY_CONFIG_DIR env > $(CWD)/.pantry.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the sqlite data directory following the
// precedence chain: flag > config.yaml value > PANTRY_DATA_DIR env >
// $(CWD)/.pantry-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}

// ResolveInventoryFile returns the JSON inventory file path following the
// precedence chain: flag > config.yaml value > PANTRY_INVENTORY_FILE env >
// "inventory.json" in the current directory. The CWD-relative default is
// deliberate: the inventory travels with wherever the tool is run.
func ResolveInventoryFile(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvInventoryFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, "inventory.json"), nil
}
