// Config loading for the pantry CLI.
package cli

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/pantry/internal/paths"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys recognized in config.yaml.
	cfgKeyBackend   = "backend"
	cfgKeyFile      = "file"
	cfgKeyDataDir   = "data_dir"
	cfgKeyThreshold = "low_stock_threshold"
)

// resolveConfig merges flags, config.yaml, environment variables, and
// defaults into a validated Config. A missing config.yaml is not an error.
func resolveConfig() (types.Config, error) {
	configDir, err := paths.ResolveConfigDir(flags.configDir)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendJSONFile)
	v.SetDefault(cfgKeyThreshold, types.DefaultLowStockThreshold)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	file, err := paths.ResolveInventoryFile(flags.file, v.GetString(cfgKeyFile))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve inventory file: %w", err)
	}
	dataDir, err := paths.ResolveDataDir(flags.dataDir, v.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:   v.GetString(cfgKeyBackend),
		File:      file,
		DataDir:   dataDir,
		Threshold: v.GetInt(cfgKeyThreshold),
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
