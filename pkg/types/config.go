package types

import "errors"

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend   string `json:"backend" yaml:"backend"`
	File      string `json:"file" yaml:"file"`
	DataDir   string `json:"data_dir" yaml:"data_dir"`
	Threshold int    `json:"low_stock_threshold" yaml:"low_stock_threshold"`
}

// Supported backend names.
const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
)

// Defaults applied when config.yaml and flags leave a field unset.
const (
	DefaultFileName          = "inventory.json"
	DefaultLowStockThreshold = 5
)

// Config validation errors.
var (
	ErrBackendEmpty     = errors.New("backend must not be empty")
	ErrBackendUnknown   = errors.New("unknown backend")
	ErrThresholdInvalid = errors.New("low stock threshold must not be negative")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSONFile: true,
	BackendSQLite:   true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Threshold < 0 {
		return ErrThresholdInvalid
	}
	return nil
}

// EffectiveThreshold returns the configured low-stock threshold, or the
// default when the field is zero (unset).
func (c Config) EffectiveThreshold() int {
	if c.Threshold == 0 {
		return DefaultLowStockThreshold
	}
	return c.Threshold
}
