package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", File: "inventory.json"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", File: "inventory.json"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "negative threshold returns ErrThresholdInvalid",
			config:  Config{Backend: BackendJSONFile, Threshold: -1},
			wantErr: ErrThresholdInvalid,
		},
		{
			name:    "valid jsonfile config",
			config:  Config{Backend: BackendJSONFile, File: "inventory.json"},
			wantErr: nil,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: BackendSQLite, DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "jsonfile with empty File is valid at config level",
			config:  Config{Backend: BackendJSONFile},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigEffectiveThreshold(t *testing.T) {
	tests := []struct {
		name      string
		threshold int
		want      int
	}{
		{name: "zero falls back to default", threshold: 0, want: DefaultLowStockThreshold},
		{name: "explicit value wins", threshold: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Backend: BackendJSONFile, Threshold: tt.threshold}
			if got := cfg.EffectiveThreshold(); got != tt.want {
				t.Fatalf("EffectiveThreshold() = %d, want %d", got, tt.want)
			}
		})
	}
}
