package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeStdio {
		t.Errorf("Mode = %v, want %v", cfg.Mode, ModeStdio)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %v, want %v", cfg.MaxFileSize, DefaultMaxFileSize)
	}
	if cfg.TimeoutMs != 20000 {
		t.Errorf("TimeoutMs = %v, want 20000", cfg.TimeoutMs)
	}
	if !cfg.EnableFallback {
		t.Errorf("EnableFallback should default to true")
	}
	if cfg.ScannedThreshold != 30 {
		t.Errorf("ScannedThreshold = %v, want 30", cfg.ScannedThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutMs = 1500

	if got := cfg.Timeout(); got != 1500*time.Millisecond {
		t.Errorf("Timeout() = %v, want 1.5s", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid mode",
			mutate:  func(c *Config) { c.Mode = "daemon" },
			wantErr: true,
		},
		{
			name:    "server mode with bad port",
			mutate:  func(c *Config) { c.Mode = ModeServer; c.Port = 0 },
			wantErr: true,
		},
		{
			name:   "stdio mode ignores port",
			mutate: func(c *Config) { c.Port = 0 },
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "zero timeout",
			mutate:  func(c *Config) { c.TimeoutMs = 0 },
			wantErr: true,
		},
		{
			name:    "negative scanned threshold",
			mutate:  func(c *Config) { c.ScannedThreshold = -1 },
			wantErr: true,
		},
		{
			name:   "zero scanned threshold allowed",
			mutate: func(c *Config) { c.ScannedThreshold = 0 },
		},
		{
			name:    "bogus log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfig_Address(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Host = "0.0.0.0"
	cfg.Port = 9090

	if got := cfg.Address(); got != "0.0.0.0:9090" {
		t.Errorf("Address() = %v, want 0.0.0.0:9090", got)
	}
}
