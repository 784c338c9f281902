package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultPort             = 8080
	DefaultHost             = "127.0.0.1"
	DefaultLogLevel         = "info"
	DefaultMaxFileSize      = 10 * 1024 * 1024 // 10MB
	DefaultTimeoutMs        = 20000
	DefaultScannedThreshold = 30
)

// Config holds all configuration for the document extraction service.
type Config struct {
	// Server configuration
	Mode string // "server" or "stdio"
	Host string
	Port int

	// Extraction configuration
	MaxFileSize      int64 // maximum upload size in bytes
	TimeoutMs        int   // per-decode-attempt budget
	EnableFallback   bool  // run the page-by-page decoder after a recoverable failure
	ScannedThreshold int   // minimum cleaned characters before a PDF counts as scanned

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:             ModeStdio,
		Host:             DefaultHost,
		Port:             DefaultPort,
		MaxFileSize:      DefaultMaxFileSize,
		TimeoutMs:        DefaultTimeoutMs,
		EnableFallback:   true,
		ScannedThreshold: DefaultScannedThreshold,
		Version:          "1.0.0",
		ServerName:       "extractd",
		LogLevel:         DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("EXTRACTD")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
	viper.SetDefault("timeoutms", cfg.TimeoutMs)
	viper.SetDefault("enablefallback", cfg.EnableFallback)
	viper.SetDefault("scannedthreshold", cfg.ScannedThreshold)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Server mode: 'stdio' for MCP standard I/O, 'server' for HTTP server")
	pflag.String("host", cfg.Host, "Server host address (server mode only)")
	pflag.Int("port", cfg.Port, "Server port (server mode only)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum upload size in bytes")
	pflag.Int("timeoutms", cfg.TimeoutMs, "Per-attempt decode budget in milliseconds")
	pflag.Bool("enablefallback", cfg.EnableFallback, "Try the page-by-page PDF decoder after a recoverable failure")
	pflag.Int("scannedthreshold", cfg.ScannedThreshold, "Minimum extracted characters before a PDF is treated as scanned")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
	_ = viper.BindPFlag("timeoutms", pflag.Lookup("timeoutms"))
	_ = viper.BindPFlag("enablefallback", pflag.Lookup("enablefallback"))
	_ = viper.BindPFlag("scannedthreshold", pflag.Lookup("scannedthreshold"))
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nextractd - Document text extraction service for resume and job-description uploads\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_MODE              Server mode\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_HOST              Server host\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_PORT              Server port\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_LOGLEVEL          Log level\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_MAXFILESIZE       Maximum upload size\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_TIMEOUTMS         Per-attempt decode budget\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_ENABLEFALLBACK    Fallback decoder toggle\n")
		fmt.Fprintf(os.Stderr, "  EXTRACTD_SCANNEDTHRESHOLD  Scanned-PDF character threshold\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
	cfg.TimeoutMs = viper.GetInt("timeoutms")
	cfg.EnableFallback = viper.GetBool("enablefallback")
	cfg.ScannedThreshold = viper.GetInt("scannedthreshold")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be either 'stdio' or 'server'")
	}

	if c.Mode == ModeServer && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	if c.TimeoutMs <= 0 {
		return errors.New("decode budget must be positive")
	}

	if c.ScannedThreshold < 0 {
		return errors.New("scanned-text threshold cannot be negative")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// Timeout returns the per-attempt decode budget as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Address returns the server address as host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsServerMode returns true if the server is running in HTTP server mode.
func (c *Config) IsServerMode() bool {
	return c.Mode == ModeServer
}

// IsStdioMode returns true if the server is running in stdio mode.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, MaxFileSize: %d, TimeoutMs: %d, EnableFallback: %t, ScannedThreshold: %d, LogLevel: %s}",
		c.Mode, c.MaxFileSize, c.TimeoutMs, c.EnableFallback, c.ScannedThreshold, c.LogLevel)
}
