package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates CLI configuration values.
type Config struct {
	Logging LoggingConfig
	Graph   GraphConfig
	Output  OutputConfig
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string // debug|info|warn|error
	Format string // console|json
}

// GraphConfig selects the network to load.
type GraphConfig struct {
	// File is a YAML network path; empty selects the built-in sample.
	File string
}

// OutputConfig controls console rendering.
type OutputConfig struct {
	NoColor bool
}

// Environment variable names.
const (
	EnvLogLevel  = "GRAPHKIT_LOG_LEVEL"
	EnvLogFormat = "GRAPHKIT_LOG_FORMAT"
	EnvGraphFile = "GRAPHKIT_GRAPH_FILE"
	EnvNoColor   = "GRAPHKIT_NO_COLOR"
)

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "console"
)

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Logging: LoggingConfig{
			Level:  strings.ToLower(valueOrDefault(EnvLogLevel, defaultLoggingLevel)),
			Format: strings.ToLower(valueOrDefault(EnvLogFormat, defaultLoggingFormat)),
		},
		Graph: GraphConfig{
			File: os.Getenv(EnvGraphFile),
		},
		Output: OutputConfig{
			NoColor: parseBoolWithDefault(EnvNoColor, false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated settings. Flag overrides call it again after
// they are applied.
func (c Config) Validate() error {
	if !oneOf(c.Logging.Level, validLevels) {
		return fmt.Errorf("invalid %s %q: want one of %s", EnvLogLevel, c.Logging.Level, strings.Join(validLevels, "|"))
	}
	if !oneOf(c.Logging.Format, validFormats) {
		return fmt.Errorf("invalid %s %q: want one of %s", EnvLogFormat, c.Logging.Format, strings.Join(validFormats, "|"))
	}
	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
