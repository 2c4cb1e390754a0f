package config

import (
	"ctchen222/Tic-Tac-Toe-CLI/internal/validator"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Environment variables read by Load.
const (
	EnvLogLevel     = "TTT_LOG_LEVEL"
	EnvLogFile      = "TTT_LOG_FILE"
	EnvOTLPEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvThinkDelay   = "TTT_THINK_DELAY"
	EnvColor        = "TTT_COLOR"
	EnvClearScreen  = "TTT_CLEAR_SCREEN"
	EnvSelfPlay     = "TTT_SELF_PLAY"
)

// Config holds the runtime settings of the CLI.
type Config struct {
	LogLevel string `validate:"oneof=debug info warn error"`
	// LogFile is where logs go; stderr when empty.
	LogFile string
	// OTLPEndpoint is the collector's host:port; telemetry export is off when empty.
	OTLPEndpoint string        `validate:"omitempty,hostname_port"`
	ThinkDelay   time.Duration `validate:"min=0s,max=10s"`
	Color        bool
	ClearScreen  bool
	SelfPlay     bool
}

// Default returns the settings used when no environment overrides are set.
func Default() *Config {
	return &Config{
		LogLevel:    "warn",
		ThinkDelay:  time.Second,
		Color:       true,
		ClearScreen: true,
	}
}

// Load reads the configuration from the environment on top of Default.
func Load() (*Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogFile = os.Getenv(EnvLogFile)
	cfg.OTLPEndpoint = os.Getenv(EnvOTLPEndpoint)

	if v := os.Getenv(EnvThinkDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvThinkDelay, err)
		}
		cfg.ThinkDelay = d
	}

	flags := []struct {
		env string
		dst *bool
	}{
		{EnvColor, &cfg.Color},
		{EnvClearScreen, &cfg.ClearScreen},
		{EnvSelfPlay, &cfg.SelfPlay},
	}
	for _, f := range flags {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", f.env, err)
		}
		*f.dst = b
	}

	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SlogLevel converts LogLevel for the logger.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
