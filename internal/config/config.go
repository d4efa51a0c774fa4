// Package config provides gridkit's configuration schema, TOML loading and
// live reload.
package config

import (
	"errors"
	"fmt"
)

// Config is the full gridkit configuration.
type Config struct {
	Grid      GridConfig      `toml:"grid"`
	History   HistoryConfig   `toml:"history"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Logging   LoggingConfig   `toml:"logging"`
}

// GridConfig configures the initial grid.
type GridConfig struct {
	// Rows is the initial row count.
	Rows int `toml:"rows"`
	// Cols is the initial column count.
	Cols int `toml:"cols"`
}

// HistoryConfig configures undo history.
type HistoryConfig struct {
	// MaxEntries bounds the snapshot stack.
	MaxEntries int `toml:"max_entries"`
}

// ClipboardConfig configures clipboard integration.
type ClipboardConfig struct {
	// System selects the platform clipboard; when false (or when the
	// platform has none) an in-memory clipboard is used.
	System bool `toml:"system"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `toml:"level"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Grid:      GridConfig{Rows: 8, Cols: 8},
		History:   HistoryConfig{MaxEntries: 50},
		Clipboard: ClipboardConfig{System: true},
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Validation errors.
var (
	ErrInvalidGridSize   = errors.New("grid size must be at least 1x1")
	ErrInvalidHistoryCap = errors.New("history max_entries must be positive")
	ErrInvalidLogLevel   = errors.New("unknown logging level")
)

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGridSize, c.Grid.Rows, c.Grid.Cols)
	}
	if c.History.MaxEntries < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidHistoryCap, c.History.MaxEntries)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}
	return nil
}
