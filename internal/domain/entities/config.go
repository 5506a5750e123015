package entities

import (
	"fmt"
)

// LogLevel represents the logging verbosity level
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config is the root configuration for termdeck
type Config struct {
	Theme   ThemeConfig   `toml:"theme"`
	Watcher WatcherConfig `toml:"watcher"`
	Export  ExportConfig  `toml:"export"`
	Logging LoggingConfig `toml:"logging"`
}

// ThemeConfig selects the color theme
type ThemeConfig struct {
	// Name of the theme to render with (built-in or custom)
	Name string `toml:"name"`

	// CustomPath is a directory of TOML theme files searched before built-ins
	CustomPath string `toml:"custom_path"`
}

// WatcherConfig controls deck file watching
type WatcherConfig struct {
	// Enabled turns watch mode on without the --watch flag
	Enabled bool `toml:"enabled"`

	// DebounceMs is the quiet period after a change before reloading
	DebounceMs int `toml:"debounce_ms"`
}

// ExportConfig holds defaults for the export command
type ExportConfig struct {
	// OutputPath is the default HTML output file
	OutputPath string `toml:"output_path"`

	// IncludeNotes embeds speaker notes in exported HTML
	IncludeNotes bool `toml:"include_notes"`
}

// LoggingConfig controls diagnostic output
type LoggingConfig struct {
	Level   string `toml:"level"`
	Verbose bool   `toml:"verbose"`
}

// Validate ensures the configuration is usable. An empty theme name is
// valid: it means the deck frontmatter (or the built-in default) chooses.
func (c *Config) Validate() error {
	if c.Watcher.DebounceMs < 0 {
		return fmt.Errorf("watcher debounce must be non-negative, got %d", c.Watcher.DebounceMs)
	}
	if c.Watcher.DebounceMs == 0 {
		c.Watcher.DebounceMs = 250
	}

	switch LogLevel(c.Logging.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	case "":
		c.Logging.Level = string(LogLevelInfo)
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

// GetLogLevel returns the configured log level
func (c *Config) GetLogLevel() LogLevel {
	switch LogLevel(c.Logging.Level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return LogLevel(c.Logging.Level)
	default:
		return LogLevelInfo
	}
}
