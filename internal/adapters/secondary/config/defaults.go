package config

import (
	"os"
	"strconv"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment overrides
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Theme: entities.ThemeConfig{
			// No default name: an empty name lets the deck's frontmatter
			// pick the theme, with "dark" as the registry's last resort
			Name:       getEnvOrDefault("TERMDECK_THEME", ""),
			CustomPath: getEnvOrDefault("TERMDECK_THEME_PATH", ""),
		},
		Watcher: entities.WatcherConfig{
			Enabled:    getEnvBoolOrDefault("TERMDECK_WATCH", false),
			DebounceMs: getEnvIntOrDefault("TERMDECK_WATCH_DEBOUNCE", 250),
		},
		Export: entities.ExportConfig{
			OutputPath:   "",
			IncludeNotes: false,
		},
		Logging: entities.LoggingConfig{
			Level:   getEnvOrDefault("TERMDECK_LOG_LEVEL", "info"),
			Verbose: getEnvBoolOrDefault("TERMDECK_LOG_VERBOSE", false),
		},
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns the environment variable as int or a default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns the environment variable as bool or a default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
