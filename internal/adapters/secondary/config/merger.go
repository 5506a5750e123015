package config

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// ConfigMerger implements the ConfigMerger interface
type ConfigMerger struct{}

// NewConfigMerger creates a new configuration merger
func NewConfigMerger() *ConfigMerger {
	return &ConfigMerger{}
}

// Merge merges multiple configurations with later configs taking precedence
func (m *ConfigMerger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])

	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration
func (m *ConfigMerger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if theme, ok := flags["theme"].(string); ok && theme != "" {
		result.Theme.Name = theme
	}

	if themePath, ok := flags["theme-path"].(string); ok && themePath != "" {
		result.Theme.CustomPath = themePath
	}

	if watch, ok := flags["watch"].(bool); ok && watch {
		result.Watcher.Enabled = true
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Verbose = true
	}

	return result
}

// mergeInto merges the overlay config into the base config in place
func (m *ConfigMerger) mergeInto(base, overlay *entities.Config) {
	if overlay.Theme.Name != "" {
		base.Theme.Name = overlay.Theme.Name
	}
	if overlay.Theme.CustomPath != "" {
		base.Theme.CustomPath = overlay.Theme.CustomPath
	}

	if overlay.Watcher.Enabled {
		base.Watcher.Enabled = true
	}
	if overlay.Watcher.DebounceMs > 0 {
		base.Watcher.DebounceMs = overlay.Watcher.DebounceMs
	}

	if overlay.Export.OutputPath != "" {
		base.Export.OutputPath = overlay.Export.OutputPath
	}
	if overlay.Export.IncludeNotes {
		base.Export.IncludeNotes = true
	}

	if overlay.Logging.Level != "" {
		base.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Verbose {
		base.Logging.Verbose = true
	}
}

// deepCopy creates a copy of a configuration
func deepCopy(config *entities.Config) *entities.Config {
	if config == nil {
		return GetDefaultConfig()
	}

	copied := *config
	return &copied
}

var _ ports.ConfigMerger = (*ConfigMerger)(nil)
