package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

func TestConfigMerger_Merge(t *testing.T) {
	base := GetDefaultConfig()
	overlay := &entities.Config{
		Theme:   entities.ThemeConfig{Name: "light"},
		Watcher: entities.WatcherConfig{Enabled: true, DebounceMs: 50},
	}

	merged := NewConfigMerger().Merge(base, overlay)

	assert.Equal(t, "light", merged.Theme.Name)
	assert.True(t, merged.Watcher.Enabled)
	assert.Equal(t, 50, merged.Watcher.DebounceMs)
	// Untouched sections keep base values
	assert.Equal(t, "info", merged.Logging.Level)
}

func TestConfigMerger_Merge_NilOverlaysIgnored(t *testing.T) {
	base := GetDefaultConfig()
	merged := NewConfigMerger().Merge(base, nil, nil)

	assert.Equal(t, base.Theme.Name, merged.Theme.Name)
}

func TestConfigMerger_Merge_NoConfigs(t *testing.T) {
	t.Setenv("TERMDECK_THEME", "")
	merged := NewConfigMerger().Merge()
	assert.Empty(t, merged.Theme.Name)
}

func TestConfigMerger_Merge_DoesNotMutateInputs(t *testing.T) {
	base := GetDefaultConfig()
	base.Theme.Name = "mono"
	overlay := &entities.Config{Theme: entities.ThemeConfig{Name: "light"}}

	_ = NewConfigMerger().Merge(base, overlay)

	assert.Equal(t, "mono", base.Theme.Name)
}

func TestConfigMerger_ApplyFlags(t *testing.T) {
	cfg := GetDefaultConfig()

	result := NewConfigMerger().ApplyFlags(cfg, map[string]interface{}{
		"theme":      "warm",
		"theme-path": "/tmp/themes",
		"watch":      true,
		"verbose":    true,
	})

	assert.Equal(t, "warm", result.Theme.Name)
	assert.Equal(t, "/tmp/themes", result.Theme.CustomPath)
	assert.True(t, result.Watcher.Enabled)
	assert.True(t, result.Logging.Verbose)
}

func TestConfigMerger_ApplyFlags_EmptyValuesIgnored(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Theme.Name = "mono"

	result := NewConfigMerger().ApplyFlags(cfg, map[string]interface{}{
		"theme": "",
		"watch": false,
	})

	assert.Equal(t, "mono", result.Theme.Name, "an unset flag must not clear the configured theme")
	assert.False(t, result.Watcher.Enabled)
}
