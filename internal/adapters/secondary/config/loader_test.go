package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTOMLLoader_LoadLocal(t *testing.T) {
	dir := t.TempDir()
	content := `
[theme]
name = "light"

[watcher]
enabled = true
debounce_ms = 100
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "termdeck.toml"), []byte(content), 0o600))

	loader := NewTOMLLoader()
	cfg, err := loader.LoadLocal(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "light", cfg.Theme.Name)
	assert.True(t, cfg.Watcher.Enabled)
	assert.Equal(t, 100, cfg.Watcher.DebounceMs)
}

func TestTOMLLoader_LoadLocal_MissingIsNil(t *testing.T) {
	loader := NewTOMLLoader()
	cfg, err := loader.LoadLocal(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestTOMLLoader_LoadLocal_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "termdeck.toml"), []byte("not = [toml"), 0o600))

	_, err := NewTOMLLoader().LoadLocal(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing TOML")
}

func TestTOMLLoader_LoadLocal_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	content := "[watcher]\ndebounce_ms = -1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "termdeck.toml"), []byte(content), 0o600))

	_, err := NewTOMLLoader().LoadLocal(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestTOMLLoader_CreateDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	loader := NewTOMLLoader()
	require.NoError(t, loader.CreateDefaults(context.Background(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[theme]")
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Empty(t, cfg.Theme.Name, "no default theme name, so deck frontmatter can choose")
	assert.False(t, cfg.Watcher.Enabled)
	assert.Equal(t, 250, cfg.Watcher.DebounceMs)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestGetDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TERMDECK_THEME", "mono")
	t.Setenv("TERMDECK_WATCH", "true")
	t.Setenv("TERMDECK_WATCH_DEBOUNCE", "75")

	cfg := GetDefaultConfig()

	assert.Equal(t, "mono", cfg.Theme.Name)
	assert.True(t, cfg.Watcher.Enabled)
	assert.Equal(t, 75, cfg.Watcher.DebounceMs)
}
