package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

const localConfigName = "termdeck.toml"

// TOMLLoader reads configuration from TOML files. The global file lives under
// the user's config directory (XDG_CONFIG_HOME aware) and is created with
// defaults on first run; a local termdeck.toml next to the deck is optional.
type TOMLLoader struct {
	globalPath string
}

// NewTOMLLoader creates a new TOML configuration loader
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{globalPath: globalConfigPath()}
}

// globalConfigPath resolves the user-wide config file location
func globalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "termdeck", "config.toml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "termdeck", "config.toml")
}

// LoadGlobal loads the user-wide configuration, writing defaults first if no
// file exists yet
func (l *TOMLLoader) LoadGlobal(ctx context.Context) (*entities.Config, error) {
	if _, err := os.Stat(l.globalPath); os.IsNotExist(err) {
		if err := l.CreateDefaults(ctx, l.globalPath); err != nil {
			return nil, fmt.Errorf("creating defaults: %w", err)
		}
	}
	return l.load(l.globalPath)
}

// LoadLocal loads the per-directory configuration. A missing file is not an
// error; it returns nil so the merger can skip it.
func (l *TOMLLoader) LoadLocal(ctx context.Context, dir string) (*entities.Config, error) {
	path := filepath.Join(dir, localConfigName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return l.load(path)
}

// CreateDefaults writes the default configuration to the given path
func (l *TOMLLoader) CreateDefaults(ctx context.Context, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304 - path is controlled (global config path)
	if err != nil {
		return fmt.Errorf("creating config file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	encoder := toml.NewEncoder(file)
	encoder.Indent = "  "
	if err := encoder.Encode(GetDefaultConfig()); err != nil {
		return fmt.Errorf("encoding config to %s: %w", path, err)
	}
	return nil
}

func (l *TOMLLoader) load(path string) (*entities.Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is from controlled sources (global/local config)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg entities.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing TOML from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %s: %w", path, err)
	}
	return &cfg, nil
}

var _ ports.ConfigLoader = (*TOMLLoader)(nil)
