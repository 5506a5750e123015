package ports

import (
	"context"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// ConfigLoader loads configuration from the filesystem
type ConfigLoader interface {
	// LoadGlobal loads the user-wide configuration, creating defaults on
	// first run
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal loads the per-directory configuration; a nil config with a
	// nil error means no local file exists
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)
}

// ConfigMerger combines configurations from multiple sources
type ConfigMerger interface {
	// Merge merges configurations with later ones taking precedence
	Merge(configs ...*entities.Config) *entities.Config

	// ApplyFlags applies CLI flag overrides to a configuration
	ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config
}
