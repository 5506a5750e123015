package ports

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// ThemeRegistry resolves theme names to color themes
type ThemeRegistry interface {
	// Get returns the theme with the given name
	Get(name string) (*entities.Theme, error)

	// List returns all available themes sorted by name
	List() []*entities.Theme
}
