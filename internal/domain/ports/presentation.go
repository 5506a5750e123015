package ports

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// PresentationParser builds a presentation entity from raw deck bytes
type PresentationParser interface {
	Parse(content []byte) (*entities.Presentation, error)
}
