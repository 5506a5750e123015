package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// PresentationService implements the business logic for loading and showing
// presentations
type PresentationService struct {
	parser ports.PresentationParser
	themes ports.ThemeRegistry
}

// NewPresentationService creates a new presentation service instance
func NewPresentationService(parser ports.PresentationParser, themes ports.ThemeRegistry) *PresentationService {
	return &PresentationService{
		parser: parser,
		themes: themes,
	}
}

// LoadPresentation loads a presentation from a file path
func (s *PresentationService) LoadPresentation(ctx context.Context, path string) (*entities.Presentation, error) {
	if path == "" {
		return nil, errors.New("presentation path cannot be empty")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("presentation file not found: %s", path)
		}
		return nil, fmt.Errorf("checking presentation file: %w", err)
	}

	content, err := os.ReadFile(path) // #nosec G304 - path comes from the user's own CLI argument
	if err != nil {
		return nil, fmt.Errorf("reading presentation: %w", err)
	}

	return s.ParsePresentation(ctx, content)
}

// ParsePresentation parses raw deck content into a presentation
func (s *PresentationService) ParsePresentation(ctx context.Context, content []byte) (*entities.Presentation, error) {
	if len(content) == 0 {
		return nil, errors.New("presentation content cannot be empty")
	}

	presentation, err := s.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing presentation: %w", err)
	}

	presentation.ID = uuid.NewString()

	// Set slide titles and indices
	for i := range presentation.Slides {
		presentation.Slides[i].Index = i
		presentation.Slides[i].Title = presentation.Slides[i].ExtractTitle()
	}

	if err := presentation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid presentation: %w", err)
	}

	return presentation, nil
}

// ResolveTheme returns the theme the presentation should render with. An
// explicit override wins over the deck's frontmatter theme.
func (s *PresentationService) ResolveTheme(presentation *entities.Presentation, override string) (*entities.Theme, error) {
	if presentation == nil {
		return nil, errors.New("presentation cannot be nil")
	}

	name := presentation.Theme
	if override != "" {
		name = override
	}

	theme, err := s.themes.Get(name)
	if err != nil {
		return nil, fmt.Errorf("resolving theme %q: %w", name, err)
	}

	return theme, nil
}
