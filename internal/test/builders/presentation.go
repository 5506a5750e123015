package builders

import (
	"fmt"
	"time"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// PresentationBuilder helps build Presentation entities for testing
type PresentationBuilder struct {
	presentation *entities.Presentation
}

// NewPresentationBuilder creates a new presentation builder with sensible defaults
func NewPresentationBuilder() *PresentationBuilder {
	return &PresentationBuilder{
		presentation: &entities.Presentation{
			ID:       "test-deck",
			Title:    "Test Presentation",
			Author:   "Test Author",
			Date:     time.Now(),
			Theme:    "dark",
			Slides:   []entities.Slide{},
			Metadata: make(map[string]interface{}),
		},
	}
}

// WithTitle sets the presentation title
func (b *PresentationBuilder) WithTitle(title string) *PresentationBuilder {
	b.presentation.Title = title
	return b
}

// WithTheme sets the presentation theme name
func (b *PresentationBuilder) WithTheme(theme string) *PresentationBuilder {
	b.presentation.Theme = theme
	return b
}

// WithCurrentIndex sets the slide currently on screen
func (b *PresentationBuilder) WithCurrentIndex(index int) *PresentationBuilder {
	b.presentation.CurrentIndex = index
	return b
}

// WithSlide adds a single slide with the given content
func (b *PresentationBuilder) WithSlide(content string) *PresentationBuilder {
	index := len(b.presentation.Slides)
	slide := entities.Slide{
		Index:   index,
		Content: content,
	}
	slide.Title = slide.ExtractTitle()
	b.presentation.Slides = append(b.presentation.Slides, slide)
	return b
}

// WithSlideCount adds the specified number of generated slides
func (b *PresentationBuilder) WithSlideCount(count int) *PresentationBuilder {
	for i := 0; i < count; i++ {
		b.WithSlide(fmt.Sprintf("# Slide %d\n\nContent %d", i+1, i+1))
	}
	return b
}

// Build returns the constructed presentation
func (b *PresentationBuilder) Build() *entities.Presentation {
	return b.presentation
}
