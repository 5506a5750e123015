package parser

import (
	"fmt"
	"time"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// PresentationParserAdapter adapts the MarkdownParser to the
// PresentationParser interface
type PresentationParserAdapter struct {
	markdownParser ports.MarkdownParser
}

// NewPresentationParserAdapter creates a new presentation parser adapter
func NewPresentationParserAdapter(markdownParser ports.MarkdownParser) *PresentationParserAdapter {
	return &PresentationParserAdapter{
		markdownParser: markdownParser,
	}
}

// Parse implements the PresentationParser interface
func (p *PresentationParserAdapter) Parse(content []byte) (*entities.Presentation, error) {
	parsed, err := p.markdownParser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing deck: %w", err)
	}

	presentation := &entities.Presentation{
		Metadata: parsed.Frontmatter,
		Slides:   make([]entities.Slide, 0, len(parsed.Slides)),
	}

	// Extract metadata
	if title, ok := getStringFromMap(parsed.Frontmatter, "title"); ok {
		presentation.Title = title
	}
	if author, ok := getStringFromMap(parsed.Frontmatter, "author"); ok {
		presentation.Author = author
	}
	if theme, ok := getStringFromMap(parsed.Frontmatter, "theme"); ok {
		presentation.Theme = theme
	}
	// YAML decodes an unquoted date into a time.Time already; a quoted one
	// arrives as a string and is parsed here. Anything else keeps today.
	switch v := parsed.Frontmatter["date"].(type) {
	case time.Time:
		presentation.Date = v
	case string:
		if date, err := time.Parse("2006-01-02", v); err == nil {
			presentation.Date = date
		}
	}

	if presentation.Date.IsZero() {
		presentation.Date = time.Now()
	}

	for _, rawSlide := range parsed.Slides {
		slide := entities.Slide{
			Index:   rawSlide.Index,
			Content: rawSlide.Content,
			Notes:   rawSlide.Notes,
		}
		slide.Title = slide.ExtractTitle()

		presentation.Slides = append(presentation.Slides, slide)
	}

	if err := presentation.Validate(); err != nil {
		return nil, fmt.Errorf("invalid presentation: %w", err)
	}

	return presentation, nil
}

// getStringFromMap safely extracts a string value from a map
func getStringFromMap(m map[string]interface{}, key string) (string, bool) {
	if m == nil {
		return "", false
	}

	val, exists := m[key]
	if !exists {
		return "", false
	}

	str, ok := val.(string)
	return str, ok
}

var _ ports.PresentationParser = (*PresentationParserAdapter)(nil)
