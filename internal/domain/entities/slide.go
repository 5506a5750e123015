package entities

import (
	"errors"
	"strconv"
	"strings"
)

// Slide represents a single slide in a presentation
type Slide struct {
	// Index is the slide position in the presentation (0-based)
	Index int `json:"index"`

	// Title is extracted from the first H1 heading or generated
	Title string `json:"title"`

	// Content is the raw text of the slide, headings marked with leading '#'
	Content string `json:"content"`

	// Notes contains speaker notes for this slide
	Notes string `json:"notes,omitempty"`

	// Metadata contains slide-specific frontmatter (if any)
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Validate ensures the slide has valid content
func (s *Slide) Validate() error {
	if strings.TrimSpace(s.Content) == "" {
		return errors.New("slide content cannot be empty")
	}

	if s.Index < 0 {
		return errors.New("slide index must be non-negative")
	}

	return nil
}

// ExtractTitle attempts to extract the slide title from content
func (s *Slide) ExtractTitle() string {
	lines := strings.Split(s.Content, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimPrefix(trimmed, "# ")
		}
	}

	// If no H1 found, generate a title
	return "Slide " + strconv.Itoa(s.Index+1)
}

// HasNotes returns true if the slide has speaker notes
func (s *Slide) HasNotes() bool {
	return strings.TrimSpace(s.Notes) != ""
}

// Lines returns the slide content split into individual lines
func (s *Slide) Lines() []string {
	return strings.Split(s.Content, "\n")
}
