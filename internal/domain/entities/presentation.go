package entities

import (
	"errors"
	"fmt"
	"time"
)

// Presentation represents a complete slide deck together with the state of
// the running show: which slide is on screen and which theme colors it uses.
type Presentation struct {
	// ID is a unique identifier assigned when the deck is loaded
	ID string `yaml:"-" json:"id,omitempty"`

	// Title is the deck title shown at the top of every slide (optional)
	Title string `yaml:"title" json:"title"`

	// Theme names the color theme to render with
	Theme string `yaml:"theme" json:"theme"`

	// Author is the deck creator
	Author string `yaml:"author" json:"author"`

	// Date is when the deck was created/updated
	Date time.Time `yaml:"date" json:"date"`

	// Metadata contains any additional frontmatter fields
	Metadata map[string]interface{} `yaml:",inline" json:"metadata,omitempty"`

	// Slides contains all slides in presentation order
	Slides []Slide `yaml:"-" json:"slides"`

	// CurrentIndex is the 0-based index of the slide on screen.
	// Invariant: 0 <= CurrentIndex < len(Slides) for a valid deck.
	CurrentIndex int `yaml:"-" json:"current_index"`
}

// Validate ensures the presentation can be shown
func (p *Presentation) Validate() error {
	if len(p.Slides) == 0 {
		return errors.New("presentation must have at least one slide")
	}

	if p.CurrentIndex < 0 || p.CurrentIndex >= len(p.Slides) {
		return fmt.Errorf("current slide index %d out of range (0-%d)", p.CurrentIndex, len(p.Slides)-1)
	}

	for i := range p.Slides {
		if err := p.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d validation failed: %w", i+1, err)
		}
	}

	if p.Theme == "" {
		p.Theme = "dark"
	}

	return nil
}

// GetSlideByIndex returns a slide by its index (0-based)
func (p *Presentation) GetSlideByIndex(index int) (*Slide, error) {
	if index < 0 || index >= len(p.Slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", index, len(p.Slides)-1)
	}
	return &p.Slides[index], nil
}

// CurrentSlide returns the slide at the current index
func (p *Presentation) CurrentSlide() (*Slide, error) {
	return p.GetSlideByIndex(p.CurrentIndex)
}

// SlideCount returns the total number of slides
func (p *Presentation) SlideCount() int {
	return len(p.Slides)
}

// Advance moves to the next slide and reports whether the index changed.
// It never moves past the last slide.
func (p *Presentation) Advance() bool {
	if p.CurrentIndex >= len(p.Slides)-1 {
		return false
	}
	p.CurrentIndex++
	return true
}

// Rewind moves to the previous slide and reports whether the index changed.
// It never moves before the first slide.
func (p *Presentation) Rewind() bool {
	if p.CurrentIndex <= 0 {
		return false
	}
	p.CurrentIndex--
	return true
}

// First jumps to the first slide and reports whether the index changed
func (p *Presentation) First() bool {
	if p.CurrentIndex == 0 {
		return false
	}
	p.CurrentIndex = 0
	return true
}

// Last jumps to the final slide and reports whether the index changed
func (p *Presentation) Last() bool {
	last := len(p.Slides) - 1
	if last < 0 || p.CurrentIndex == last {
		return false
	}
	p.CurrentIndex = last
	return true
}
