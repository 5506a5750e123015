package ports

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// SlideRenderer draws presentation frames onto a terminal sink
type SlideRenderer interface {
	// RenderSlide paints the current slide as one full-screen frame:
	// title, body lines, slide counter, progress bar, single flush.
	RenderSlide(p *entities.Presentation, theme *entities.Theme) error

	// RenderOverlay places transient text in the top-right corner and
	// flushes immediately, without disturbing the rest of the frame.
	RenderOverlay(text string, color entities.Color) error
}
