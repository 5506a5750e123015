package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// RenderOverlay places transient text right-aligned on the top row and
// flushes immediately. Text wider than the terminal starts at column 1
// instead of a negative column and is cut off by the terminal edge.
func (r *TerminalRenderer) RenderOverlay(text string, color entities.Color) error {
	width, _, err := r.term.Size()
	if err != nil {
		return err
	}

	col := width - runewidth.StringWidth(text)
	if col < 1 {
		col = 1
	}

	r.term.MoveTo(1, col)
	r.term.Foreground(color)
	r.term.Print(text)
	r.term.ResetForeground()
	return r.term.Flush()
}
