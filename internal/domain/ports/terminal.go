package ports

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// TerminalSink is the ordered stream of control directives a renderer draws
// against. Directives are buffered; write failures are sticky and surface
// from Flush, so a frame either appears whole or the call reports an error.
// Size and CursorPosition query the live terminal on every call — dimensions
// must never be cached across renders.
type TerminalSink interface {
	// Clear erases the whole screen
	Clear()

	// MoveTo places the cursor at the 1-based row and column
	MoveTo(row, col int)

	// Foreground sets the foreground to an RGB color
	Foreground(c entities.Color)

	// ResetForeground restores the terminal's default foreground
	ResetForeground()

	// Bold enables bold rendering for subsequent text
	Bold()

	// ResetStyle clears bold and any other styling
	ResetStyle()

	// Print queues raw text at the current cursor position
	Print(text string)

	// Flush writes all queued directives to the terminal in one burst
	Flush() error

	// Size returns the terminal dimensions in character cells
	Size() (width, height int, err error)

	// CursorPosition returns the current 1-based cursor row and column,
	// accounting for every directive issued so far, flushed or not. It must
	// not read from the terminal: the input stream belongs to the key
	// reader while a presentation is on screen.
	CursorPosition() (row, col int, err error)
}
