package terminal

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// ANSI control sequences emitted by the sink. 24-bit foreground colors use
// the SGR 38;2 form; cursor addressing is 1-based row;column.
const (
	seqClearScreen     = "\x1b[2J"
	seqResetForeground = "\x1b[39m"
	seqBold            = "\x1b[1m"
	seqResetStyle      = "\x1b[0m"
)

// ANSISink implements the TerminalSink port against a real terminal. All
// directives accumulate in an in-memory buffer and reach the terminal in a
// single write on Flush, so a frame appears atomically.
//
// The sink tracks the cursor location itself from the directives it is given:
// MoveTo sets it, Print advances the column by the printed cell width. This
// keeps CursorPosition off the terminal's input stream, which belongs to the
// key reader while a presentation is on screen; a DSR query here would race
// it for the reply.
type ANSISink struct {
	out *os.File
	buf bytes.Buffer
	err error
	row int
	col int
}

// NewANSISink creates a sink writing frames to out
func NewANSISink(out *os.File) *ANSISink {
	return &ANSISink{out: out, row: 1, col: 1}
}

// Clear erases the whole screen. The cursor does not move.
func (s *ANSISink) Clear() {
	s.buf.WriteString(seqClearScreen)
}

// MoveTo places the cursor at the 1-based row and column
func (s *ANSISink) MoveTo(row, col int) {
	fmt.Fprintf(&s.buf, "\x1b[%d;%dH", row, col)
	s.row = row
	s.col = col
}

// Foreground sets the foreground to an RGB color
func (s *ANSISink) Foreground(c entities.Color) {
	fmt.Fprintf(&s.buf, "\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ResetForeground restores the terminal's default foreground
func (s *ANSISink) ResetForeground() {
	s.buf.WriteString(seqResetForeground)
}

// Bold enables bold rendering for subsequent text
func (s *ANSISink) Bold() {
	s.buf.WriteString(seqBold)
}

// ResetStyle clears bold and any other styling
func (s *ANSISink) ResetStyle() {
	s.buf.WriteString(seqResetStyle)
}

// Print queues raw text at the current cursor position
func (s *ANSISink) Print(text string) {
	s.buf.WriteString(text)
	s.col += runewidth.StringWidth(text)
}

// Flush writes all queued directives to the terminal in one burst. A write
// failure is sticky: once Flush fails, every later Flush reports the same
// error until the sink is discarded.
func (s *ANSISink) Flush() error {
	if s.err != nil {
		return s.err
	}
	if s.buf.Len() == 0 {
		return nil
	}

	if _, err := s.out.Write(s.buf.Bytes()); err != nil {
		s.err = fmt.Errorf("writing to terminal: %w", err)
		return s.err
	}
	s.buf.Reset()
	return nil
}

// Size returns the terminal dimensions in character cells, queried live
func (s *ANSISink) Size() (int, int, error) {
	width, height, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("querying terminal size: %w", err)
	}
	return width, height, nil
}

// CursorPosition reports the cursor location implied by the directives
// issued so far, including ones still queued in the buffer
func (s *ANSISink) CursorPosition() (int, int, error) {
	if s.err != nil {
		return 0, 0, s.err
	}
	return s.row, s.col, nil
}

var _ ports.TerminalSink = (*ANSISink)(nil)
