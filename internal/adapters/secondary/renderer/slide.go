package renderer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// bodyStartRow is the first screen row used for slide body lines. Rows 1-3
// hold the deck title and its breathing room.
const bodyStartRow = 4

// progressBlock is the cell used for the filled part of the progress bar
const progressBlock = "█"

// TerminalRenderer draws presentation frames onto a terminal sink. It is
// stateless between calls: geometry is queried once per frame and never
// cached, so resizes take effect on the next render.
type TerminalRenderer struct {
	term ports.TerminalSink
}

// NewTerminalRenderer creates a renderer drawing to the given sink
func NewTerminalRenderer(term ports.TerminalSink) *TerminalRenderer {
	return &TerminalRenderer{term: term}
}

// RenderSlide paints the current slide as one full-screen frame: clear,
// centered title, body lines from row 4, centered slide counter on the
// second-to-last row, progress bar on the last row, then a single flush.
func (r *TerminalRenderer) RenderSlide(p *entities.Presentation, theme *entities.Theme) error {
	if p == nil {
		return errors.New("presentation cannot be nil")
	}
	if theme == nil {
		return errors.New("theme cannot be nil")
	}

	total := p.SlideCount()
	if total == 0 {
		return errors.New("presentation has no slides")
	}

	slide, err := p.CurrentSlide()
	if err != nil {
		return fmt.Errorf("selecting current slide: %w", err)
	}

	width, height, err := r.term.Size()
	if err != nil {
		return err
	}

	r.term.Clear()
	r.term.MoveTo(1, 1)

	if p.Title != "" {
		if err := r.renderCentered(p.Title, theme.TitleAccent, width, 0); err != nil {
			return err
		}
	}

	row := bodyStartRow
	for _, line := range visibleLines(slide.Lines()) {
		display, level := Classify(line)

		r.term.MoveTo(row, 1)
		r.term.Bold()
		if color, ok := theme.HeadingColor(level); ok {
			r.term.Foreground(color)
		}
		r.term.Print(display)
		r.term.ResetForeground()
		r.term.ResetStyle()
		row++
	}

	footer := fmt.Sprintf("%d/%d slides", p.CurrentIndex+1, total)
	if err := r.renderCentered(footer, theme.FooterAccent, width, height-1); err != nil {
		return err
	}

	r.renderProgressBar(p.CurrentIndex, total, width, height, theme.FooterAccent)

	return r.term.Flush()
}

// renderCentered writes text horizontally centered at the given row, bold
// and colored. Row 0 means "the row the cursor is on", which requires a
// cursor position query. Text wider than the terminal gets no padding and
// overflows to the right.
func (r *TerminalRenderer) renderCentered(text string, color entities.Color, width, row int) error {
	if row == 0 {
		cur, _, err := r.term.CursorPosition()
		if err != nil {
			return err
		}
		row = cur
	}

	padding := (width - runewidth.StringWidth(text)) / 2
	if padding < 0 {
		padding = 0
	}

	r.term.MoveTo(row, 1)
	r.term.Bold()
	r.term.Foreground(color)
	r.term.Print(strings.Repeat(" ", padding) + text)
	r.term.ResetForeground()
	r.term.ResetStyle()
	return nil
}

// renderProgressBar fills the bottom row proportionally to how far into the
// deck the viewer is. The unfilled remainder is overwritten with spaces so a
// shrinking bar never leaves stale cells, and the cursor lands on the row
// below the bar.
func (r *TerminalRenderer) renderProgressBar(index, total, width, height int, color entities.Color) {
	ratio := float64(index+1) / float64(total)
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}

	r.term.MoveTo(height, 1)
	r.term.Foreground(color)
	r.term.Print(strings.Repeat(progressBlock, filled))
	r.term.ResetForeground()
	r.term.Print(strings.Repeat(" ", width-filled))
	r.term.MoveTo(height+1, 1)
}

// visibleLines drops the leading blank lines from slide content. Blank
// lines elsewhere in the slide are kept.
func visibleLines(lines []string) []string {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	return lines
}

var _ ports.SlideRenderer = (*TerminalRenderer)(nil)
