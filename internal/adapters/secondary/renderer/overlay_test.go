package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

func TestTerminalRenderer_RenderOverlay(t *testing.T) {
	sink := newRecordingSink(80, 24)
	r := NewTerminalRenderer(sink)
	color := entities.MustParseColor("#00ff00")

	require.NoError(t, r.RenderOverlay("reloaded", color))

	joined := strings.Join(sink.directives, "|")
	// 80 - 8 = column 72, top row, immediate flush
	assert.Contains(t, joined, `moveto 1 72|fg #00ff00|text "reloaded"|fg-reset|flush`)
	assert.Equal(t, 1, sink.flushes)
}

func TestTerminalRenderer_RenderOverlay_ClampsWideText(t *testing.T) {
	sink := newRecordingSink(10, 24)
	r := NewTerminalRenderer(sink)

	text := "a status line wider than the terminal"
	require.NoError(t, r.RenderOverlay(text, entities.MustParseColor("#ffffff")))

	assert.Contains(t, sink.directives, "moveto 1 1", "column clamps to 1 instead of going negative")
}

func TestTerminalRenderer_RenderOverlay_SizeErrorIsFatal(t *testing.T) {
	sink := newRecordingSink(80, 24)
	sink.sizeErr = fmt.Errorf("not a tty")
	r := NewTerminalRenderer(sink)

	err := r.RenderOverlay("hi", entities.Color{})
	require.Error(t, err)
	assert.Empty(t, sink.directives)
}
