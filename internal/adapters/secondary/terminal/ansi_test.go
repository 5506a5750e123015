package terminal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// newFileSink backs the sink with a regular file so the emitted byte stream
// can be inspected without a real terminal
func newFileSink(t *testing.T) (*ANSISink, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "out")
	out, err := os.Create(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = out.Close() })
	return NewANSISink(out), path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestANSISink_DirectiveSequences(t *testing.T) {
	sink, path := newFileSink(t)

	sink.Clear()
	sink.MoveTo(4, 1)
	sink.Bold()
	sink.Foreground(entities.Color{R: 0xa6, G: 0xe3, B: 0xa1})
	sink.Print("Heading")
	sink.ResetForeground()
	sink.ResetStyle()
	require.NoError(t, sink.Flush())

	want := "\x1b[2J" + "\x1b[4;1H" + "\x1b[1m" + "\x1b[38;2;166;227;161m" + "Heading" + "\x1b[39m" + "\x1b[0m"
	assert.Equal(t, want, readOutput(t, path))
}

func TestANSISink_BuffersUntilFlush(t *testing.T) {
	sink, path := newFileSink(t)

	sink.Clear()
	sink.Print("pending")

	assert.Empty(t, readOutput(t, path), "nothing reaches the terminal before Flush")

	require.NoError(t, sink.Flush())
	assert.NotEmpty(t, readOutput(t, path))
}

func TestANSISink_FlushEmptiesBuffer(t *testing.T) {
	sink, path := newFileSink(t)

	sink.Print("once")
	require.NoError(t, sink.Flush())
	require.NoError(t, sink.Flush())

	assert.Equal(t, "once", readOutput(t, path), "a second flush must not repeat the frame")
}

func TestANSISink_StickyWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, out.Close())

	sink := NewANSISink(out)
	sink.Print("doomed")

	first := sink.Flush()
	require.Error(t, first)

	sink.Print("more")
	second := sink.Flush()
	require.Error(t, second)
	assert.Equal(t, first, second, "the first failure sticks")
}

func TestANSISink_SizeFailsOffTerminal(t *testing.T) {
	sink, _ := newFileSink(t)

	_, _, err := sink.Size()
	require.Error(t, err, "a regular file has no window size")
	assert.Contains(t, err.Error(), "terminal size")
}

func TestANSISink_MoveToCoordinateOrder(t *testing.T) {
	sink, path := newFileSink(t)

	// Row before column, both 1-based: row 24, column 80
	sink.MoveTo(24, 80)
	require.NoError(t, sink.Flush())

	assert.Equal(t, "\x1b[24;80H", readOutput(t, path))
}

func TestANSISink_CursorPositionTracksDirectives(t *testing.T) {
	sink, path := newFileSink(t)

	row, col, err := sink.CursorPosition()
	require.NoError(t, err)
	assert.Equal(t, 1, row)
	assert.Equal(t, 1, col)

	sink.MoveTo(3, 1)
	sink.Print("Demo")

	row, col, err = sink.CursorPosition()
	require.NoError(t, err)
	assert.Equal(t, 3, row)
	assert.Equal(t, 5, col, "printing advances the column by cell width")

	require.NoError(t, sink.Flush())
	assert.NotContains(t, readOutput(t, path), "\x1b[6n", "position must come from tracking, not a terminal query")
}

func TestANSISink_CursorPositionWithoutTerminalReply(t *testing.T) {
	// The terminal's input stream belongs to the key reader while a deck is
	// on screen, so the position must be answerable without reading input.
	// A sink backed by a plain file has no input at all and still answers.
	sink, _ := newFileSink(t)

	sink.Clear()
	sink.MoveTo(1, 1)
	sink.Print("Title")

	done := make(chan struct{})
	go func() {
		defer close(done)
		row, _, err := sink.CursorPosition()
		assert.NoError(t, err)
		assert.Equal(t, 1, row)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("CursorPosition blocked waiting for terminal input")
	}
}

func TestANSISink_CursorPositionWideRunes(t *testing.T) {
	sink, _ := newFileSink(t)

	sink.MoveTo(2, 1)
	sink.Print("日本")

	_, col, err := sink.CursorPosition()
	require.NoError(t, err)
	assert.Equal(t, 5, col, "double-width runes occupy two cells each")
}
