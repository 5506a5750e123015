package renderer

import (
	"strings"
	"unicode"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// Body is the classification of a line that is not a recognized heading
const Body = 0

// Classify determines whether a slide line is a heading and at which level.
// A run of one to four leading '#' characters marks a heading of that level;
// the markers and the whitespace directly after them are stripped from the
// returned display text (trailing whitespace stays). A run of five or more
// is not a heading: the line passes through unchanged, markers included.
// Level Body (0) means plain text. Total over all inputs, including "".
func Classify(line string) (string, int) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}

	if n < entities.MinHeadingLevel || n > entities.MaxHeadingLevel {
		return line, Body
	}

	return strings.TrimLeftFunc(line[n:], unicode.IsSpace), n
}
