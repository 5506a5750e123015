package parser

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/termdeck/termdeck/internal/domain/ports"
)

// MarkdownSplitter implements the MarkdownParser interface. It understands
// the deck file format only: YAML frontmatter, "---" slide separators, and
// "Note:" speaker-note lines. Line-level markdown stays untouched; heading
// classification happens at render time.
type MarkdownSplitter struct{}

// NewMarkdownSplitter creates a new deck file parser
func NewMarkdownSplitter() *MarkdownSplitter {
	return &MarkdownSplitter{}
}

// Parse parses raw deck content into structured presentation data
func (p *MarkdownSplitter) Parse(content []byte) (*ports.ParsedContent, error) {
	frontmatter, remaining := extractFrontmatter(content)

	slides := splitSlides(remaining)

	parsedSlides := make([]ports.RawSlide, 0, len(slides))
	for i, slideContent := range slides {
		parsedSlides = append(parsedSlides, parseSlide(slideContent, i))
	}

	return &ports.ParsedContent{
		Frontmatter: frontmatter,
		Slides:      parsedSlides,
	}, nil
}

// parseSlide splits a slide's content from its speaker notes
func parseSlide(content []byte, index int) ports.RawSlide {
	var mainContent []string
	var notes []string

	for _, line := range strings.Split(string(content), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "Note:") {
			noteContent := strings.TrimPrefix(trimmed, "Note:")
			notes = append(notes, strings.TrimSpace(noteContent))
		} else {
			mainContent = append(mainContent, line)
		}
	}

	return ports.RawSlide{
		Content: strings.Join(mainContent, "\n"),
		Notes:   strings.Join(notes, "\n"),
		Index:   index,
	}
}

// extractFrontmatter extracts YAML frontmatter from deck content
func extractFrontmatter(content []byte) (map[string]interface{}, []byte) {
	if !bytes.HasPrefix(content, []byte("---\n")) && !bytes.HasPrefix(content, []byte("---\r\n")) {
		return nil, content
	}

	lines := bytes.Split(content, []byte("\n"))
	endIndex := -1

	for i := 1; i < len(lines); i++ {
		line := bytes.TrimSpace(lines[i])
		if bytes.Equal(line, []byte("---")) {
			endIndex = i
			break
		}
	}

	if endIndex == -1 {
		// No closing delimiter found
		return nil, content
	}

	frontmatterBytes := bytes.Join(lines[1:endIndex], []byte("\n"))

	var frontmatter map[string]interface{}
	if len(frontmatterBytes) == 0 {
		frontmatter = make(map[string]interface{})
	} else if err := yaml.Unmarshal(frontmatterBytes, &frontmatter); err != nil {
		// Malformed frontmatter: treat the whole file as slide content
		return nil, content
	}

	remaining := bytes.Join(lines[endIndex+1:], []byte("\n"))
	return frontmatter, remaining
}

// splitSlides splits deck content on "---" separator lines
func splitSlides(content []byte) [][]byte {
	lines := bytes.Split(content, []byte("\n"))

	var slides [][]byte
	var current [][]byte

	flush := func() {
		joined := bytes.Join(current, []byte("\n"))
		if len(bytes.TrimSpace(joined)) > 0 {
			slides = append(slides, joined)
		}
		current = current[:0]
	}

	for _, line := range lines {
		if bytes.Equal(bytes.TrimSpace(line), []byte("---")) {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return slides
}

var _ ports.MarkdownParser = (*MarkdownSplitter)(nil)
