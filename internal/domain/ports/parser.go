package ports

// MarkdownParser defines the interface for parsing raw deck files
type MarkdownParser interface {
	Parse(content []byte) (*ParsedContent, error)
}

// ParsedContent represents the result of parsing a deck file
type ParsedContent struct {
	Frontmatter map[string]interface{}
	Slides      []RawSlide
}

// RawSlide represents a single slide before entity assembly
type RawSlide struct {
	Content string
	Notes   string
	Index   int
}
