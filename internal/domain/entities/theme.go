package entities

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit RGB terminal color
type Color struct {
	R uint8 `toml:"r" json:"r"`
	G uint8 `toml:"g" json:"g"`
	B uint8 `toml:"b" json:"b"`
}

// ParseColor parses a hex color string such as "#a6e3a1"
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseColor parses a hex color string and panics on failure.
// Intended for built-in palette definitions only.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color in "#rrggbb" form
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Heading level bounds recognized by the renderer
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 4
)

// Theme maps the semantic rendering slots to concrete colors: one slot per
// heading level plus two accents. TitleAccent colors the centered deck title,
// FooterAccent colors the slide counter and the progress bar.
type Theme struct {
	// Name is the theme identifier
	Name string `toml:"name" json:"name"`

	// DisplayName is the human-readable theme name
	DisplayName string `toml:"display_name" json:"display_name"`

	// Heading slots, level 1 through 4
	Heading1 Color `toml:"-" json:"heading1"`
	Heading2 Color `toml:"-" json:"heading2"`
	Heading3 Color `toml:"-" json:"heading3"`
	Heading4 Color `toml:"-" json:"heading4"`

	// Accent slots
	TitleAccent  Color `toml:"-" json:"title_accent"`
	FooterAccent Color `toml:"-" json:"footer_accent"`
}

// Validate ensures the theme has a usable identifier
func (t *Theme) Validate() error {
	if t.Name == "" {
		return errors.New("theme name is required")
	}

	if !isValidThemeName(t.Name) {
		return errors.New("theme name must contain only lowercase letters, numbers, and hyphens")
	}

	if t.DisplayName == "" {
		t.DisplayName = t.Name
	}

	return nil
}

// HeadingColor returns the color for a heading level. The second return is
// false when the level is outside the recognized range, in which case the
// caller renders with the terminal's default foreground.
func (t *Theme) HeadingColor(level int) (Color, bool) {
	switch level {
	case 1:
		return t.Heading1, true
	case 2:
		return t.Heading2, true
	case 3:
		return t.Heading3, true
	case 4:
		return t.Heading4, true
	default:
		return Color{}, false
	}
}

// isValidThemeName checks if a theme name is valid
func isValidThemeName(name string) bool {
	if name == "" {
		return false
	}

	for _, char := range name {
		isLowercase := char >= 'a' && char <= 'z'
		isDigit := char >= '0' && char <= '9'
		isHyphen := char == '-'

		if !isLowercase && !isDigit && !isHyphen {
			return false
		}
	}

	// Cannot start or end with hyphen
	return !strings.HasPrefix(name, "-") && !strings.HasSuffix(name, "-")
}
