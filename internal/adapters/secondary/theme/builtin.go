package theme

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// builtinThemes returns the themes shipped with termdeck. Slot order follows
// the renderer: heading levels one to four, then title and footer accents.
func builtinThemes() map[string]*entities.Theme {
	return map[string]*entities.Theme{
		"dark": {
			Name:         "dark",
			DisplayName:  "Dark",
			Heading1:     entities.MustParseColor("#a6e3a1"),
			Heading2:     entities.MustParseColor("#94e2d5"),
			Heading3:     entities.MustParseColor("#f38ba8"),
			Heading4:     entities.MustParseColor("#fab387"),
			TitleAccent:  entities.MustParseColor("#f38ba8"),
			FooterAccent: entities.MustParseColor("#a6e3a1"),
		},
		"light": {
			Name:         "light",
			DisplayName:  "Light",
			Heading1:     entities.MustParseColor("#40a02b"),
			Heading2:     entities.MustParseColor("#179299"),
			Heading3:     entities.MustParseColor("#d20f39"),
			Heading4:     entities.MustParseColor("#fe640b"),
			TitleAccent:  entities.MustParseColor("#d20f39"),
			FooterAccent: entities.MustParseColor("#40a02b"),
		},
		"warm": {
			Name:         "warm",
			DisplayName:  "Warm",
			Heading1:     entities.MustParseColor("#a6d189"),
			Heading2:     entities.MustParseColor("#81c8be"),
			Heading3:     entities.MustParseColor("#e78284"),
			Heading4:     entities.MustParseColor("#ef9f76"),
			TitleAccent:  entities.MustParseColor("#e78284"),
			FooterAccent: entities.MustParseColor("#a6d189"),
		},
		"mono": {
			Name:         "mono",
			DisplayName:  "Mono",
			Heading1:     entities.MustParseColor("#e8e8e8"),
			Heading2:     entities.MustParseColor("#c4c4c4"),
			Heading3:     entities.MustParseColor("#a0a0a0"),
			Heading4:     entities.MustParseColor("#7c7c7c"),
			TitleAccent:  entities.MustParseColor("#ffffff"),
			FooterAccent: entities.MustParseColor("#b0b0b0"),
		},
	}
}
