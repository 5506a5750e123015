package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// Registry resolves theme names against the built-in palettes and,
// optionally, a directory of custom TOML theme files. Custom themes shadow
// built-ins of the same name.
type Registry struct {
	customPath string
	builtins   map[string]*entities.Theme
}

// NewRegistry creates a theme registry. customPath may be empty to use
// built-in themes only.
func NewRegistry(customPath string) *Registry {
	return &Registry{
		customPath: customPath,
		builtins:   builtinThemes(),
	}
}

// Get returns the theme with the given name
func (r *Registry) Get(name string) (*entities.Theme, error) {
	if name == "" {
		name = "dark"
	}

	if r.customPath != "" {
		path := filepath.Join(r.customPath, name+".toml")
		if _, err := os.Stat(path); err == nil {
			return r.loadFile(path)
		}
	}

	if t, ok := r.builtins[name]; ok {
		copied := *t
		return &copied, nil
	}

	return nil, fmt.Errorf("unknown theme: %s", name)
}

// List returns all available themes sorted by name
func (r *Registry) List() []*entities.Theme {
	byName := make(map[string]*entities.Theme, len(r.builtins))
	for name, t := range r.builtins {
		copied := *t
		byName[name] = &copied
	}

	if r.customPath != "" {
		entries, err := os.ReadDir(r.customPath)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
					continue
				}
				t, err := r.loadFile(filepath.Join(r.customPath, entry.Name()))
				if err != nil {
					continue
				}
				byName[t.Name] = t
			}
		}
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	themes := make([]*entities.Theme, 0, len(names))
	for _, name := range names {
		themes = append(themes, byName[name])
	}
	return themes
}

// themeFile is the on-disk TOML shape of a custom theme
type themeFile struct {
	Name        string `toml:"name"`
	DisplayName string `toml:"display_name"`
	Colors      struct {
		Heading1     string `toml:"heading1"`
		Heading2     string `toml:"heading2"`
		Heading3     string `toml:"heading3"`
		Heading4     string `toml:"heading4"`
		TitleAccent  string `toml:"title_accent"`
		FooterAccent string `toml:"footer_accent"`
	} `toml:"colors"`
}

// loadFile loads a custom theme from a TOML file
func (r *Registry) loadFile(path string) (*entities.Theme, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is from the configured theme directory
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}

	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing theme %s: %w", path, err)
	}

	if file.Name == "" {
		base := filepath.Base(path)
		file.Name = base[:len(base)-len(filepath.Ext(base))]
	}

	t := &entities.Theme{
		Name:        file.Name,
		DisplayName: file.DisplayName,
	}
	if t.DisplayName == "" {
		t.DisplayName = cases.Title(language.English).String(file.Name)
	}

	colors := []struct {
		hex  string
		dest *entities.Color
		slot string
	}{
		{file.Colors.Heading1, &t.Heading1, "heading1"},
		{file.Colors.Heading2, &t.Heading2, "heading2"},
		{file.Colors.Heading3, &t.Heading3, "heading3"},
		{file.Colors.Heading4, &t.Heading4, "heading4"},
		{file.Colors.TitleAccent, &t.TitleAccent, "title_accent"},
		{file.Colors.FooterAccent, &t.FooterAccent, "footer_accent"},
	}
	for _, c := range colors {
		if c.hex == "" {
			return nil, fmt.Errorf("theme %s: missing color %s", path, c.slot)
		}
		parsed, err := entities.ParseColor(c.hex)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %s: %w", path, c.slot, err)
		}
		*c.dest = parsed
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", path, err)
	}

	return t, nil
}

var _ ports.ThemeRegistry = (*Registry)(nil)
