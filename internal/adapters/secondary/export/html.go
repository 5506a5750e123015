package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// Options controls HTML export
type Options struct {
	// OutputPath is the file to write
	OutputPath string

	// IncludeNotes embeds speaker notes under each slide
	IncludeNotes bool
}

// HTMLRenderer exports a presentation to a standalone HTML file. Slides go
// through a full markdown renderer here — unlike the terminal path, the HTML
// surface has no reason to keep markdown literal — and the output is
// sanitized before templating.
type HTMLRenderer struct {
	md       goldmark.Markdown
	policy   *bluemonday.Policy
	template *template.Template
}

// NewHTMLRenderer creates a new HTML exporter
func NewHTMLRenderer() *HTMLRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			extension.Table,
			extension.Strikethrough,
			extension.TaskList,
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	tmpl := template.New("export")
	tmpl = tmpl.Funcs(template.FuncMap{
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s) // #nosec G203 - content is bluemonday-sanitized before templating
		},
	})
	tmpl = template.Must(tmpl.Parse(deckHTMLTemplate))

	return &HTMLRenderer{
		md:       md,
		policy:   bluemonday.UGCPolicy(),
		template: tmpl,
	}
}

// renderedSlide is the per-slide template payload
type renderedSlide struct {
	Number int
	HTML   string
	Notes  string
}

// Render exports the presentation to the output path
func (r *HTMLRenderer) Render(ctx context.Context, presentation *entities.Presentation, theme *entities.Theme, opts Options) error {
	if presentation == nil {
		return errors.New("presentation cannot be nil")
	}
	if theme == nil {
		return errors.New("theme cannot be nil")
	}
	if opts.OutputPath == "" {
		return errors.New("output path cannot be empty")
	}

	slides := make([]renderedSlide, 0, len(presentation.Slides))
	for i := range presentation.Slides {
		slide := &presentation.Slides[i]

		var buf bytes.Buffer
		if err := r.md.Convert([]byte(slide.Content), &buf); err != nil {
			return fmt.Errorf("rendering slide %d: %w", i+1, err)
		}

		rendered := renderedSlide{
			Number: i + 1,
			HTML:   string(r.policy.SanitizeBytes(buf.Bytes())),
		}
		if opts.IncludeNotes && slide.HasNotes() {
			rendered.Notes = slide.Notes
		}
		slides = append(slides, rendered)
	}

	data := struct {
		Title        string
		Author       string
		Date         string
		Slides       []renderedSlide
		SlideCount   int
		Heading1     string
		Heading2     string
		Heading3     string
		Heading4     string
		TitleAccent  string
		FooterAccent string
	}{
		Title:        presentation.Title,
		Author:       presentation.Author,
		Date:         presentation.Date.Format("2006-01-02"),
		Slides:       slides,
		SlideCount:   len(slides),
		Heading1:     theme.Heading1.Hex(),
		Heading2:     theme.Heading2.Hex(),
		Heading3:     theme.Heading3.Hex(),
		Heading4:     theme.Heading4.Hex(),
		TitleAccent:  theme.TitleAccent.Hex(),
		FooterAccent: theme.FooterAccent.Hex(),
	}

	outputFile, err := os.Create(opts.OutputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() { _ = outputFile.Close() }()

	if err := r.template.Execute(outputFile, data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	return nil
}
