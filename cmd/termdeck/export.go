package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/secondary/export"
)

var (
	// Export command flags
	exportOutput   string
	exportNotes    bool
	exportThemeArg string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a markdown deck to a standalone HTML file",
	Long: `Render every slide of a deck into a single self-contained HTML
page, using the same theme colors as the terminal presentation.

Example:
  termdeck export deck.md
  termdeck export deck.md -o slides.html --include-notes`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output HTML file (default: deck name with .html)")
	exportCmd.Flags().BoolVar(&exportNotes, "include-notes", false, "Embed speaker notes in the export")
	exportCmd.Flags().StringVarP(&exportThemeArg, "theme", "t", "", "Theme to use (overrides config and frontmatter)")
}

func runExport(cmd *cobra.Command, args []string) error {
	deckPath := args[0]

	// The export command shares the present command's config surface but
	// only consumes the theme and export sections.
	presentTheme = exportThemeArg
	cfg, err := loadConfig(cmd, filepath.Dir(deckPath))
	if err != nil {
		return err
	}

	service := newPresentationService(cfg)

	presentation, err := service.LoadPresentation(cmd.Context(), deckPath)
	if err != nil {
		return err
	}

	selectedTheme, err := service.ResolveTheme(presentation, cfg.Theme.Name)
	if err != nil {
		return err
	}

	output := exportOutput
	if output == "" {
		output = cfg.Export.OutputPath
	}
	if output == "" {
		base := strings.TrimSuffix(deckPath, filepath.Ext(deckPath))
		output = base + ".html"
	}

	opts := export.Options{
		OutputPath:   output,
		IncludeNotes: exportNotes || cfg.Export.IncludeNotes,
	}

	if err := export.NewHTMLRenderer().Render(cmd.Context(), presentation, selectedTheme, opts); err != nil {
		return fmt.Errorf("exporting deck: %w", err)
	}

	fmt.Printf("Exported %d slides to %s\n", presentation.SlideCount(), output)
	return nil
}
