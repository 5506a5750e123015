package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/secondary/theme"
	"github.com/termdeck/termdeck/internal/domain/entities"
)

var themesThemePath string

// themesCmd represents the themes command
var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available themes with color swatches",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)

	themesCmd.Flags().StringVar(&themesThemePath, "theme-path", "", "Directory of custom TOML themes to include")
}

func runThemes(cmd *cobra.Command, args []string) error {
	registry := theme.NewRegistry(themesThemePath)

	nameStyle := lipgloss.NewStyle().Bold(true).Width(12)

	for _, t := range registry.List() {
		swatches := swatch(t.Heading1) + swatch(t.Heading2) + swatch(t.Heading3) +
			swatch(t.Heading4) + " " + swatch(t.TitleAccent) + swatch(t.FooterAccent)
		fmt.Printf("%s %s  %s\n", nameStyle.Render(t.Name), swatches, t.DisplayName)
	}

	return nil
}

// swatch renders a colored block for one theme slot
func swatch(c entities.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
}
