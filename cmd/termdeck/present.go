package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/termdeck/termdeck/internal/adapters/primary/tui"
	"github.com/termdeck/termdeck/internal/adapters/secondary/config"
	"github.com/termdeck/termdeck/internal/adapters/secondary/parser"
	"github.com/termdeck/termdeck/internal/adapters/secondary/renderer"
	"github.com/termdeck/termdeck/internal/adapters/secondary/terminal"
	"github.com/termdeck/termdeck/internal/adapters/secondary/theme"
	"github.com/termdeck/termdeck/internal/adapters/secondary/watcher"
	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
	"github.com/termdeck/termdeck/internal/domain/services"
)

var (
	// Present command flags
	presentTheme     string
	presentThemePath string
	presentWatch     bool
)

// Logger provides leveled logging for the CLI commands
type Logger struct {
	verbose bool
	level   entities.LogLevel
}

// shouldLog checks if the message should be logged based on level
func (l *Logger) shouldLog(msgLevel entities.LogLevel) bool {
	levelMap := map[entities.LogLevel]int{
		entities.LogLevelDebug: 0,
		entities.LogLevelInfo:  1,
		entities.LogLevelWarn:  2,
		entities.LogLevelError: 3,
	}

	return levelMap[msgLevel] >= levelMap[l.level]
}

// Info logs informational messages
func (l *Logger) Info(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelInfo) && l.verbose {
		log.Printf("[INFO] "+msg, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelWarn) {
		log.Printf("[WARN] "+msg, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(msg string, args ...interface{}) {
	if l.shouldLog(entities.LogLevelError) {
		log.Printf("[ERROR] "+msg, args...)
	}
}

// newLoggerWithLevel creates a new logger instance with a specific level
func newLoggerWithLevel(verbose bool, level entities.LogLevel) *Logger {
	return &Logger{
		verbose: verbose,
		level:   level,
	}
}

// presentCmd represents the present command
var presentCmd = &cobra.Command{
	Use:   "present [file]",
	Short: "Present a markdown deck in the terminal",
	Long: `Show a markdown slide deck full screen in the current terminal.

Navigation: right/l/space next, left/h previous, g/G first/last,
r reload, q or Esc quit.

Example:
  termdeck present deck.md
  termdeck present deck.md --theme light --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runPresent,
}

func init() {
	rootCmd.AddCommand(presentCmd)

	presentCmd.Flags().StringVarP(&presentTheme, "theme", "t", "", "Theme to use (overrides config and frontmatter)")
	presentCmd.Flags().StringVar(&presentThemePath, "theme-path", "", "Directory of custom TOML themes (overrides config)")
	presentCmd.Flags().BoolVarP(&presentWatch, "watch", "w", false, "Reload the deck when the file changes")
}

// loadConfig merges global config, local config, and CLI flags
func loadConfig(cmd *cobra.Command, deckDir string) (*entities.Config, error) {
	loader := config.NewTOMLLoader()
	merger := config.NewConfigMerger()

	global, err := loader.LoadGlobal(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	local, err := loader.LoadLocal(cmd.Context(), deckDir)
	if err != nil {
		return nil, fmt.Errorf("loading local config: %w", err)
	}

	merged := merger.Merge(config.GetDefaultConfig(), global, local)

	verbose, _ := cmd.Flags().GetBool("verbose")
	merged = merger.ApplyFlags(merged, map[string]interface{}{
		"theme":      presentTheme,
		"theme-path": presentThemePath,
		"watch":      presentWatch,
		"verbose":    verbose,
	})

	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return merged, nil
}

// newPresentationService wires the parser chain and theme registry
func newPresentationService(cfg *entities.Config) *services.PresentationService {
	splitter := parser.NewMarkdownSplitter()
	deckParser := parser.NewPresentationParserAdapter(splitter)
	registry := theme.NewRegistry(cfg.Theme.CustomPath)
	return services.NewPresentationService(deckParser, registry)
}

func runPresent(cmd *cobra.Command, args []string) error {
	deckPath := args[0]

	cfg, err := loadConfig(cmd, filepath.Dir(deckPath))
	if err != nil {
		return err
	}

	logger := newLoggerWithLevel(cfg.Logging.Verbose, cfg.GetLogLevel())

	service := newPresentationService(cfg)

	presentation, err := service.LoadPresentation(cmd.Context(), deckPath)
	if err != nil {
		return err
	}
	logger.Info("loaded deck %s (%d slides, id %s)", deckPath, presentation.SlideCount(), presentation.ID)

	selectedTheme, err := service.ResolveTheme(presentation, cfg.Theme.Name)
	if err != nil {
		return err
	}
	logger.Info("using theme %s", selectedTheme.Name)

	sink := terminal.NewANSISink(os.Stdout)
	slideRenderer := renderer.NewTerminalRenderer(sink)

	var watchEvents <-chan ports.FileChangeEvent
	if cfg.Watcher.Enabled {
		w := watcher.NewFSNotifyWatcher(time.Duration(cfg.Watcher.DebounceMs) * time.Millisecond)
		watchEvents, err = w.Watch(cmd.Context(), deckPath)
		if err != nil {
			return fmt.Errorf("starting watch mode: %w", err)
		}
		logger.Info("watching %s for changes", deckPath)
	}

	reload := func(ctx context.Context) (*entities.Presentation, error) {
		return service.LoadPresentation(ctx, deckPath)
	}

	presenter := tui.NewPresenter(presentation, selectedTheme, slideRenderer, os.Stdin, reload, watchEvents)

	runErr := presenter.Run(cmd.Context())

	// Leave the shell on a clean screen regardless of how the show ended
	sink.Clear()
	sink.MoveTo(1, 1)
	sink.ResetStyle()
	if err := sink.Flush(); err != nil && runErr == nil {
		runErr = err
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.Error("presentation ended: %v", runErr)
		return runErr
	}
	return nil
}
