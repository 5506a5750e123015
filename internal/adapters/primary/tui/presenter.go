package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

// ReloadFunc re-reads the deck from its source. It is called for the 'r'
// key and for watch events; a nil func disables reloading.
type ReloadFunc func(ctx context.Context) (*entities.Presentation, error)

// Presenter owns the interactive show: raw terminal mode, the key reader,
// resize signals, and watch events. All rendering is serialized through this
// single goroutine so no two frames ever interleave their directives.
type Presenter struct {
	presentation *entities.Presentation
	theme        *entities.Theme
	renderer     ports.SlideRenderer
	input        *os.File
	reload       ReloadFunc
	watchEvents  <-chan ports.FileChangeEvent
}

// NewPresenter creates a presenter for a loaded presentation. watchEvents
// may be nil when watch mode is off.
func NewPresenter(
	presentation *entities.Presentation,
	theme *entities.Theme,
	renderer ports.SlideRenderer,
	input *os.File,
	reload ReloadFunc,
	watchEvents <-chan ports.FileChangeEvent,
) *Presenter {
	return &Presenter{
		presentation: presentation,
		theme:        theme,
		renderer:     renderer,
		input:        input,
		reload:       reload,
		watchEvents:  watchEvents,
	}
}

// Run shows the presentation until the viewer quits or the context ends.
// The terminal is switched to raw mode for the duration and restored on the
// way out, including on error paths.
func (p *Presenter) Run(ctx context.Context) error {
	fd := int(p.input.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("standard input is not a terminal")
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	keys := readKeys(ctx, p.input)
	resize := notifyResize(ctx)

	if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-resize:
			if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
				return err
			}

		case _, ok := <-p.watchEvents:
			if !ok {
				p.watchEvents = nil
				continue
			}
			if err := p.handleReload(ctx, "reloaded"); err != nil {
				return err
			}

		case ev := <-keys:
			if ev.err != nil {
				if errors.Is(ev.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("reading input: %w", ev.err)
			}

			switch ev.key {
			case KeyQuit:
				return nil
			case KeyNext:
				if p.presentation.Advance() {
					if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
						return err
					}
				}
			case KeyPrev:
				if p.presentation.Rewind() {
					if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
						return err
					}
				}
			case KeyFirst:
				if p.presentation.First() {
					if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
						return err
					}
				}
			case KeyLast:
				if p.presentation.Last() {
					if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
						return err
					}
				}
			case KeyReload:
				if err := p.handleReload(ctx, "reloaded"); err != nil {
					return err
				}
			}
		}
	}
}

// handleReload re-reads the deck, keeps the viewer as close to their slide
// as the new deck allows, redraws, and flashes a status overlay.
func (p *Presenter) handleReload(ctx context.Context, status string) error {
	if p.reload == nil {
		return nil
	}

	fresh, err := p.reload(ctx)
	if err != nil {
		// A half-saved file parses badly mid-edit; keep showing the old
		// deck and flag the failure instead of dying.
		return p.renderer.RenderOverlay("reload failed", p.theme.TitleAccent)
	}

	index := p.presentation.CurrentIndex
	if index >= fresh.SlideCount() {
		index = fresh.SlideCount() - 1
	}
	fresh.CurrentIndex = index
	p.presentation = fresh

	if err := p.renderer.RenderSlide(p.presentation, p.theme); err != nil {
		return err
	}
	return p.renderer.RenderOverlay(status, p.theme.FooterAccent)
}

// keyEvent carries one decoded key or a read failure
type keyEvent struct {
	key Key
	err error
}

// readKeys reads raw input chunks off the terminal and decodes them on a
// channel. The goroutine exits when the input reader fails or the context
// is canceled; a Read blocked on a silent terminal simply dies with the
// process.
func readKeys(ctx context.Context, input io.Reader) <-chan keyEvent {
	events := make(chan keyEvent)

	go func() {
		buf := make([]byte, 8)
		for {
			n, err := input.Read(buf)
			if err != nil {
				select {
				case events <- keyEvent{err: err}:
				case <-ctx.Done():
				}
				return
			}

			key := decodeKey(buf[:n])
			if key == KeyNone {
				continue
			}

			select {
			case events <- keyEvent{key: key}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events
}
