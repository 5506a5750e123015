package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/termdeck/termdeck/internal/domain/ports"
)

// FSNotifyWatcher implements the FileWatcher port on top of OS file change
// notifications. Events are debounced: editors that write-then-rename fire
// several notifications per save, and only the last one matters.
type FSNotifyWatcher struct {
	debounce time.Duration
}

// NewFSNotifyWatcher creates a watcher with the given debounce window
func NewFSNotifyWatcher(debounce time.Duration) *FSNotifyWatcher {
	if debounce <= 0 {
		debounce = 250 * time.Millisecond
	}
	return &FSNotifyWatcher{debounce: debounce}
}

// Watch emits debounced change events for path until the context is
// canceled. The parent directory is watched rather than the file itself so
// atomic saves (write to temp, rename over) keep being observed.
func (w *FSNotifyWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving watch path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	events := make(chan ports.FileChangeEvent)

	go func() {
		defer close(events)
		defer func() { _ = fsw.Close() }()

		var timer *time.Timer
		var pending <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != absPath {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(w.debounce)
				} else {
					timer.Reset(w.debounce)
				}
				pending = timer.C

			case <-pending:
				pending = nil
				select {
				case events <- ports.FileChangeEvent{Path: absPath, Timestamp: time.Now()}:
				case <-ctx.Done():
					return
				}

			case _, ok := <-fsw.Errors:
				if !ok {
					return
				}
				// Watch errors are transient (e.g. overflow); keep watching
			}
		}
	}()

	return events, nil
}

var _ ports.FileWatcher = (*FSNotifyWatcher)(nil)
