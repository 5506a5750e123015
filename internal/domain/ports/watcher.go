package ports

import (
	"context"
	"time"
)

// FileChangeEvent describes a change to a watched deck file
type FileChangeEvent struct {
	Path      string
	Timestamp time.Time
}

// FileWatcher watches a deck file for modifications
type FileWatcher interface {
	// Watch emits debounced change events until the context is canceled.
	// The returned channel is closed when watching stops.
	Watch(ctx context.Context, path string) (<-chan FileChangeEvent, error)
}
