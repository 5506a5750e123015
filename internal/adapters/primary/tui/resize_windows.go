//go:build windows

package tui

import "context"

// notifyResize is a no-op on Windows: there is no SIGWINCH, so frames only
// pick up new dimensions on the next keypress-triggered render.
func notifyResize(ctx context.Context) <-chan struct{} {
	return make(chan struct{})
}
