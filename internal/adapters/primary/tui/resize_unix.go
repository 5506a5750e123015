//go:build !windows

package tui

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize converts SIGWINCH into redraw ticks. The channel holds one
// pending tick; bursts of resize signals coalesce into a single redraw.
func notifyResize(ctx context.Context) <-chan struct{} {
	ticks := make(chan struct{}, 1)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)

	go func() {
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}
	}()

	return ticks
}
