package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/grindlemire/termkit/internal/debug"
	"golang.org/x/sync/errgroup"
)

// Run drives the App until Stop is called, the last toplevel is stopped,
// or ctx is cancelled. One goroutine pumps the reader into the event
// queue; the loop runs events for up to half of each frame, applies
// queued stops, re-delivers continuous presses, and settles the screen.
func (a *App) Run(ctx context.Context) error {
	a.mustBeInitialized("Run")

	g, ctx := errgroup.WithContext(ctx)
	if a.reader != nil {
		g.Go(func() error {
			a.readInputEvents(ctx)
			return nil
		})
	}
	g.Go(func() error {
		defer a.Stop()
		return a.loop(ctx)
	})
	return g.Wait()
}

func (a *App) loop(ctx context.Context) error {
	if err := a.Settle(); err != nil {
		return err
	}

	for !a.stopped.Load() {
		frameStart := time.Now()

		// Process events for up to half the frame budget
		eventDeadline := frameStart.Add(a.frameDuration / 2)
	events:
		for time.Now().Before(eventDeadline) {
			select {
			case handler := <-a.eventQueue:
				handler()
			case <-a.stopCh:
				return nil
			case <-ctx.Done():
				return nil
			default:
				break events
			}
		}

		a.applyStops()
		if a.stopped.Load() {
			return nil
		}
		a.tickContinuousPress(time.Now())
		if err := a.Settle(); err != nil {
			return fmt.Errorf("settle: %w", err)
		}

		// Sleep for remaining frame time to maintain consistent framerate
		if elapsed := time.Since(frameStart); elapsed < a.frameDuration {
			select {
			case <-time.After(a.frameDuration - elapsed):
			case <-a.stopCh:
				return nil
			case <-ctx.Done():
				return nil
			}
		}
	}
	return nil
}

// readInputEvents polls the reader and queues each event for the loop.
func (a *App) readInputEvents(ctx context.Context) {
	for {
		select {
		case <-a.stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		event, ok := a.reader.PollEvent(a.inputLatency)
		if !ok {
			continue
		}

		ev := event
		select {
		case a.eventQueue <- func() { a.dispatch(ev) }:
		case <-a.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop ends Run. It is idempotent and safe to call from any goroutine.
func (a *App) Stop() {
	a.mustBeInitialized("Stop")
	a.stopOnce.Do(func() {
		a.stopped.Store(true)
		// Interrupt blocking reader before closing stopCh to wake it up
		if interruptible, ok := a.reader.(InterruptibleReader); ok {
			interruptible.Interrupt()
		}
		close(a.stopCh)
		debug.Log("App.Stop")
	})
}

// Stopped reports whether Stop has been called.
func (a *App) Stopped() bool {
	a.mustBeInitialized("Stopped")
	return a.stopped.Load()
}

// QueueUpdate runs fn on the loop goroutine. It is the only App method
// that is safe to call from other goroutines.
func (a *App) QueueUpdate(fn func()) {
	a.mustBeInitialized("QueueUpdate")
	select {
	case a.eventQueue <- fn:
	case <-a.stopCh:
	default:
		debug.Log("App.QueueUpdate: queue full, update dropped")
	}
}
