package sketch

import (
	"context"
	"fmt"
	"time"
)

// FrameFunc draws one frame from a snapshot.
type FrameFunc func(Snapshot) error

// Run steps t every interval and hands each resulting snapshot to draw,
// the headless stand-in for a window's update/draw schedule.
// It stops after frames ticks (frames <= 0 means until ctx is done) and
// returns ctx.Err() when cancelled early.
func Run(ctx context.Context, t *Tracker, interval time.Duration, frames int, draw FrameFunc) error {
	if interval <= 0 {
		return fmt.Errorf("interval %v must be positive: %w", interval, ErrBadConfig)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for n := 0; frames <= 0 || n < frames; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if _, err := t.Step(); err != nil {
			return err
		}
		if draw != nil {
			if err := draw(t.Snapshot()); err != nil {
				return fmt.Errorf("sketch: draw frame %d: %w", n, err)
			}
		}
	}

	return nil
}
