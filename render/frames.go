package render

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvspread/sketch"
)

// Opener returns the destination for frame i. Frames closes it.
type Opener func(i int) (io.WriteCloser, error)

// Frames renders every snapshot concurrently, at most GOMAXPROCS at a
// time. The first failure cancels frames that have not started yet.
func (r *SVG) Frames(ctx context.Context, snaps []sketch.Snapshot, open Opener) error {
	if len(snaps) == 0 {
		return ErrNoFrames
	}
	if open == nil {
		return ErrNilOpener
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range snaps {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, err := open(i)
			if err != nil {
				return fmt.Errorf("render: open frame %d: %w", i, err)
			}
			if err := r.Frame(w, snaps[i]); err != nil {
				_ = w.Close()
				return err
			}
			if err := w.Close(); err != nil {
				return fmt.Errorf("render: close frame %d: %w", i, err)
			}

			return nil
		})
	}

	return g.Wait()
}
