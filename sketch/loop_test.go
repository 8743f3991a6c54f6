package sketch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/katalvlaran/lvspread/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Frames runs a bounded number of ticks.
func TestRun_Frames(t *testing.T) {
	tr := sketch.NewTracker()
	var seen []int
	err := sketch.Run(context.Background(), tr, time.Millisecond, 5, func(s sketch.Snapshot) error {
		seen = append(seen, s.Iteration)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, seen)
}

// TestRun_Cancel stops an unbounded run through the context.
func TestRun_Cancel(t *testing.T) {
	tr := sketch.NewTracker()
	ctx, cancel := context.WithCancel(context.Background())
	err := sketch.Run(ctx, tr, time.Millisecond, 0, func(s sketch.Snapshot) error {
		if s.Iteration == 3 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, tr.Stats().Iteration)
}

// TestRun_Errors covers a failing draw and a bad interval.
func TestRun_Errors(t *testing.T) {
	boom := errors.New("boom")
	err := sketch.Run(context.Background(), sketch.NewTracker(), time.Millisecond, 3,
		func(sketch.Snapshot) error { return boom })
	assert.ErrorIs(t, err, boom)

	err = sketch.Run(context.Background(), sketch.NewTracker(), 0, 1, nil)
	assert.ErrorIs(t, err, sketch.ErrBadConfig)
}
