// Package render_test checks SVG frame output.
package render_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/katalvlaran/lvspread/render"
	"github.com/katalvlaran/lvspread/sketch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepped returns a snapshot after n tracker steps.
func stepped(t *testing.T, n int) sketch.Snapshot {
	t.Helper()
	tr := sketch.NewTracker()
	for i := 0; i < n; i++ {
		_, err := tr.Step()
		require.NoError(t, err)
	}

	return tr.Snapshot()
}

// smallConfig is a 200×160 canvas with a short trail.
func smallConfig() sketch.Config {
	cfg := sketch.DefaultConfig()
	cfg.Width, cfg.Height = 200, 160
	cfg.Trail = 4
	cfg.Segments = 16

	return cfg
}

// TestFrame_Empty renders a snapshot with no positions.
func TestFrame_Empty(t *testing.T) {
	r, err := render.NewSVG(smallConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Frame(&buf, stepped(t, 0)))
	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `width="200"`)
	assert.Contains(t, out, "<polygon")
	assert.Contains(t, out, "<title>spread</title>")
	assert.NotContains(t, out, "<circle", "no marker before the first step")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

// TestFrame_Elements counts marker, trail and line elements.
func TestFrame_Elements(t *testing.T) {
	r, err := render.NewSVG(smallConfig(), render.WithTitle("demo"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Frame(&buf, stepped(t, 10)))
	out := buf.String()

	// 4 trail dots + 1 marker.
	assert.Equal(t, 5, strings.Count(out, "<circle"))
	// tick + previous→current line.
	assert.Equal(t, 2, strings.Count(out, "<line"))
	assert.Contains(t, out, "stroke-opacity:0.50")
	assert.Contains(t, out, "<title>demo</title>")
	assert.Contains(t, out, "10, distance=")
	assert.Contains(t, out, "fill:#ffffff;fill-opacity:1.00", "newest trail point uses the head colour")
}

// TestFrame_NoStatusStrip omits the label when the strip height is zero.
func TestFrame_NoStatusStrip(t *testing.T) {
	cfg := smallConfig()
	cfg.StatusHeight = 0
	r, err := render.NewSVG(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Frame(&buf, stepped(t, 3)))
	assert.NotContains(t, buf.String(), "<text")
}

// TestFrame_MarkerPosition checks position 0 lands on the right of the ring.
func TestFrame_MarkerPosition(t *testing.T) {
	r, err := render.NewSVG(smallConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Frame(&buf, stepped(t, 1)))
	// centre (100,80), radius 64: position 0 → (164, 160-80).
	assert.Contains(t, buf.String(), `<circle cx="164" cy="80" r="10"`)
}

// TestNewSVG_BadConfig propagates config validation.
func TestNewSVG_BadConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Segments = 1
	_, err := render.NewSVG(cfg)
	assert.ErrorIs(t, err, sketch.ErrBadConfig)
}

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestFrame_WriteError surfaces writer failures on flush.
func TestFrame_WriteError(t *testing.T) {
	r, err := render.NewSVG(smallConfig())
	require.NoError(t, err)
	assert.Error(t, r.Frame(failWriter{}, stepped(t, 2)))
}

// nopCloser collects a frame in memory.
type nopCloser struct{ bytes.Buffer }

func (*nopCloser) Close() error { return nil }

// TestFrames renders several snapshots concurrently.
func TestFrames(t *testing.T) {
	r, err := render.NewSVG(smallConfig())
	require.NoError(t, err)

	snaps := []sketch.Snapshot{stepped(t, 1), stepped(t, 2), stepped(t, 3)}
	var mu sync.Mutex
	outs := make(map[int]*nopCloser)
	err = r.Frames(context.Background(), snaps, func(i int) (io.WriteCloser, error) {
		w := &nopCloser{}
		mu.Lock()
		outs[i] = w
		mu.Unlock()
		return w, nil
	})
	require.NoError(t, err)
	require.Len(t, outs, 3)
	for i := range snaps {
		assert.Contains(t, outs[i].String(), "<svg")
	}

	assert.ErrorIs(t, r.Frames(context.Background(), nil, nil), render.ErrNoFrames)
	assert.ErrorIs(t, r.Frames(context.Background(), snaps, nil), render.ErrNilOpener)

	boom := errors.New("boom")
	err = r.Frames(context.Background(), snaps, func(int) (io.WriteCloser, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
}

// TestPalette checks parsing and the blend end points.
func TestPalette(t *testing.T) {
	p, err := render.ParsePalette("#ff0000", "#0000ff")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", p.At(0).Hex())
	assert.Equal(t, "#0000ff", p.At(1).Hex())
	assert.Equal(t, "#ff0000", p.At(-1).Hex())
	mid := p.At(0.5).Hex()
	assert.NotEqual(t, "#ff0000", mid)
	assert.NotEqual(t, "#0000ff", mid)

	_, err = render.ParsePalette("red", "#000000")
	assert.ErrorIs(t, err, render.ErrBadColor)
	_, err = render.ParsePalette("#000000", "#zzzzzz")
	assert.ErrorIs(t, err, render.ErrBadColor)
}
