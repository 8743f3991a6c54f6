// SPDX-License-Identifier: MIT
// Package: lvspread/render
//
// svg.go — one SVG document per sketch snapshot.
//
// Coordinates:
//   • Positions map to the plane with spread.LinearToCircular (counter-
//     clockwise from the positive x axis, y up).
//   • SVG's y axis points down, so every y is flipped as height - y.
//   • svgo works in integer pixels; coordinates are rounded.

package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/lvspread/sketch"
	"github.com/katalvlaran/lvspread/spread"
)

// Fixed drawing constants.
const (
	tickHalfLength  = 10  // half-length of the zero-angle tick
	trailDotRadius  = 3   // radius of a trail point
	lineOpacity     = 0.5 // previous→current line, 128/255 in the sketch
	labelFontSize   = 16  // status text size in px
	labelInsetX     = 2   // status text left inset
	labelInsetY     = 4   // status text baseline above the bottom edge
	backgroundStyle = "fill:rgb(0,0,0)"
	ringStyle       = "fill:none;stroke:rgb(255,255,255);stroke-width:1"
	tickStyle       = "stroke:rgb(255,255,255);stroke-width:1"
	markerStyle     = "fill:none;stroke:rgb(255,255,255);stroke-width:2"
	stripStyle      = "fill:rgb(10,10,10)"
	labelStyle      = "fill:rgb(255,255,255);font-family:monospace"
)

// SVG renders snapshots onto a canvas described by a sketch.Config.
type SVG struct {
	cfg     sketch.Config
	palette Palette
	title   string
}

// Option customizes an SVG renderer.
type Option func(*SVG)

// WithPalette sets the trail colours.
func WithPalette(p Palette) Option {
	return func(r *SVG) {
		r.palette = p
	}
}

// WithTitle sets the document <title>.
func WithTitle(title string) Option {
	return func(r *SVG) {
		r.title = title
	}
}

// NewSVG validates cfg and returns a renderer.
func NewSVG(cfg sketch.Config, opts ...Option) (*SVG, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	r := &SVG{cfg: cfg, palette: DefaultPalette(), title: "spread"}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// Frame writes snap as a complete SVG document to w.
func (r *SVG) Frame(w io.Writer, snap sketch.Snapshot) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	width, height := r.cfg.Width, r.cfg.Height
	cx, cy := r.cfg.Center()
	radius := r.cfg.Radius()

	canvas.Start(width, height)
	canvas.Title(r.title)
	canvas.Rect(0, 0, width, height, backgroundStyle)

	if err := r.ring(canvas, cx, cy, radius); err != nil {
		return err
	}
	canvas.Line(px(cx+radius-tickHalfLength), r.flip(cy), px(cx+radius+tickHalfLength), r.flip(cy), tickStyle)

	if err := r.trail(canvas, snap, cx, cy, radius); err != nil {
		return err
	}
	if snap.Current != sketch.Undefined {
		tx, ty, err := spread.LinearToCircular(cx, cy, snap.Current, radius)
		if err != nil {
			return fmt.Errorf("render: current position: %w", err)
		}
		if snap.Previous != sketch.Undefined {
			fx, fy, err := spread.LinearToCircular(cx, cy, snap.Previous, radius)
			if err != nil {
				return fmt.Errorf("render: previous position: %w", err)
			}
			canvas.Line(px(fx), r.flip(fy), px(tx), r.flip(ty),
				fmt.Sprintf("stroke:rgb(255,255,255);stroke-opacity:%.2f", lineOpacity))
		}
		canvas.Circle(px(tx), r.flip(ty), px(r.cfg.MarkerRadius), markerStyle)
	}

	if h := r.cfg.StatusHeight; h > 0 {
		canvas.Rect(0, height-h, width, h, stripStyle)
		canvas.Text(labelInsetX, height-labelInsetY, snap.Label(),
			fmt.Sprintf("%s;font-size:%dpx", labelStyle, labelFontSize))
	}
	canvas.End()

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render: write frame %d: %w", snap.Iteration, err)
	}

	return nil
}

// ring draws the main circle as a Segments-sided polygon.
func (r *SVG) ring(canvas *svg.SVG, cx, cy, radius float64) error {
	n := r.cfg.Segments
	xs, ys := make([]int, n), make([]int, n)
	for i := 0; i < n; i++ {
		x, y, err := spread.LinearToCircular(cx, cy, float64(i)/float64(n), radius)
		if err != nil {
			return fmt.Errorf("render: ring: %w", err)
		}
		xs[i], ys[i] = px(x), r.flip(y)
	}
	canvas.Polygon(xs, ys, ringStyle)

	return nil
}

// trail draws up to cfg.Trail positions preceding the current one,
// oldest first so newer points paint over older ones.
func (r *SVG) trail(canvas *svg.SVG, snap sketch.Snapshot, cx, cy, radius float64) error {
	if r.cfg.Trail == 0 || len(snap.Points) < 2 {
		return nil
	}
	end := len(snap.Points) - 1
	start := end - r.cfg.Trail
	if start < 0 {
		start = 0
	}
	span := end - start
	fade := float64(r.cfg.FadeAlpha) / math.MaxUint8

	for i := start; i < end; i++ {
		x, y, err := spread.LinearToCircular(cx, cy, snap.Points[i], radius)
		if err != nil {
			return fmt.Errorf("render: trail point %d: %w", i, err)
		}
		age := float64(end-1-i) / float64(span)
		opacity := math.Max(fade, 1-age)
		canvas.Circle(px(x), r.flip(y), trailDotRadius,
			fmt.Sprintf("fill:%s;fill-opacity:%.2f", r.palette.At(age).Hex(), opacity))
	}

	return nil
}

func (r *SVG) flip(y float64) int { return r.cfg.Height - px(y) }

func px(v float64) int { return int(math.Round(v)) }
