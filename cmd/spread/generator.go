package main

import (
	"fmt"

	"github.com/katalvlaran/lvspread/sketch"
)

// Generator names accepted by --generator.
const (
	generatorSpread = "spread"
	generatorStride = "stride"
)

// generatorFlags selects the position source of a tracker.
type generatorFlags struct {
	name   string
	stride float64
}

func (g *generatorFlags) tracker() (*sketch.Tracker, error) {
	switch g.name {
	case generatorSpread:
		return sketch.NewTracker(), nil
	case generatorStride:
		if !(g.stride > 0 && g.stride < 1) {
			return nil, fmt.Errorf("--stride %g outside (0,1)", g.stride)
		}
		return sketch.NewTracker(sketch.WithStride(g.stride)), nil
	}

	return nil, fmt.Errorf("unknown generator %q (want %s or %s)", g.name, generatorSpread, generatorStride)
}
