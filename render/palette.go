package render

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette colours the trail: the newest trail point uses Head, the oldest
// Tail, with points in between blended in CIE-L*a*b* space.
type Palette struct {
	Head colorful.Color
	Tail colorful.Color
}

// Default trail colours.
const (
	defaultHead = "#ffffff"
	defaultTail = "#1d3557"
)

// DefaultPalette fades from white to a dark blue.
func DefaultPalette() Palette {
	p, _ := ParsePalette(defaultHead, defaultTail)

	return p
}

// ParsePalette builds a palette from two "#rrggbb" colours.
func ParsePalette(head, tail string) (Palette, error) {
	h, err := colorful.Hex(head)
	if err != nil {
		return Palette{}, fmt.Errorf("render: head colour %q: %w", head, ErrBadColor)
	}
	t, err := colorful.Hex(tail)
	if err != nil {
		return Palette{}, fmt.Errorf("render: tail colour %q: %w", tail, ErrBadColor)
	}

	return Palette{Head: h, Tail: t}, nil
}

// At returns the colour for age in [0, 1], 0 being the newest point.
func (p Palette) At(age float64) colorful.Color {
	switch {
	case age <= 0:
		return p.Head
	case age >= 1:
		return p.Tail
	}

	return p.Head.BlendLab(p.Tail, age).Clamped()
}
