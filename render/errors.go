package render

import "errors"

var (
	// ErrBadColor indicates a colour string that is not "#rrggbb".
	ErrBadColor = errors.New("render: invalid colour")

	// ErrNoFrames indicates Frames was called without snapshots.
	ErrNoFrames = errors.New("render: no frames to render")

	// ErrNilOpener indicates Frames was called without a writer factory.
	ErrNilOpener = errors.New("render: nil frame opener")
)
