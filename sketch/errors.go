package sketch

import "errors"

var (
	// ErrBadConfig indicates a Config field outside its documented range.
	ErrBadConfig = errors.New("sketch: invalid config")

	// ErrBadPosition indicates a generator produced a value outside [0, 1).
	ErrBadPosition = errors.New("sketch: generator returned position outside [0,1)")
)
