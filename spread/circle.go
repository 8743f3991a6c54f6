package spread

import "math"

// LinearToCircular maps a position in [0, 1] onto a circle of the given
// radius centred at (cx, cy). Position 0 lies on the positive x axis and
// positions advance counter-clockwise.
//
// Errors:
//   - ErrInvalidArgument if value is outside [0, 1] or radius <= 0.
func LinearToCircular(cx, cy, value, radius float64) (x, y float64, err error) {
	if !(value >= 0 && value <= 1) {
		return 0, 0, invalidf(methodLinearToCircular, "value %g outside [0, 1]", value)
	}
	if !(radius > 0) {
		return 0, 0, invalidf(methodLinearToCircular, "radius %g is not positive", radius)
	}
	theta := 2 * math.Pi * value

	return cx + radius*math.Cos(theta), cy + radius*math.Sin(theta), nil
}

// SegmentLength returns the chord length between two angles (radians)
// on the unit circle.
func SegmentLength(a, b float64) float64 {
	return math.Hypot(math.Cos(b)-math.Cos(a), math.Sin(b)-math.Sin(a))
}
