// SPDX-License-Identifier: MIT
// Package: lvspread/spread
//
// errors.go — the single sentinel error of the spread package.
//
// Error policy:
//   • ErrInvalidArgument is the only failure class: a caller broke a
//     precondition (negative index, empty set, out-of-range value).
//   • Functions attach the method name and offending value with %w, so
//     errors.Is(err, ErrInvalidArgument) always holds.
//   • Nothing here panics at runtime; panics are reserved for option
//     constructors (WithStart) receiving meaningless values.

package spread

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates that an input violated the documented
// domain of a function. It is never recovered internally.
var ErrInvalidArgument = errors.New("spread: invalid argument")

// Method names used as error context.
const (
	methodGenerate         = "Generate"
	methodWeight           = "Weight"
	methodReflect          = "Reflect"
	methodRounds           = "Rounds"
	methodTake             = "Take"
	methodUniformity       = "Uniformity"
	methodConcentration    = "Concentration"
	methodGaps             = "Gaps"
	methodArcDistance      = "ArcDistance"
	methodLinearToCircular = "LinearToCircular"
)

// invalidf wraps ErrInvalidArgument with "<method>: <message>" context.
func invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}
