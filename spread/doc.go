// Package spread generates a deterministic low-discrepancy sequence of
// positions on a circle and scores how evenly a set of such positions
// covers the circumference.
//
// 🚀 What is a spread sequence?
//
//	Index x ∈ {0, 1, 2, …} is mapped to a fractional turn in [0, 1).
//	Every new position lands as far as possible from the ones already
//	produced, so any prefix of the sequence stays close to uniform
//	without knowing the final length in advance:
//
//	  x:        0    1    2     3     4      5      6      7
//	  position: 0    .5   .25   .75   .125   .875   .375   .625
//
// ✨ Key features:
//   - Generate: pure index → position mapping, callable in any order
//   - Weight / Reflect: the two integer transforms driving Generate,
//     implemented with bit-length arithmetic (no floating-point logs)
//   - Sequence: a cursor over consecutive indices, plus Take and All
//   - Uniformity: mean √(circular distance) over all unordered pairs
//   - Concentration: share of the total mass held by the maximum
//   - LinearToCircular / SegmentLength: mapping positions to the plane
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvspread/spread"
//
//	points, err := spread.Take(64)
//	if err != nil {
//	  // only ErrInvalidArgument is ever returned
//	}
//	u, _ := spread.Uniformity(points)
//
// Errors:
//
//	Every contract violation (negative index, empty point set, value
//	outside [0,1], non-positive radius, negative mass) is reported as
//	ErrInvalidArgument wrapped with the method name; match it with
//	errors.Is.
//
// Performance:
//
//   - Generate: O(bits.Len(x)) time, O(1) memory
//   - Uniformity: O(n²) time, O(1) memory
//
// All functions are pure and safe for concurrent use.
package spread
