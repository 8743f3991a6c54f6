// SPDX-License-Identifier: MIT
// Package: lvspread/spread
//
// metric.go — distribution diagnostics for positions on a circle.
//
// Exposed API:
//   - Distance(a, b)               -> shorter arc on the unit circle, in [0, 0.5]
//   - ArcDistance(a, b, c)         -> shorter arc on a circle of circumference c
//   - Uniformity(points)           -> mean √Distance over all unordered pairs
//   - Concentration(values)        -> share of the mass held by the maximum
//   - Gaps(points)                 -> arcs between neighbours, summing to 1
//
// Determinism:
//   - Fixed i<j traversal; the same input slice always yields the same bits.
//   - Reordering the input changes only the summation order, so results
//     agree up to float64 rounding.

package spread

import (
	"math"
	"sort"
)

// halfTurn is the largest possible circular distance on the unit circle.
const halfTurn = 0.5

// Distance returns the shorter circular distance between two positions,
// min(|a-b|, 1-|a-b|). It is symmetric and lies in [0, 0.5] for
// positions in [0, 1].
func Distance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d >= halfTurn {
		return 1 - d
	}

	return d
}

// ArcDistance is Distance on a circle of the given circumference.
//
// Errors:
//   - ErrInvalidArgument if circumference <= 0.
func ArcDistance(a, b, circumference float64) (float64, error) {
	if !(circumference > 0) {
		return 0, invalidf(methodArcDistance, "circumference %g is not positive", circumference)
	}
	d := math.Abs(a - b)
	if d >= circumference/2 {
		return circumference - d, nil
	}

	return d, nil
}

// Uniformity scores how evenly points cover the circle: the mean of
// √Distance(pᵢ, pⱼ) over every unordered pair i < j, i.e.
//
//	2 · Σ √d(i,j) / (n · (n-1))
//
// The square root favours sets where most pairs are well separated over
// sets with a few wide gaps and many tight clusters. Two antipodal
// points score √0.5, the maximum. A single point scores 0.
//
// Errors:
//   - ErrInvalidArgument if points is empty.
//
// Complexity: O(n²) time, O(1) memory.
func Uniformity(points []float64) (float64, error) {
	n := len(points)
	if n == 0 {
		return 0, invalidf(methodUniformity, "no points")
	}
	if n == 1 {
		return 0, nil
	}

	var sum float64
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			sum += math.Sqrt(Distance(points[i], points[j]))
		}
	}

	return 2 * sum / float64(n*(n-1)), nil
}

// Concentration measures how much of the total mass of values is held by
// the single largest value, normalised against the average:
//
//	(max - avg) / (sum - avg)
//
// Edge cases: empty input → 0, one value → 1, sum ≤ avg (all zeros) → 0.
//
// Errors:
//   - ErrInvalidArgument if any value is negative or NaN.
func Concentration(values []float64) (float64, error) {
	for i, v := range values {
		if !(v >= 0) {
			return 0, invalidf(methodConcentration, "values[%d] = %g is negative", i, v)
		}
	}
	n := len(values)
	switch n {
	case 0:
		return 0, nil
	case 1:
		return 1, nil
	}

	var sum float64
	maxValue := values[0]
	for _, v := range values {
		sum += v
		if v > maxValue {
			maxValue = v
		}
	}
	avg := sum / float64(n)
	quotient := sum - avg
	if quotient <= 0 {
		return 0, nil
	}

	return (maxValue - avg) / quotient, nil
}

// Gaps returns the arcs between circularly adjacent positions, in
// ascending position order, the last one wrapping through 0. They sum
// to 1; a single point leaves one full-turn gap. Feeding Gaps into
// Concentration tells how much of the empty circle sits in the widest gap.
//
// Errors:
//   - ErrInvalidArgument if points is empty or holds a value outside [0, 1).
func Gaps(points []float64) ([]float64, error) {
	if len(points) == 0 {
		return nil, invalidf(methodGaps, "no points")
	}
	sorted := make([]float64, len(points))
	for i, p := range points {
		if !(p >= 0 && p < 1) {
			return nil, invalidf(methodGaps, "points[%d] = %g outside [0, 1)", i, p)
		}
		sorted[i] = p
	}
	sort.Float64s(sorted)

	gaps := make([]float64, len(sorted))
	for i := 0; i < len(sorted)-1; i++ {
		gaps[i] = sorted[i+1] - sorted[i]
	}
	gaps[len(gaps)-1] = 1 - sorted[len(sorted)-1] + sorted[0]

	return gaps, nil
}
