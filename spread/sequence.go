// SPDX-License-Identifier: MIT
// Package: lvspread/spread
//
// sequence.go — the index → position generator and its integer helpers.
//
// Algorithm (for index x > 0):
//  1. s = 0
//  2. s += Weight(x)          // 1 / 2^bitlen(x)
//  3. x  = Reflect(x - 1)     // complement of x-1 within its bit-length
//  4. repeat from 2 while x > 0
//
// Reflect(y) < 2^(bitlen(y)-1), so the bit-length strictly drops every
// round: the loop runs at most bits.Len(index) times and every Weight
// is a distinct power of two, which keeps s below 1.

package spread

import (
	"iter"
	"math"
	"math/bits"
)

// Generate returns the index-th position of the spread sequence, a
// fractional turn in [0, 1).
//
// Generate(0) is exactly 0. Results are exact for indices below 2^53;
// above that the position is truncated (never rounded up) to float64
// precision.
//
// Errors:
//   - ErrInvalidArgument if index < 0.
//
// Complexity: O(bits.Len(index)) time, O(1) memory.
func Generate(index int) (float64, error) {
	if index < 0 {
		return 0, invalidf(methodGenerate, "index %d is negative", index)
	}

	return position(uint64(index)), nil
}

// Weight returns the step size contributed by x: 0 for x == 0, otherwise
// the reciprocal of the smallest power of two strictly greater than x.
//
// Errors:
//   - ErrInvalidArgument if x < 0.
func Weight(x int) (float64, error) {
	if x < 0 {
		return 0, invalidf(methodWeight, "x %d is negative", x)
	}
	if x == 0 {
		return 0, nil
	}

	return math.Ldexp(1, -bits.Len64(uint64(x))), nil
}

// Reflect returns the bit-complement of x within the smallest enclosing
// power-of-two range, 2^bitlen(x) - x - 1. Reflect(0) is 0.
//
// Errors:
//   - ErrInvalidArgument if x < 0.
func Reflect(x int) (int, error) {
	if x < 0 {
		return 0, invalidf(methodReflect, "x %d is negative", x)
	}

	return int(reflect(uint64(x))), nil
}

// Rounds reports how many Weight/Reflect rounds Generate performs for
// index. It is 0 for index 0 and never exceeds bits.Len(index).
//
// Errors:
//   - ErrInvalidArgument if index < 0.
func Rounds(index int) (int, error) {
	if index < 0 {
		return 0, invalidf(methodRounds, "index %d is negative", index)
	}
	var n int
	for x := uint64(index); x > 0; x = reflect(x - 1) {
		n++
	}

	return n, nil
}

// Take returns the first n positions, Generate(0) … Generate(n-1).
//
// Errors:
//   - ErrInvalidArgument if n < 0.
func Take(n int) ([]float64, error) {
	if n < 0 {
		return nil, invalidf(methodTake, "n %d is negative", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = position(uint64(i))
	}

	return out, nil
}

// All yields (index, position) pairs for index = 0, 1, 2, … until the
// consumer stops ranging.
func All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := 0; i >= 0; i++ {
			if !yield(i, position(uint64(i))) {
				return
			}
		}
	}
}

// Sequence walks the spread sequence over consecutive indices.
// A Sequence is not safe for concurrent use; the free functions are.
type Sequence struct {
	start int // first index handed out after NewSequence/Reset
	next  int // index returned by the following Next call
}

// NewSequence returns a cursor positioned at index 0, or at the index
// given by WithStart.
func NewSequence(opts ...SequenceOption) *Sequence {
	s := &Sequence{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Next returns the current index with its position and advances the cursor.
func (s *Sequence) Next() (index int, pos float64) {
	index = s.next
	pos = position(uint64(index))
	s.next++

	return index, pos
}

// Index reports the index the next call to Next will return.
func (s *Sequence) Index() int { return s.next }

// Reset rewinds the cursor to its start index.
func (s *Sequence) Reset() { s.next = s.start }

// position is Generate without validation.
func position(x uint64) float64 {
	var acc uint64
	for x > 0 {
		// Weight(x) = 2^-len, stored at bit (64 - len).
		acc |= uint64(1) << (fracBits - bits.Len64(x))
		x = reflect(x - 1)
	}

	return float64(acc>>droppedBits) * unitInMantissa
}

// reflect flips every bit of x below its leading one (inclusive).
func reflect(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	mask := uint64(1)<<bits.Len64(x) - 1 // all ones when Len64 == 64

	return mask ^ x
}
