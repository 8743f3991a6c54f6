package spread

// SequenceOption customizes a Sequence before its first Next call.
type SequenceOption func(*Sequence)

// WithStart makes the sequence begin at index start instead of 0.
// Panics on a negative start.
func WithStart(start int) SequenceOption {
	if start < 0 {
		panic("spread: WithStart(start<0)")
	}
	return func(s *Sequence) {
		s.start = start
		s.next = start
	}
}

// Fixed-point layout used by Generate.
//
// The running sum is a set of distinct negative powers of two, so it is
// kept as a 64-bit binary fraction (bit 63 = 1/2, bit 0 = 2^-64) and
// converted once, truncating to the 53 bits a float64 can carry.
const (
	fracBits    = 64                  // width of the fixed-point accumulator
	mantissa    = 53                  // float64 significand precision
	droppedBits = fracBits - mantissa // low bits discarded on conversion
)

// unitInMantissa is 2^-53, the value of the lowest kept bit.
var unitInMantissa = 1.0 / float64(uint64(1)<<mantissa)
