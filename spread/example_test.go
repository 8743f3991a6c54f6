package spread_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvspread/spread"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleGenerate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Place eight markers on a ring one at a time. Each new marker lands in
//	the middle of the widest gap left by the previous ones.
//
// Complexity: O(log x) per position.
func ExampleGenerate() {
	for i := 0; i < 8; i++ {
		p, err := spread.Generate(i)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%d:%.3f ", i, p)
	}
	fmt.Println()
	// Output:
	// 0:0.000 1:0.500 2:0.250 3:0.750 4:0.125 5:0.875 6:0.375 7:0.625
}

// ExampleUniformity scores growing prefixes of the sequence.
func ExampleUniformity() {
	for _, n := range []int{2, 8, 64} {
		pts, _ := spread.Take(n)
		u, _ := spread.Uniformity(pts)
		fmt.Printf("n=%d uniformity=%.4f\n", n, u)
	}
	// Output:
	// n=2 uniformity=0.7071
	// n=8 uniformity=0.5199
	// n=64 uniformity=0.4781
}

// ExampleConcentration shows the share held by the largest value.
func ExampleConcentration() {
	c, _ := spread.Concentration([]float64{1, 2, 3})
	fmt.Printf("%.2f\n", c)
	// Output:
	// 0.25
}

// ExampleSequence walks the sequence from a later index.
func ExampleSequence() {
	seq := spread.NewSequence(spread.WithStart(4))
	for k := 0; k < 4; k++ {
		i, p := seq.Next()
		fmt.Printf("%d:%.4f\n", i, p)
	}
	// Output:
	// 4:0.1250
	// 5:0.8750
	// 6:0.3750
	// 7:0.6250
}

// ExampleLinearToCircular shows input validation.
func ExampleLinearToCircular() {
	x, y, _ := spread.LinearToCircular(0, 0, 0.25, 2)
	fmt.Printf("(%.1f, %.1f)\n", x, y)

	_, _, err := spread.LinearToCircular(0, 0, 1.5, 2)
	fmt.Println(errors.Is(err, spread.ErrInvalidArgument))
	// Output:
	// (0.0, 2.0)
	// true
}
