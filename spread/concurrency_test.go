package spread_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvspread/spread"
	"github.com/stretchr/testify/require"
)

// TestConcurrentGenerate runs Generate and Uniformity from many goroutines
// and compares against a sequential reference.
func TestConcurrentGenerate(t *testing.T) {
	const workers = 16
	const n = 512
	want, err := spread.Take(n)
	require.NoError(t, err)
	wantU, err := spread.Uniformity(want)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			got := make([]float64, n)
			for i := range got {
				p, err := spread.Generate(i)
				require.NoError(t, err)
				got[i] = p
			}
			require.Equal(t, want, got)
			u, err := spread.Uniformity(got)
			require.NoError(t, err)
			require.Equal(t, wantU, u)
		}()
	}
	wg.Wait()
}
