package spread_test

import (
	"testing"

	"github.com/katalvlaran/lvspread/spread"
)

// BenchmarkGenerate_Small benchmarks Generate on low indices.
func BenchmarkGenerate_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := spread.Generate(i & 1023); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_Large benchmarks Generate on 62-bit indices.
func BenchmarkGenerate_Large(b *testing.B) {
	const base = 1<<62 - 12345
	for i := 0; i < b.N; i++ {
		if _, err := spread.Generate(base + i&1023); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// benchmarkUniformity scores the first n positions.
func benchmarkUniformity(b *testing.B, n int) {
	pts, err := spread.Take(n)
	if err != nil {
		b.Fatalf("Take failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := spread.Uniformity(pts); err != nil {
			b.Fatalf("Uniformity failed: %v", err)
		}
	}
}

// BenchmarkUniformity_100 benchmarks Uniformity on 100 points.
func BenchmarkUniformity_100(b *testing.B) { benchmarkUniformity(b, 100) }

// BenchmarkUniformity_1000 benchmarks Uniformity on 1000 points.
func BenchmarkUniformity_1000(b *testing.B) { benchmarkUniformity(b, 1000) }
