package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/campusnav/tsp"
)

// BenchmarkExact12 measures Held–Karp at the default exact threshold.
func BenchmarkExact12(b *testing.B) {
	d := randomSymmetric(b, rand.New(rand.NewSource(1)), 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Exact(d, true)
	}
}

// BenchmarkHeuristic60 measures nearest neighbour + 2-opt on 60 stops.
func BenchmarkHeuristic60(b *testing.B) {
	d := randomSymmetric(b, rand.New(rand.NewSource(1)), 60)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Solve(d, tsp.WithClosed())
	}
}
