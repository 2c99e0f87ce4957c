package grid_test

import (
	"math/rand"
	"testing"

	"github.com/marcelomata/gridflow/grid"
)

// BenchmarkSampler measures clamped multilinear interpolation on a
// 128×128 grid with random probe positions.
// Complexity: O(2^d) per sample.
func BenchmarkSampler(b *testing.B) {
	e, err := grid.NewUniformExtent([]int{128, 128}, 1)
	if err != nil {
		b.Fatalf("setup extent: %v", err)
	}
	g := grid.NewScalarGrid(e)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < g.Len(); i++ {
		g.Set(i, rng.Float64())
	}
	probes := make([][]float64, 1024)
	for i := range probes {
		probes[i] = []float64{rng.Float64() * 128, rng.Float64() * 128}
	}
	s := g.Sampler()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Sample(probes[i%len(probes)])
	}
}

// BenchmarkDivergence measures the staggered divergence sweep over a
// 256×256 velocity field.
// Complexity: O(d) per cell.
func BenchmarkDivergence(b *testing.B) {
	e, err := grid.NewUniformExtent([]int{256, 256}, 1)
	if err != nil {
		b.Fatalf("setup extent: %v", err)
	}
	f := grid.NewFaceGrid(e)
	rng := rand.New(rand.NewSource(7))
	for a := 0; a < 2; a++ {
		c := f.Component(a)
		for i := 0; i < c.Len(); i++ {
			c.Set(i, rng.Float64())
		}
	}
	idx := make([]int, 2)

	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		e.Unflatten(i%e.Len(), idx)
		sink += f.DivergenceAt(idx)
	}
	_ = sink
}
