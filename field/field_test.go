package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcelomata/gridflow/field"
)

// TestInside verifies the signed distance convention: zero and negative
// values are inside.
func TestInside(t *testing.T) {
	require.True(t, field.Inside(-1))
	require.True(t, field.Inside(0))
	require.False(t, field.Inside(1e-12))
}

// TestFractionInside covers the three branches: fully inside, fully
// outside and the straddling interpolation.
func TestFractionInside(t *testing.T) {
	require.Equal(t, 1.0, field.FractionInside(-1, -2))
	require.Equal(t, 0.0, field.FractionInside(0.5, 3))

	// Surface crosses a quarter of the way into the segment; the
	// fraction is symmetric in the argument order.
	require.InDelta(t, 0.25, field.FractionInside(-1, 3), 1e-12)
	require.InDelta(t, 0.25, field.FractionInside(3, -1), 1e-12)
}

// TestSphere_Sample checks distances inside, on and outside the surface.
func TestSphere_Sample(t *testing.T) {
	s := field.Sphere{Center: []float64{1, 1}, Radius: 2}

	require.InDelta(t, -2.0, s.Sample([]float64{1, 1}), 1e-12)
	require.InDelta(t, 0.0, s.Sample([]float64{3, 1}), 1e-12)
	require.InDelta(t, 1.0, s.Sample([]float64{4, 1}), 1e-12)
}

// TestBox_Sample checks the exact box distance inside, at a face and at
// a corner.
func TestBox_Sample(t *testing.T) {
	b := field.Box{Min: []float64{0, 0}, Max: []float64{2, 2}}

	require.InDelta(t, -0.5, b.Sample([]float64{0.5, 1}), 1e-12)
	require.InDelta(t, 1.0, b.Sample([]float64{3, 1}), 1e-12)
	// Corner distance is Euclidean.
	require.InDelta(t, math.Sqrt(2), b.Sample([]float64{3, 3}), 1e-12)
}

// TestCombined_Modes verifies min as union, max as intersection and the
// empty-set convention.
func TestCombined_Modes(t *testing.T) {
	a := field.Sphere{Center: []float64{0}, Radius: 1}
	b := field.Sphere{Center: []float64{3}, Radius: 1}

	union := field.Combined{Fields: []field.ScalarField{a, b}, Mode: field.CombineMin}
	require.True(t, field.Inside(union.Sample([]float64{0})))
	require.True(t, field.Inside(union.Sample([]float64{3})))
	require.False(t, field.Inside(union.Sample([]float64{1.5})))

	inter := field.Combined{Fields: []field.ScalarField{a, b}, Mode: field.CombineMax}
	require.False(t, field.Inside(inter.Sample([]float64{0})))
	require.False(t, field.Inside(inter.Sample([]float64{3})))

	empty := field.Combined{Mode: field.CombineMin}
	require.True(t, math.IsInf(empty.Sample([]float64{0}), 1))
}

// TestConstants verifies the trivial field implementations.
func TestConstants(t *testing.T) {
	c := field.ConstantScalar{Value: 7}
	require.Equal(t, 7.0, c.Sample([]float64{1, 2, 3}))

	v := field.ConstantVector{Value: []float64{1, -2}}
	dst := make([]float64, 2)
	v.SampleInto([]float64{9, 9}, dst)
	require.Equal(t, []float64{1, -2}, dst)
}
