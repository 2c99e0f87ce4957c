// Package field core types: sampling interfaces and constant fields.
package field

// ScalarField is anything that can be point-sampled for a single value at a
// continuous position. Implementations must be safe for concurrent Sample
// calls; solver stages fan sampling out across goroutines.
type ScalarField interface {
	// Sample returns the field value at position p.
	Sample(p []float64) float64
}

// VectorField is anything that can be point-sampled for a vector value.
// SampleInto writes the value into dst (len(dst) = axis count) instead of
// returning a fresh slice, so hot loops can reuse scratch.
// Implementations must be safe for concurrent SampleInto calls.
type VectorField interface {
	// SampleInto writes the field value at position p into dst.
	SampleInto(p, dst []float64)
}

// ConstantScalar is a spatially uniform ScalarField.
type ConstantScalar struct {
	Value float64
}

// Sample returns the constant value regardless of position.
func (c ConstantScalar) Sample(_ []float64) float64 { return c.Value }

// ConstantVector is a spatially uniform VectorField.
type ConstantVector struct {
	Value []float64
}

// SampleInto copies the constant vector into dst. If Value is shorter than
// dst the remaining components are zeroed.
func (c ConstantVector) SampleInto(_, dst []float64) {
	n := copy(dst, c.Value)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// Inside reports whether a signed-distance value lies inside the region
// (the fixed ≤ 0 convention).
func Inside(phi float64) bool { return phi <= 0 }

// FractionInside returns the fraction of the segment between two
// signed-distance samples that lies inside the region, assuming the field
// varies linearly between them. Used by the fractional boundary policy for
// sub-grid face coverage.
//
//	both ≤ 0 → 1 (fully inside), both > 0 → 0 (fully outside),
//	mixed    → linear root between the samples.
func FractionInside(phi0, phi1 float64) float64 {
	switch {
	case phi0 <= 0 && phi1 <= 0:
		return 1
	case phi0 > 0 && phi1 > 0:
		return 0
	case phi0 <= 0:
		return phi0 / (phi0 - phi1)
	default:
		return phi1 / (phi1 - phi0)
	}
}
