package field

import "math"

// Sphere is the signed-distance field of a d-dimensional ball:
// negative inside, positive outside, magnitude the exact distance to the
// surface. Center's length fixes the dimensionality.
type Sphere struct {
	Center []float64
	Radius float64
}

// Sample returns |p − Center| − Radius.
// Complexity: O(d).
func (s Sphere) Sample(p []float64) float64 {
	var sum float64
	for a := range s.Center {
		d := p[a] - s.Center[a]
		sum += d * d
	}

	return math.Sqrt(sum) - s.Radius
}

// Box is the signed-distance field of an axis-aligned box spanning
// [Min, Max] per axis. Exact outside, exact inside for the nearest-face
// metric.
type Box struct {
	Min []float64
	Max []float64
}

// Sample returns the signed distance from p to the box surface.
// Complexity: O(d).
func (b Box) Sample(p []float64) float64 {
	// Distance per axis from the box interior; q[a] > 0 means outside
	// along that axis. Outside distance is the norm of the positive parts;
	// inside distance is the largest (least negative) per-axis excess.
	var outside float64
	maxInside := math.Inf(-1)
	for a := range b.Min {
		c := 0.5 * (b.Min[a] + b.Max[a])
		h := 0.5 * (b.Max[a] - b.Min[a])
		q := math.Abs(p[a]-c) - h
		if q > 0 {
			outside += q * q
		}
		if q > maxInside {
			maxInside = q
		}
	}
	if outside > 0 {
		return math.Sqrt(outside)
	}

	return maxInside
}

// CombineMode selects how Combined folds its member fields.
type CombineMode int

const (
	// CombineMin takes the pointwise minimum: the union of inside regions.
	CombineMin CombineMode = iota
	// CombineMax takes the pointwise maximum: the intersection of inside regions.
	CombineMax
)

// Combined folds a sequence of scalar fields with a combine rule. With
// signed-distance members, CombineMin yields the union shape and CombineMax
// the intersection. An empty Combined samples +Inf (nothing inside).
type Combined struct {
	Fields []ScalarField
	Mode   CombineMode
}

// Sample folds the member samples at p under the combine rule.
// Complexity: O(d·k) for k member fields.
func (c Combined) Sample(p []float64) float64 {
	if len(c.Fields) == 0 {
		return math.Inf(1)
	}
	acc := c.Fields[0].Sample(p)
	for _, f := range c.Fields[1:] {
		v := f.Sample(p)
		if (c.Mode == CombineMin && v < acc) || (c.Mode == CombineMax && v > acc) {
			acc = v
		}
	}

	return acc
}
