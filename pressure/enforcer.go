package pressure

import (
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
)

// Policy selects how face velocities are reconciled with solid geometry.
type Policy int

const (
	// PolicyBlocked snaps any face whose center lies inside the boundary
	// SDF to the collider velocity. Cheap, first-order.
	PolicyBlocked Policy = iota
	// PolicyFractional blends face and collider velocity by the fraction
	// of the face's dual segment inside the boundary, giving sub-sample
	// resolution of the solid surface.
	PolicyFractional
)

// Enforcer overwrites face velocities covered by solid geometry. A nil
// collider means solids at rest.
type Enforcer struct {
	policy   Policy
	collider field.VectorField
}

// NewEnforcer returns a boundary condition enforcer with the given
// policy. collider may be nil.
func NewEnforcer(policy Policy, collider field.VectorField) *Enforcer {
	return &Enforcer{policy: policy, collider: collider}
}

// Apply rewrites vel in place so faces inside boundarySdf carry the
// collider velocity. Fluid-side faces are untouched.
func (e *Enforcer) Apply(vel *grid.FaceGrid, boundarySdf field.ScalarField) error {
	if vel == nil {
		return ErrNilGrid
	}

	d := vel.Dims()
	for a := 0; a < d; a++ {
		comp := vel.Component(a)
		fe := comp.Extent()
		data := comp.Data()
		half := 0.5 * fe.SpacingAt(a)

		grid.ParallelChunks(0, len(data), func(lo, hi int) {
			idx := make([]int, d)
			p := make([]float64, d)
			cv := make([]float64, d)
			for i := lo; i < hi; i++ {
				fe.Unflatten(i, idx)
				fe.CenterInto(idx, p)

				var frac float64
				switch e.policy {
				case PolicyFractional:
					p[a] -= half
					phi0 := boundarySdf.Sample(p)
					p[a] += 2 * half
					phi1 := boundarySdf.Sample(p)
					p[a] -= half
					frac = field.FractionInside(phi0, phi1)
				default: // PolicyBlocked
					if field.Inside(boundarySdf.Sample(p)) {
						frac = 1
					}
				}
				if frac == 0 {
					continue
				}

				var uc float64
				if e.collider != nil {
					e.collider.SampleInto(p, cv)
					uc = cv[a]
				}
				data[i] = frac*uc + (1-frac)*data[i]
			}
		})
	}

	return nil
}
