package grid

import "math"

// FaceGrid stores a vector field in the staggered (MAC) layout: component
// a lives at the centers of faces normal to axis a, so it has one extra
// sample along its own axis and sits half a spacing off the cell centers.
// Each component is itself a ScalarGrid over its face lattice, which lets
// marker building and diffusion reuse the collocated machinery per
// component.
type FaceGrid struct {
	extent Extent
	comps  []*ScalarGrid
}

// NewFaceGrid allocates a zero-filled face-centered grid over the given
// cell extent.
func NewFaceGrid(e Extent) *FaceGrid {
	d := e.Dims()
	comps := make([]*ScalarGrid, d)
	for a := 0; a < d; a++ {
		comps[a] = NewScalarGrid(e.faceExtent(a))
	}

	return &FaceGrid{extent: e, comps: comps}
}

// Extent returns the cell lattice the grid is staggered against.
func (g *FaceGrid) Extent() Extent { return g.extent }

// Dims returns the axis count.
func (g *FaceGrid) Dims() int { return len(g.comps) }

// Component returns the ScalarGrid holding component a's face samples.
// The returned grid shares storage with g.
func (g *FaceGrid) Component(a int) *ScalarGrid { return g.comps[a] }

// Fill sets every face sample of every component to v.
func (g *FaceGrid) Fill(v float64) {
	for _, c := range g.comps {
		c.Fill(v)
	}
}

// CopyFrom copies src's face samples into g. Returns ErrNilGrid or
// ErrExtentMismatch when the grids do not describe the same lattice.
func (g *FaceGrid) CopyFrom(src *FaceGrid) error {
	if src == nil {
		return ErrNilGrid
	}
	if !g.extent.Equal(src.extent) {
		return ErrExtentMismatch
	}
	for a, c := range g.comps {
		if err := c.CopyFrom(src.comps[a]); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns an independent deep copy of the grid.
func (g *FaceGrid) Clone() *FaceGrid {
	out := &FaceGrid{extent: g.extent, comps: make([]*ScalarGrid, len(g.comps))}
	for a, c := range g.comps {
		out.comps[a] = c.Clone()
	}

	return out
}

// Resize rebinds the grid to a new cell extent, reusing each component's
// backing array when capacity suffices. Values are zeroed.
func (g *FaceGrid) Resize(e Extent) {
	g.extent = e
	for a, c := range g.comps {
		c.Resize(e.faceExtent(a))
	}
}

// SampleInto implements field.VectorField: each component is sampled on
// its own face lattice with clamped multilinear interpolation. Safe for
// concurrent use; use VectorSampler for allocation-free hot loops.
func (g *FaceGrid) SampleInto(p, dst []float64) {
	for a, c := range g.comps {
		dst[a] = c.Sample(p)
	}
}

// VectorSampler returns a reusable sampler bound to g. Not safe for
// concurrent use; create one per worker.
func (g *FaceGrid) VectorSampler() *VectorSampler {
	s := &VectorSampler{comps: make([]*Sampler, len(g.comps))}
	for a, c := range g.comps {
		s.comps[a] = c.Sampler()
	}

	return s
}

// VectorSampler performs per-component interpolation on a FaceGrid
// without per-call allocation. Not safe for concurrent use.
type VectorSampler struct {
	comps []*Sampler
}

// SampleInto writes the interpolated vector at position p into dst.
func (s *VectorSampler) SampleInto(p, dst []float64) {
	for a, c := range s.comps {
		dst[a] = c.Sample(p)
	}
}

// DivergenceAt returns the discrete divergence at cell idx: the staggered
// central difference Σ_a (u_a(idx+e_a) − u_a(idx)) / h_a. idx is restored
// before returning.
// Complexity: O(d).
func (g *FaceGrid) DivergenceAt(idx []int) float64 {
	var div float64
	for a, c := range g.comps {
		low := c.extent.Flatten(idx)
		idx[a]++
		high := c.extent.Flatten(idx)
		idx[a]--
		div += (c.data[high] - c.data[low]) / g.extent.spacing[a]
	}

	return div
}

// MaxAbsComponent returns the largest absolute face sample across all
// components; the velocity scale used by CFL time-step bounds.
func (g *FaceGrid) MaxAbsComponent() float64 {
	var max float64
	for _, c := range g.comps {
		for _, v := range c.data {
			if av := math.Abs(v); av > max {
				max = av
			}
		}
	}

	return max
}
