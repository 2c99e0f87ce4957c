package diffusion

import (
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
	"github.com/marcelomata/gridflow/marker"
)

// Explicit is the forward-Euler diffusion solver. It owns a reusable
// marker buffer rebuilt on every call, so SDFs may change between steps.
//
// Precondition (not enforced): coeff·dt/h² < 0.5 per axis, or the step
// diverges.
type Explicit struct {
	markers marker.Field
}

// NewExplicit returns an explicit diffusion solver.
func NewExplicit() *Explicit {
	return &Explicit{}
}

// Solve diffuses a collocated scalar grid: Fluid samples get
// src + coeff·dt·L(src) with Fluid-only one-sided differences; Air and
// Boundary samples are copied through unchanged.
func (s *Explicit) Solve(src *grid.ScalarGrid, coeff, dt float64, dst *grid.ScalarGrid, boundarySdf, fluidSdf field.ScalarField) error {
	if err := checkArgs(src, dst, coeff, dt); err != nil {
		return err
	}

	s.markers.Build(src.Extent().Resolution(), src.PositionInto, boundarySdf, fluidSdf)
	diffuse(src, coeff, dt, dst, &s.markers)

	return nil
}

// SolveFaces diffuses a face-centered grid component by component. Each
// component is classified at its own face positions with the same marker
// buffer, rebuilt per component.
func (s *Explicit) SolveFaces(src *grid.FaceGrid, coeff, dt float64, dst *grid.FaceGrid, boundarySdf, fluidSdf field.ScalarField) error {
	if err := checkFaceArgs(src, dst, coeff, dt); err != nil {
		return err
	}

	for a := 0; a < src.Dims(); a++ {
		comp := src.Component(a)
		s.markers.Build(comp.Extent().Resolution(), comp.PositionInto, boundarySdf, fluidSdf)
		diffuse(comp, coeff, dt, dst.Component(a), &s.markers)
	}

	return nil
}

// diffuse runs the masked forward-Euler update over one collocated
// lattice. The Laplacian accumulates only Fluid-to-Fluid differences;
// absent or non-Fluid neighbors contribute zero flux.
func diffuse(src *grid.ScalarGrid, coeff, dt float64, dst *grid.ScalarGrid, m *marker.Field) {
	e := src.Extent()
	d := e.Dims()
	srcData := src.Data()
	dstData := dst.Data()

	grid.ParallelChunks(0, len(srcData), func(lo, hi int) {
		idx := make([]int, d)
		for i := lo; i < hi; i++ {
			if m.At(i) != marker.Fluid {
				dstData[i] = srcData[i]
				continue
			}
			e.Unflatten(i, idx)
			center := srcData[i]
			var lap float64
			for a := 0; a < d; a++ {
				sa := e.Stride(a)
				h := e.SpacingAt(a)
				var dMinus, dPlus float64
				if idx[a] > 0 && m.At(i-sa) == marker.Fluid {
					dMinus = center - srcData[i-sa]
				}
				if idx[a]+1 < e.ResolutionAt(a) && m.At(i+sa) == marker.Fluid {
					dPlus = srcData[i+sa] - center
				}
				lap += (dPlus - dMinus) / (h * h)
			}
			dstData[i] = center + coeff*dt*lap
		}
	})
}

func checkArgs(src *grid.ScalarGrid, dst *grid.ScalarGrid, coeff, dt float64) error {
	if src == nil || dst == nil {
		return ErrNilGrid
	}
	if src == dst {
		return ErrSharedBuffer
	}
	if !src.Extent().Equal(dst.Extent()) {
		return ErrExtentMismatch
	}
	if coeff < 0 {
		return ErrNegativeCoefficient
	}
	if dt <= 0 {
		return ErrNonPositiveTimeStep
	}

	return nil
}

func checkFaceArgs(src *grid.FaceGrid, dst *grid.FaceGrid, coeff, dt float64) error {
	if src == nil || dst == nil {
		return ErrNilGrid
	}
	if src == dst {
		return ErrSharedBuffer
	}
	if !src.Extent().Equal(dst.Extent()) {
		return ErrExtentMismatch
	}
	if coeff < 0 {
		return ErrNegativeCoefficient
	}
	if dt <= 0 {
		return ErrNonPositiveTimeStep
	}

	return nil
}
