package diffusion

import (
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
	"github.com/marcelomata/gridflow/linsolve"
	"github.com/marcelomata/gridflow/marker"
)

// Implicit is the backward-Euler diffusion solver: it assembles
// (I − coeff·dt·L)·x = src over Fluid samples, with the same masked
// Laplacian as the explicit variant, and hands the system to an iterative
// solver. Unconditionally stable for any positive dt.
//
// Marker and system buffers are private scratch, resized (not
// reallocated) when the lattice changes between calls.
type Implicit struct {
	markers marker.Field
	sys     *linsolve.System
	solver  linsolve.Solver
}

// NewImplicit returns an implicit diffusion solver backed by the given
// linear solver. A nil solver defaults to conjugate gradient with package
// defaults; the assembled system is symmetric positive-definite, so CG
// always applies.
func NewImplicit(solver linsolve.Solver) *Implicit {
	if solver == nil {
		solver = linsolve.NewCG(linsolve.DefaultOptions())
	}

	return &Implicit{solver: solver}
}

// Solve diffuses a collocated scalar grid implicitly. The returned Result
// carries the linear solve's iteration count and final residual; a
// non-converged solve still writes the approximate solution and returns a
// nil error.
func (s *Implicit) Solve(src *grid.ScalarGrid, coeff, dt float64, dst *grid.ScalarGrid, boundarySdf, fluidSdf field.ScalarField) (linsolve.Result, error) {
	if err := checkArgs(src, dst, coeff, dt); err != nil {
		return linsolve.Result{}, err
	}

	s.markers.Build(src.Extent().Resolution(), src.PositionInto, boundarySdf, fluidSdf)

	return s.solveGrid(src, coeff, dt, dst)
}

// SolveFaces diffuses a face-centered grid implicitly, component by
// component. The returned Result aggregates the per-component solves:
// iterations summed, residual the worst component, Converged only if all
// components converged.
func (s *Implicit) SolveFaces(src *grid.FaceGrid, coeff, dt float64, dst *grid.FaceGrid, boundarySdf, fluidSdf field.ScalarField) (linsolve.Result, error) {
	if err := checkFaceArgs(src, dst, coeff, dt); err != nil {
		return linsolve.Result{}, err
	}

	agg := linsolve.Result{Converged: true}
	for a := 0; a < src.Dims(); a++ {
		comp := src.Component(a)
		s.markers.Build(comp.Extent().Resolution(), comp.PositionInto, boundarySdf, fluidSdf)
		res, err := s.solveGrid(comp, coeff, dt, dst.Component(a))
		if err != nil {
			return agg, err
		}
		agg.Iterations += res.Iterations
		if res.Residual > agg.Residual {
			agg.Residual = res.Residual
		}
		agg.Converged = agg.Converged && res.Converged
	}

	return agg, nil
}

// solveGrid assembles and solves the backward-Euler system for one
// collocated lattice, markers already built at its sample positions.
func (s *Implicit) solveGrid(src *grid.ScalarGrid, coeff, dt float64, dst *grid.ScalarGrid) (linsolve.Result, error) {
	e := src.Extent()
	d := e.Dims()
	res := e.Resolution()
	if s.sys == nil {
		s.sys = linsolve.NewSystem(res)
	} else {
		s.sys.Resize(res)
	}
	sys := s.sys
	srcData := src.Data()

	idx := make([]int, d)
	for i := 0; i < len(srcData); i++ {
		sys.B[i] = srcData[i]
		sys.X[i] = srcData[i]
		if s.markers.At(i) != marker.Fluid {
			sys.SetIdentity(i)
			continue
		}
		e.Unflatten(i, idx)
		diag := 1.0
		for a := 0; a < d; a++ {
			sa := e.Stride(a)
			h := e.SpacingAt(a)
			c := coeff * dt / (h * h)
			if idx[a]+1 < e.ResolutionAt(a) && s.markers.At(i+sa) == marker.Fluid {
				diag += c
				sys.Plus[a][i] = -c
			}
			if idx[a] > 0 && s.markers.At(i-sa) == marker.Fluid {
				diag += c
			}
		}
		sys.Diag[i] = diag
	}

	result, err := s.solver.Solve(sys)
	if err != nil {
		return result, err
	}
	copy(dst.Data(), sys.X)

	return result, nil
}
