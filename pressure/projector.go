package pressure

import (
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
	"github.com/marcelomata/gridflow/linsolve"
	"github.com/marcelomata/gridflow/marker"
)

// Projector removes divergence from a face-centered velocity field by a
// pressure solve. It owns a reusable marker buffer and system, both
// rebuilt on every call, so geometry may change between steps. Not safe
// for concurrent use.
type Projector struct {
	density float64
	solver  linsolve.Solver

	markers marker.Field
	sys     *linsolve.System
}

// NewProjector returns a projector for a fluid of the given density.
// A nil solver defaults to ICCG with default options. Returns
// ErrBadDensity when density <= 0.
func NewProjector(density float64, solver linsolve.Solver) (*Projector, error) {
	if density <= 0 {
		return nil, ErrBadDensity
	}
	if solver == nil {
		solver = linsolve.NewICCG(linsolve.DefaultOptions())
	}

	return &Projector{density: density, solver: solver}, nil
}

// Project writes the divergence-free correction of vel into dst. Cells
// are classified against the SDFs at their centers; pressure is solved
// on Fluid cells with Air (and the open domain edge) pinned to zero and
// Boundary contributing zero flux. Faces adjacent to a Boundary cell are
// copied through for the enforcer to own.
func (p *Projector) Project(vel *grid.FaceGrid, dt float64, dst *grid.FaceGrid, boundarySdf, fluidSdf field.ScalarField) (linsolve.Result, error) {
	if vel == nil || dst == nil {
		return linsolve.Result{}, ErrNilGrid
	}
	if vel == dst {
		return linsolve.Result{}, ErrSharedBuffer
	}
	if !vel.Extent().Equal(dst.Extent()) {
		return linsolve.Result{}, ErrExtentMismatch
	}
	if dt <= 0 {
		return linsolve.Result{}, ErrNonPositiveTimeStep
	}

	if err := dst.CopyFrom(vel); err != nil {
		return linsolve.Result{}, err
	}

	e := vel.Extent()
	p.markers.Build(e.Resolution(), e.CenterInto, boundarySdf, fluidSdf)
	if p.markers.Count(marker.Fluid) == 0 {
		return linsolve.Result{Converged: true}, nil
	}

	p.assemble(vel, dt)
	res, err := p.solver.Solve(p.sys)
	if err != nil {
		return res, err
	}
	p.correct(dst, dt)

	return res, nil
}

// assemble builds the Poisson system −∇·(1/ρ ∇p) = −∇·u/dt in the scaled
// form used here: Fluid rows get 1/h² per non-Boundary neighbor on the
// diagonal and −1/h² couplings to Fluid neighbors; the right-hand side
// is −(ρ/dt)·div. Non-Fluid rows are identity with zero value.
func (p *Projector) assemble(vel *grid.FaceGrid, dt float64) {
	e := vel.Extent()
	d := e.Dims()
	if p.sys == nil {
		p.sys = linsolve.NewSystem(e.Resolution())
	} else {
		p.sys.Resize(e.Resolution())
	}
	sys := p.sys
	scale := p.density / dt

	grid.ParallelChunks(0, sys.Len(), func(lo, hi int) {
		idx := make([]int, d)
		for i := lo; i < hi; i++ {
			if p.markers.At(i) != marker.Fluid {
				sys.SetIdentity(i)
				sys.B[i] = 0
				sys.X[i] = 0
				continue
			}
			e.Unflatten(i, idx)

			var diag float64
			for a := 0; a < d; a++ {
				h := e.SpacingAt(a)
				inv := 1 / (h * h)
				sa := e.Stride(a)

				// The domain edge counts as Air: open, zero pressure.
				if idx[a] == 0 || p.markers.At(i-sa) != marker.Boundary {
					diag += inv
				}
				switch {
				case idx[a]+1 == e.ResolutionAt(a):
					diag += inv
				case p.markers.At(i+sa) == marker.Fluid:
					diag += inv
					sys.Plus[a][i] = -inv
				case p.markers.At(i+sa) == marker.Air:
					diag += inv
				}
			}
			if diag == 0 {
				// Fluid cell sealed in by solids on every side.
				sys.SetIdentity(i)
				sys.B[i] = 0
				sys.X[i] = 0
				continue
			}
			sys.Diag[i] = diag
			sys.B[i] = -scale * vel.DivergenceAt(idx)
			sys.X[i] = 0
		}
	})
}

// correct subtracts the pressure gradient from every face that touches
// at least one Fluid cell and no Boundary cell. Air and out-of-domain
// neighbors contribute zero pressure.
func (p *Projector) correct(dst *grid.FaceGrid, dt float64) {
	e := dst.Extent()
	d := e.Dims()
	x := p.sys.X
	scale := dt / p.density

	for a := 0; a < d; a++ {
		comp := dst.Component(a)
		fe := comp.Extent()
		data := comp.Data()
		h := e.SpacingAt(a)

		grid.ParallelChunks(0, len(data), func(lo, hi int) {
			idx := make([]int, d)
			for i := lo; i < hi; i++ {
				fe.Unflatten(i, idx)
				fa := idx[a]

				var pLo, pHi float64
				fluid, blocked := false, false
				if fa > 0 {
					idx[a] = fa - 1
					switch j := e.Flatten(idx); p.markers.At(j) {
					case marker.Fluid:
						pLo = x[j]
						fluid = true
					case marker.Boundary:
						blocked = true
					}
				}
				if fa < e.ResolutionAt(a) {
					idx[a] = fa
					switch j := e.Flatten(idx); p.markers.At(j) {
					case marker.Fluid:
						pHi = x[j]
						fluid = true
					case marker.Boundary:
						blocked = true
					}
				}
				idx[a] = fa
				if blocked || !fluid {
					continue
				}
				data[i] -= scale * (pHi - pLo) / h
			}
		})
	}
}
