package linsolve

import "github.com/marcelomata/gridflow/grid"

// Jacobi is the simplest iterative solver: every sweep recomputes each
// sample from its neighbors' previous values. Always applicable, slow;
// sweeps are fully data-parallel.
type Jacobi struct {
	opts Options

	xNew []float64
	r    []float64
}

// NewJacobi returns a Jacobi solver with the given options.
func NewJacobi(opts Options) *Jacobi {
	return &Jacobi{opts: opts}
}

// Solve iterates until the residual norm drops to the tolerance or the
// iteration cap is reached. Identity rows reproduce themselves exactly.
func (j *Jacobi) Solve(s *System) (Result, error) {
	if err := j.opts.validate(); err != nil {
		return Result{}, err
	}
	if err := validate(s); err != nil {
		return Result{}, err
	}
	n := s.Len()
	j.xNew = resizeZeroed(j.xNew, n)
	j.r = resizeZeroed(j.r, n)

	res := s.ResidualInto(j.r)
	if res <= j.opts.Tolerance {
		return Result{Iterations: 0, Residual: res, Converged: true}, nil
	}

	for it := 1; it <= j.opts.MaxIterations; it++ {
		grid.ParallelFor(0, n, func(i int) {
			v := s.B[i]
			for a := range s.Plus {
				sa := s.Stride(a)
				if i+sa < n {
					v -= s.Plus[a][i] * s.X[i+sa]
				}
				if i-sa >= 0 {
					v -= s.Plus[a][i-sa] * s.X[i-sa]
				}
			}
			j.xNew[i] = v / s.Diag[i]
		})
		copy(s.X, j.xNew)

		res = s.ResidualInto(j.r)
		if res <= j.opts.Tolerance {
			return Result{Iterations: it, Residual: res, Converged: true}, nil
		}
	}

	return Result{Iterations: j.opts.MaxIterations, Residual: res, Converged: false}, nil
}
