package linsolve

// CG is the conjugate gradient method. Applicable to the symmetric
// positive-definite systems the masked Laplacian discretizations produce;
// converges in O(√n) iterations on Poisson-like systems.
type CG struct {
	opts Options

	r []float64
	d []float64
	q []float64
}

// NewCG returns a conjugate gradient solver with the given options.
func NewCG(opts Options) *CG {
	return &CG{opts: opts}
}

// Solve runs conjugate gradient from the guess in s.X. If a search
// direction degenerates (the system is not positive-definite along it),
// the solve stops early and reports the residual reached so far.
func (c *CG) Solve(s *System) (Result, error) {
	if err := c.opts.validate(); err != nil {
		return Result{}, err
	}
	if err := validate(s); err != nil {
		return Result{}, err
	}
	n := s.Len()
	c.r = resizeZeroed(c.r, n)
	c.d = resizeZeroed(c.d, n)
	c.q = resizeZeroed(c.q, n)

	res := s.ResidualInto(c.r)
	if res <= c.opts.Tolerance {
		return Result{Iterations: 0, Residual: res, Converged: true}, nil
	}

	copy(c.d, c.r)
	sigma := dot(c.r, c.r)

	for it := 1; it <= c.opts.MaxIterations; it++ {
		s.MatVec(c.d, c.q)
		dq := dot(c.d, c.q)
		if dq <= 0 {
			return Result{Iterations: it - 1, Residual: res, Converged: false}, nil
		}
		alpha := sigma / dq

		axpy(alpha, c.d, s.X)
		axpy(-alpha, c.q, c.r)

		res = norm2(c.r)
		if res <= c.opts.Tolerance {
			return Result{Iterations: it, Residual: res, Converged: true}, nil
		}

		sigmaNew := dot(c.r, c.r)
		beta := sigmaNew / sigma
		for i := range c.d {
			c.d[i] = c.r[i] + beta*c.d[i]
		}
		sigma = sigmaNew
	}

	return Result{Iterations: c.opts.MaxIterations, Residual: res, Converged: false}, nil
}
