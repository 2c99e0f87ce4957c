package linsolve

import "math"

// ICCG is conjugate gradient preconditioned with an incomplete Cholesky
// IC(0) factorization of the stencil matrix: the factor keeps only the
// matrix's own sparsity pattern, so factorization and each preconditioner
// application stay O(n·d). Markedly fewer iterations than plain CG on
// stiff or high-resolution systems.
type ICCG struct {
	opts Options

	precon []float64
	r      []float64
	d      []float64
	q      []float64
	z      []float64
}

// NewICCG returns an IC(0)-preconditioned conjugate gradient solver.
func NewICCG(opts Options) *ICCG {
	return &ICCG{opts: opts}
}

// Solve runs preconditioned conjugate gradient from the guess in s.X.
func (c *ICCG) Solve(s *System) (Result, error) {
	if err := c.opts.validate(); err != nil {
		return Result{}, err
	}
	if err := validate(s); err != nil {
		return Result{}, err
	}
	n := s.Len()
	c.precon = resizeZeroed(c.precon, n)
	c.r = resizeZeroed(c.r, n)
	c.d = resizeZeroed(c.d, n)
	c.q = resizeZeroed(c.q, n)
	c.z = resizeZeroed(c.z, n)

	c.factor(s)

	res := s.ResidualInto(c.r)
	if res <= c.opts.Tolerance {
		return Result{Iterations: 0, Residual: res, Converged: true}, nil
	}

	c.applyPrecon(s, c.r, c.z)
	copy(c.d, c.z)
	sigma := dot(c.r, c.z)

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

		c.applyPrecon(s, c.r, c.z)
		sigmaNew := dot(c.r, c.z)
		beta := sigmaNew / sigma
		for i := range c.d {
			c.d[i] = c.z[i] + beta*c.d[i]
		}
		sigma = sigmaNew
	}

	return Result{Iterations: c.opts.MaxIterations, Residual: res, Converged: false}, nil
}

// factor builds the IC(0) factor in place: precon[i] holds 1/√e_i where
// e_i is the pivot after subtracting the already-factored −axis couplings.
// A pivot that loses positivity falls back to the raw diagonal, which
// degrades the preconditioner for that row but keeps it definite.
func (c *ICCG) factor(s *System) {
	n := s.Len()
	for i := 0; i < n; i++ {
		e := s.Diag[i]
		for a := range s.Plus {
			sa := s.Stride(a)
			if j := i - sa; j >= 0 {
				t := s.Plus[a][j] * c.precon[j]
				e -= t * t
			}
		}
		if e <= 0 {
			e = s.Diag[i]
		}
		if e <= 0 {
			c.precon[i] = 0
			continue
		}
		c.precon[i] = 1 / math.Sqrt(e)
	}
}

// applyPrecon solves M·z = r with the IC(0) factor: a forward sweep
// through L, then a backward sweep through Lᵀ. c.q doubles as the forward
// sweep scratch; A·d is not live at either call site.
func (c *ICCG) applyPrecon(s *System, r, z []float64) {
	n := s.Len()
	for i := 0; i < n; i++ {
		v := r[i]
		for a := range s.Plus {
			sa := s.Stride(a)
			if j := i - sa; j >= 0 {
				v -= s.Plus[a][j] * c.precon[j] * c.q[j]
			}
		}
		c.q[i] = v * c.precon[i]
	}
	for i := n - 1; i >= 0; i-- {
		v := c.q[i]
		for a := range s.Plus {
			sa := s.Stride(a)
			if j := i + sa; j < n {
				v -= s.Plus[a][i] * c.precon[i] * z[j]
			}
		}
		z[i] = v * c.precon[i]
	}
}
