package linsolve

// Options configures any iterative solver in this package.
//
//   - Tolerance: the solve stops once the L2 norm of the residual b − A·x
//     drops to or below this value.
//   - MaxIterations: hard cap on iterations; the only bounded-time
//     guarantee a solve call makes.
type Options struct {
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the package defaults: Tolerance 1e-6,
// MaxIterations 1000.
func DefaultOptions() Options {
	return Options{Tolerance: 1e-6, MaxIterations: 1000}
}

// validate reports malformed options.
func (o Options) validate() error {
	if o.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if o.MaxIterations < 1 {
		return ErrBadMaxIterations
	}

	return nil
}

// Result reports how a solve ended. A Converged=false result is an
// approximate solution, not a failure: the caller chooses whether to
// proceed with it or escalate.
type Result struct {
	// Iterations actually performed.
	Iterations int
	// Residual is the final L2 norm of b − A·x.
	Residual float64
	// Converged is true when Residual ≤ Tolerance within the cap.
	Converged bool
}

// Solver iterates a stencil system toward A·x = b, starting from the
// initial guess already stored in System.X and leaving the solution there.
type Solver interface {
	Solve(s *System) (Result, error)
}
