// Package linsolve solves sparse linear systems expressed in stencil form
// over a flattened lattice, as assembled by the diffusion and pressure
// stages.
//
// What:
//
//   - System: per-sample equations A·x = b where A is a diagonal plus one
//     symmetric off-diagonal band per axis (the 2d+1-point stencil). A is
//     never materialized densely.
//   - Solvers: Jacobi, Gauss–Seidel, CG (for the symmetric positive-definite
//     systems the masked Laplacian produces), and ICCG: CG preconditioned
//     with an incomplete Cholesky IC(0) factorization.
//   - Result: iteration count, final residual and a convergence flag.
//     Exceeding the iteration cap is NOT an error: callers decide whether
//     the approximate solution is acceptable.
//
// Identity rows:
//
//   - Non-fluid samples are assembled as identity rows (diagonal 1, zero
//     couplings, b = x), so they neither perturb nor are perturbed by the
//     solve. All solvers leave them bit-exact.
//
// Ownership:
//
//   - A System is built fresh by its owning stage each solve call and
//     discarded after the solution is extracted; Resize reuses capacity.
//   - Solvers own their scratch vectors and resize them in place.
//
// Complexity:
//
//   - One iteration of any solver is O(n·d). Jacobi/Gauss–Seidel converge
//     in O(n) iterations on Poisson-like systems, CG in O(√n), ICCG in
//     roughly half CG's count on stiff systems.
//
// Errors:
//
//   - ErrNilSystem: Solve was handed a nil system.
//   - ErrShapeMismatch: system slices disagree in length.
//   - ErrBadTolerance / ErrBadMaxIterations: malformed options.
package linsolve
