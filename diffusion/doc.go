// Package diffusion applies viscous/scalar diffusion to grid quantities,
// masked by the Fluid/Air/Boundary classification rebuilt on every call.
//
// What:
//
//   - Explicit: forward-Euler step dest = src + coeff·dt·L(src), where L is
//     the second-order central-difference Laplacian restricted to
//     Fluid-to-Fluid differences. Differences against Air, Boundary or
//     missing neighbors contribute zero, which is exactly a zero-flux
//     (Neumann) condition at non-fluid samples.
//   - Implicit: backward-Euler step solving (I − coeff·dt·L)·x = src via
//     package linsolve, with the same masked L. Unconditionally stable at
//     the cost of a linear solve per step.
//
// Both variants diffuse face-centered grids per component, each component
// classified at its own face positions; non-Fluid samples pass through
// unchanged (dest == src at those indices).
//
// Stability:
//
//   - The explicit variant is stable only while coeff·dt/h² < 0.5 per
//     axis. This is a documented precondition, not enforced or clamped;
//     the caller owns the time step.
//
// Errors (fail fast, before any computation):
//
//   - ErrNilGrid: a required grid argument is nil.
//   - ErrSharedBuffer: source and destination are the same grid.
//   - ErrExtentMismatch: source and destination lattices differ.
//   - ErrNegativeCoefficient: diffusion coefficient < 0.
//   - ErrNonPositiveTimeStep: dt ≤ 0.
//
// Numerical non-convergence of the implicit solve is reported in the
// returned linsolve.Result, never as an error.
package diffusion
