// Package pressure makes a face-centered velocity field respect solid
// boundaries and incompressibility.
//
// What:
//
//   - Enforcer: overwrites face velocities inside (or partially inside)
//     solid geometry with the collider's velocity, under a blocked or a
//     fractional policy.
//   - Projector: solves the pressure Poisson equation over Fluid samples
//     and subtracts the pressure gradient, driving the per-cell
//     divergence of the corrected field to zero.
//
// Boundary semantics:
//
//   - Air samples pin pressure to zero (free surface), Boundary samples
//     contribute zero flux, and faces touching solids are left to the
//     enforcer. The domain edge is open: out-of-domain neighbors act as
//     zero-pressure Air, so solid walls are expressed through the
//     boundary SDF, not the lattice edge.
//   - The projection is where the pipeline earns incompressibility;
//     everything upstream may create divergence as long as this step
//     removes it.
//
// The Poisson matrix is symmetric positive definite on the Fluid rows,
// so the default solver is ICCG; any linsolve.Solver may be substituted.
// Numerical non-convergence is reported in the returned linsolve.Result,
// never as an error.
//
// Errors (fail fast, before any computation):
//
//   - ErrNilGrid, ErrSharedBuffer, ErrExtentMismatch on malformed grid
//     arguments.
//   - ErrNonPositiveTimeStep when dt ≤ 0.
//   - ErrBadDensity when the fluid density is not positive.
package pressure
