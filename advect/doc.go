// Package advect transports grid quantities along a velocity field over a
// time step using semi-Lagrangian backtracing.
//
// What:
//
//   - For every destination sample at position p, trace backward to
//     p′ = p − dt·v and assign the source field interpolated at p′,
//     clamped to the domain. The trace is first-order Euler or the
//     default second-order Runge–Kutta midpoint.
//   - Scalar (collocated) and face-centered grids are both supported;
//     face components backtrace from their own face positions.
//
// Aliasing:
//
//   - Traced values depend on the full, unmodified source field, so the
//     destination must be a distinct buffer. Advect fails fast with
//     ErrSharedBuffer when src and dst are the same grid. The velocity
//     field may be the source grid itself (velocity self-advection):
//     it is only read.
//
// Errors (fail fast, before any computation):
//
//   - ErrNilGrid, ErrNilVelocity, ErrSharedBuffer, ErrExtentMismatch,
//     ErrNonPositiveTimeStep.
//
// Complexity: O(n·d·2^d) per call over n destination samples, fanned out
// across CPUs.
package advect
