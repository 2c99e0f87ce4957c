// Package fluidsolver orchestrates the grid-based incompressible flow
// pipeline: external forces, advection, diffusion, boundary enforcement
// and pressure projection, in that order, per time step.
//
// What:
//
//   - Solver: owns double-buffered velocity, density and temperature
//     grids over one Extent and advances them with Step(dt).
//   - Options: the full configuration surface (gravity, viscosity,
//     diffusion, density, time-step policy, boundary policy, pressure
//     solver choice, buoyancy factors) with dimension-aware defaults.
//   - LoadOptions: reads the same surface from an INI file, every key
//     optional, falling back to the programmatic defaults.
//
// Stepping:
//
//   - Each stage writes into the spare buffer and the pair is swapped,
//     never copied, so a step allocates nothing in steady state.
//   - Under the CFL time-step policy a Step call splits dt into
//     substeps so no sample crosses more than CFLNumber cells per
//     substep, bounded by MaxSubSteps.
//   - Substeps emit one structured logrus entry each (dt, cfl, pressure
//     iterations, residual); leaf packages stay log-free.
//
// Errors:
//
//   - ErrBadDensity, ErrBadCFLNumber, ErrBadMaxSubSteps, ErrGravityDims
//     from New.
//   - ErrNonPositiveTimeStep from Step.
//   - ErrUnknownTimeStepMode, ErrUnknownBoundaryPolicy,
//     ErrUnknownPressureSolver from LoadOptions.
//   - Stage failures bubble up wrapped with the stage name.
package fluidsolver
