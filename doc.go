// Package gridflow is a grid-based incompressible-flow solver core: a
// time-stepping pipeline that advances velocity and scalar fields on a
// staggered (MAC) lattice by composing advection, diffusion, pressure
// projection, and boundary-condition enforcement.
//
// 🚀 What is gridflow?
//
//	A library of composable solver stages over regular lattices:
//		• field/      — Samplable scalar/vector fields, signed-distance shapes & composites
//		• grid/       — lattice geometry, collocated and face-centered (MAC) containers
//		• marker/     — Fluid/Air/Boundary classification from two signed-distance fields
//		• linsolve/   — stencil-form sparse systems: Jacobi, Gauss–Seidel, CG, IC(0)-CG
//		• diffusion/  — explicit (forward-Euler) and implicit (backward-Euler) diffusion
//		• advect/     — semi-Lagrangian transport with Euler or RK2-midpoint backtrace
//		• pressure/   — no-flux boundary enforcement and divergence-free projection
//		• fluidsolver/— the orchestrator: forces, stage ordering, CFL sub-stepping
//
// ✨ Why choose gridflow?
//
//   - One implementation for any dimensionality — extents, strides and
//     stencils are parameterized by axis count, so 2-D and 3-D share code
//   - Explicit ownership — stages own their scratch (markers, systems) and
//     resize it in place; grids passed in are caller-owned and never
//     mutated while read
//   - Data-parallel by construction — every per-sample loop fans out over
//     the flattened index space with no sample-to-sample dependency
//   - Honest numerics — non-convergence is a reported residual, not a
//     swallowed error; stability bounds are documented preconditions
//
// Quick ASCII picture of one sub-step:
//
//	forces → advect → diffuse → enforce BC → project → enforce BC → scalars
//
// Dive into each package's doc.go for contracts, complexity and errors.
//
//	go get github.com/marcelomata/gridflow
package gridflow
