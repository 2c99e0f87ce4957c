// Package grid provides the regular-lattice containers the solver stages
// operate on: collocated scalar grids and staggered face-centered (MAC)
// vector grids over an axis-aligned domain.
//
// What:
//
//   - Extent: lattice geometry: per-axis resolution, origin and spacing,
//     with precomputed row-major strides for flattened-index traversal.
//   - ScalarGrid: one value per cell center; implements field.ScalarField
//     via clamped multilinear interpolation.
//   - FaceGrid: one component lattice per axis, each offset by half a cell
//     along its own axis (the MAC layout); implements field.VectorField.
//   - ParallelFor / ParallelChunks: data-parallel fan-out over the
//     flattened index space.
//
// Why staggered:
//
//   - Pressure projection on a collocated layout decouples into a
//     checkerboard mode; storing velocity components at face centers makes
//     the discrete divergence and pressure gradient act across matching
//     faces and keeps the projection stable.
//
// Dimensionality:
//
//   - Extents carry the axis count at runtime; every stencil loops over
//     axes, so 2-D and 3-D (and beyond) share one implementation.
//
// Ownership:
//
//   - Grids are caller-owned. Stages never mutate a grid they read; Resize
//     is an explicit operation that reuses capacity when it can.
//
// Errors:
//
//   - ErrNoAxes: an extent needs at least one axis.
//   - ErrDimensionMismatch: resolution/origin/spacing lengths differ.
//   - ErrBadResolution: a resolution entry is < 1.
//   - ErrBadSpacing: a spacing entry is not strictly positive.
//   - ErrExtentMismatch: two grids that must share an extent do not.
//   - ErrNilGrid: a required grid argument is nil.
package grid
