// Package marker classifies lattice samples as Fluid, Air or Boundary
// from two signed-distance fields.
//
// What:
//
//   - Label: the three-way per-sample classification.
//   - Field: a reusable label buffer owned by a solver stage, rebuilt on
//     every Build call from the boundary and fluid SDFs.
//
// Contract:
//
//   - Classification precedence at each sample position: boundary SDF ≤ 0
//     → Boundary; else fluid SDF ≤ 0 → Fluid; else Air.
//   - A sample's label depends only on the SDF signs at that position on
//     this call; no memory of previous markers survives a rebuild, since
//     obstacles move and the fluid surface evolves between steps.
//   - The position function must honor the target grid's own layout
//     (cell centers for collocated data, face centers for a staggered
//     component), so each layout classifies at its own sample points.
//   - Build always succeeds given finite SDFs; there are no error cases.
//
// Ownership:
//
//   - Field is scratch state private to one stage. Resize is explicit and
//     reuses the backing array when capacity allows, so tests can assert
//     buffer reuse directly.
//
// Complexity:
//
//   - Build: O(n·d) over n samples, fanned out across CPUs.
package marker
