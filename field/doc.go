// Package field defines the sampling abstractions every solver stage is
// written against, plus a small set of analytic signed-distance shapes.
//
// What:
//
//   - ScalarField / VectorField: anything that can be point-sampled at a
//     continuous position. Grids, analytic shapes and composites all
//     implement them; stages accept the interface wherever only sampling
//     is needed.
//   - ConstantScalar / ConstantVector: trivial fields, handy as defaults
//     ("whole domain is fluid", "no collider velocity").
//   - Sphere, Box: exact signed-distance shapes.
//   - Combined: a sequence of scalar fields folded with a combine rule
//     (CombineMin = union of inside regions, CombineMax = intersection).
//
// Sign convention:
//
//   - A signed-distance value ≤ 0 means the position is inside the region;
//     Inside and FractionInside encode this convention in one place.
//
// Complexity:
//
//   - All samples are O(d) in the axis count d, except Combined which is
//     O(d·k) for k member fields.
//
// Positions are []float64 slices whose length is the axis count of the
// caller's lattice; fields must tolerate any length they were built for.
package field
