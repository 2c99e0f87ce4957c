package diffusion

import "errors"

var (
	// ErrNilGrid indicates a required grid argument is nil.
	ErrNilGrid = errors.New("diffusion: source and destination grids must not be nil")
	// ErrSharedBuffer indicates source and destination are the same grid;
	// the Laplacian reads neighbors, so in-place updates would consume
	// partially written data.
	ErrSharedBuffer = errors.New("diffusion: source and destination must be distinct grids")
	// ErrExtentMismatch indicates source and destination lattices differ.
	ErrExtentMismatch = errors.New("diffusion: source and destination extents do not match")
	// ErrNegativeCoefficient indicates a diffusion coefficient below zero.
	ErrNegativeCoefficient = errors.New("diffusion: diffusion coefficient must be non-negative")
	// ErrNonPositiveTimeStep indicates dt ≤ 0.
	ErrNonPositiveTimeStep = errors.New("diffusion: time step must be strictly positive")
)
