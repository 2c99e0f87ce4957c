package advect

import "errors"

var (
	// ErrNilGrid indicates a required grid argument is nil.
	ErrNilGrid = errors.New("advect: source and destination grids must not be nil")
	// ErrNilVelocity indicates a nil velocity field.
	ErrNilVelocity = errors.New("advect: velocity field must not be nil")
	// ErrSharedBuffer indicates source and destination are the same grid;
	// traced values depend on the full unmodified source field.
	ErrSharedBuffer = errors.New("advect: source and destination must be distinct grids")
	// ErrExtentMismatch indicates source and destination lattices differ.
	ErrExtentMismatch = errors.New("advect: source and destination extents do not match")
	// ErrNonPositiveTimeStep indicates dt ≤ 0.
	ErrNonPositiveTimeStep = errors.New("advect: time step must be strictly positive")
)
