package pressure

import "errors"

var (
	// ErrNilGrid is returned when a required grid argument is nil.
	ErrNilGrid = errors.New("pressure: nil grid")

	// ErrSharedBuffer is returned when source and destination are the
	// same grid.
	ErrSharedBuffer = errors.New("pressure: source and destination share a buffer")

	// ErrExtentMismatch is returned when source and destination describe
	// different lattices.
	ErrExtentMismatch = errors.New("pressure: extent mismatch")

	// ErrNonPositiveTimeStep is returned when dt <= 0.
	ErrNonPositiveTimeStep = errors.New("pressure: non-positive time step")

	// ErrBadDensity is returned when the fluid density is not positive.
	ErrBadDensity = errors.New("pressure: density must be positive")
)
