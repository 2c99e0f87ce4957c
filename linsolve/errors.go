package linsolve

import "errors"

var (
	// ErrNilSystem indicates Solve was handed a nil system.
	ErrNilSystem = errors.New("linsolve: system must not be nil")
	// ErrShapeMismatch indicates the system's slices disagree in length.
	ErrShapeMismatch = errors.New("linsolve: system slices disagree in length")
	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("linsolve: tolerance must be strictly positive")
	// ErrBadMaxIterations indicates an iteration cap below one.
	ErrBadMaxIterations = errors.New("linsolve: max iterations must be at least 1")
)
