package fluidsolver

import "errors"

var (
	// ErrBadDensity is returned when Options.Density is not positive.
	ErrBadDensity = errors.New("fluidsolver: density must be positive")

	// ErrBadCFLNumber is returned when the CFL policy is selected with a
	// non-positive CFL number.
	ErrBadCFLNumber = errors.New("fluidsolver: CFL number must be positive")

	// ErrBadMaxSubSteps is returned when MaxSubSteps < 1.
	ErrBadMaxSubSteps = errors.New("fluidsolver: max substeps must be at least 1")

	// ErrGravityDims is returned when the gravity vector length does not
	// match the grid dimensionality.
	ErrGravityDims = errors.New("fluidsolver: gravity dimension mismatch")

	// ErrNonPositiveTimeStep is returned by Step when dt <= 0.
	ErrNonPositiveTimeStep = errors.New("fluidsolver: non-positive time step")

	// ErrUnknownTimeStepMode is returned by LoadOptions for an
	// unrecognized [time] mode value.
	ErrUnknownTimeStepMode = errors.New("fluidsolver: unknown time step mode")

	// ErrUnknownBoundaryPolicy is returned by LoadOptions for an
	// unrecognized [boundary] policy value.
	ErrUnknownBoundaryPolicy = errors.New("fluidsolver: unknown boundary policy")

	// ErrUnknownPressureSolver is returned by LoadOptions for an
	// unrecognized [pressure] solver value.
	ErrUnknownPressureSolver = errors.New("fluidsolver: unknown pressure solver")
)
