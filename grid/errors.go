package grid

import "errors"

var (
	// ErrNoAxes indicates an extent was requested with zero axes.
	ErrNoAxes = errors.New("grid: extent must have at least one axis")
	// ErrDimensionMismatch indicates resolution, origin and spacing slices
	// have differing lengths.
	ErrDimensionMismatch = errors.New("grid: resolution, origin and spacing must have the same length")
	// ErrBadResolution indicates a per-axis cell count below one.
	ErrBadResolution = errors.New("grid: resolution must be at least 1 per axis")
	// ErrBadSpacing indicates a non-positive grid spacing.
	ErrBadSpacing = errors.New("grid: spacing must be strictly positive per axis")
	// ErrExtentMismatch indicates two grids that must share an extent do not.
	ErrExtentMismatch = errors.New("grid: extents do not match")
	// ErrNilGrid indicates a required grid argument is nil.
	ErrNilGrid = errors.New("grid: grid must not be nil")
)
