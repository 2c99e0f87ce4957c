package grid

// Extent describes a regular lattice over an axis-aligned domain: per-axis
// cell counts, the world position of the domain's lower corner, and the
// cell spacing. Strides are precomputed so all traversals can work on the
// flattened index space (last axis fastest).
//
// An Extent is immutable once built; copies share no mutable state.
type Extent struct {
	res     []int
	origin  []float64
	spacing []float64
	strides []int
	size    int
}

// NewExtent constructs an Extent from per-axis resolution, origin and
// spacing. Inputs are deep-copied to ensure immutability.
// Returns ErrNoAxes, ErrDimensionMismatch, ErrBadResolution or
// ErrBadSpacing on malformed input.
// Complexity: O(d).
func NewExtent(resolution []int, origin, spacing []float64) (Extent, error) {
	d := len(resolution)
	if d == 0 {
		return Extent{}, ErrNoAxes
	}
	if len(origin) != d || len(spacing) != d {
		return Extent{}, ErrDimensionMismatch
	}
	for a := 0; a < d; a++ {
		if resolution[a] < 1 {
			return Extent{}, ErrBadResolution
		}
		if spacing[a] <= 0 {
			return Extent{}, ErrBadSpacing
		}
	}

	e := Extent{
		res:     make([]int, d),
		origin:  make([]float64, d),
		spacing: make([]float64, d),
		strides: make([]int, d),
	}
	copy(e.res, resolution)
	copy(e.origin, origin)
	copy(e.spacing, spacing)

	// Row-major strides, last axis fastest.
	e.strides[d-1] = 1
	for a := d - 2; a >= 0; a-- {
		e.strides[a] = e.strides[a+1] * e.res[a+1]
	}
	e.size = e.strides[0] * e.res[0]

	return e, nil
}

// NewUniformExtent constructs an Extent with the given resolution, a zero
// origin and the same spacing h on every axis.
func NewUniformExtent(resolution []int, h float64) (Extent, error) {
	d := len(resolution)
	origin := make([]float64, d)
	spacing := make([]float64, d)
	for a := 0; a < d; a++ {
		spacing[a] = h
	}

	return NewExtent(resolution, origin, spacing)
}

// Dims returns the axis count.
func (e Extent) Dims() int { return len(e.res) }

// Len returns the total number of lattice samples (product of resolutions).
func (e Extent) Len() int { return e.size }

// Resolution returns a copy of the per-axis cell counts.
func (e Extent) Resolution() []int {
	out := make([]int, len(e.res))
	copy(out, e.res)

	return out
}

// ResolutionAt returns the cell count along axis a.
func (e Extent) ResolutionAt(a int) int { return e.res[a] }

// OriginAt returns the domain lower-corner coordinate along axis a.
func (e Extent) OriginAt(a int) float64 { return e.origin[a] }

// SpacingAt returns the cell spacing along axis a.
func (e Extent) SpacingAt(a int) float64 { return e.spacing[a] }

// MinSpacing returns the smallest per-axis spacing; the CFL-limiting scale.
func (e Extent) MinSpacing() float64 {
	min := e.spacing[0]
	for _, h := range e.spacing[1:] {
		if h < min {
			min = h
		}
	}

	return min
}

// Stride returns the flattened-index stride of axis a.
func (e Extent) Stride(a int) int { return e.strides[a] }

// Flatten maps a multi-axis index to its flattened row-major index.
// Complexity: O(d).
func (e Extent) Flatten(idx []int) int {
	flat := 0
	for a, i := range idx {
		flat += i * e.strides[a]
	}

	return flat
}

// Unflatten writes the multi-axis index of flat into dst and returns dst.
// dst must have length Dims.
// Complexity: O(d).
func (e Extent) Unflatten(flat int, dst []int) []int {
	for a := range e.strides {
		dst[a] = flat / e.strides[a]
		flat -= dst[a] * e.strides[a]
	}

	return dst
}

// CenterInto writes the world position of the cell center at idx into p.
// Cell centers sit half a spacing inside the lower corner on every axis.
// Complexity: O(d).
func (e Extent) CenterInto(idx []int, p []float64) {
	for a := range e.res {
		p[a] = e.origin[a] + (float64(idx[a])+0.5)*e.spacing[a]
	}
}

// Equal reports whether two extents describe the same lattice: same axis
// count, resolutions, origins and spacings.
func (e Extent) Equal(o Extent) bool {
	if len(e.res) != len(o.res) {
		return false
	}
	for a := range e.res {
		if e.res[a] != o.res[a] || e.origin[a] != o.origin[a] || e.spacing[a] != o.spacing[a] {
			return false
		}
	}

	return true
}

// faceExtent derives the lattice of face centers for one vector component:
// one extra sample along its own axis, origin pulled back half a spacing so
// that cell-center positions of the derived extent land on face centers.
func (e Extent) faceExtent(axis int) Extent {
	res := e.Resolution()
	res[axis]++
	origin := make([]float64, len(e.origin))
	copy(origin, e.origin)
	origin[axis] -= 0.5 * e.spacing[axis]
	spacing := make([]float64, len(e.spacing))
	copy(spacing, e.spacing)

	// The parent extent is already validated; the derived one cannot fail.
	fe, _ := NewExtent(res, origin, spacing)

	return fe
}
