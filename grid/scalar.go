package grid

// ScalarGrid stores one value per cell center of its extent (the
// collocated layout). It implements field.ScalarField through clamped
// multilinear interpolation, so any stage that only needs sampling can
// take it behind the interface.
type ScalarGrid struct {
	extent Extent
	data   []float64
}

// NewScalarGrid allocates a zero-filled grid over the given extent.
func NewScalarGrid(e Extent) *ScalarGrid {
	return &ScalarGrid{extent: e, data: make([]float64, e.Len())}
}

// Extent returns the grid's lattice geometry.
func (g *ScalarGrid) Extent() Extent { return g.extent }

// Len returns the number of samples.
func (g *ScalarGrid) Len() int { return len(g.data) }

// At returns the value at flattened index i.
func (g *ScalarGrid) At(i int) float64 { return g.data[i] }

// Set stores v at flattened index i.
func (g *ScalarGrid) Set(i int, v float64) { g.data[i] = v }

// Add accumulates v into flattened index i.
func (g *ScalarGrid) Add(i int, v float64) { g.data[i] += v }

// Data returns the backing slice for flattened hot-loop access. The slice
// is invalidated by Resize.
func (g *ScalarGrid) Data() []float64 { return g.data }

// Fill sets every sample to v.
func (g *ScalarGrid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom copies src's values into g. Returns ErrNilGrid or
// ErrExtentMismatch when the grids do not describe the same lattice.
func (g *ScalarGrid) CopyFrom(src *ScalarGrid) error {
	if src == nil {
		return ErrNilGrid
	}
	if !g.extent.Equal(src.extent) {
		return ErrExtentMismatch
	}
	copy(g.data, src.data)

	return nil
}

// Clone returns an independent deep copy of the grid.
func (g *ScalarGrid) Clone() *ScalarGrid {
	out := &ScalarGrid{extent: g.extent, data: make([]float64, len(g.data))}
	copy(out.data, g.data)

	return out
}

// Resize rebinds the grid to a new extent, reusing the backing array when
// its capacity suffices. Values are not preserved; the grid is zeroed.
// Resizing is an explicit operation so callers can observe and test buffer
// reuse directly.
func (g *ScalarGrid) Resize(e Extent) {
	n := e.Len()
	if cap(g.data) >= n {
		g.data = g.data[:n]
		for i := range g.data {
			g.data[i] = 0
		}
	} else {
		g.data = make([]float64, n)
	}
	g.extent = e
}

// PositionInto writes the world position of sample idx into p.
func (g *ScalarGrid) PositionInto(idx []int, p []float64) {
	g.extent.CenterInto(idx, p)
}

// ForEach invokes fn sequentially for every flattened sample index.
func (g *ScalarGrid) ForEach(fn func(i int)) {
	for i := range g.data {
		fn(i)
	}
}

// ParallelForEach invokes fn for every flattened sample index, fanning out
// across CPUs. fn must not touch samples other than its own.
func (g *ScalarGrid) ParallelForEach(fn func(i int)) {
	ParallelFor(0, len(g.data), fn)
}

// Sample returns the multilinearly interpolated value at position p,
// clamped to the domain. Safe for concurrent use; allocates small per-call
// scratch; use Sampler for allocation-free hot loops.
func (g *ScalarGrid) Sample(p []float64) float64 {
	d := g.extent.Dims()
	lo := make([]int, d)
	hi := make([]int, d)
	t := make([]float64, d)

	return g.sample(p, lo, hi, t)
}

// Sampler returns a reusable sampler bound to g. A Sampler holds private
// scratch and is NOT safe for concurrent use; create one per worker.
func (g *ScalarGrid) Sampler() *Sampler {
	d := g.extent.Dims()

	return &Sampler{
		g:  g,
		lo: make([]int, d),
		hi: make([]int, d),
		t:  make([]float64, d),
	}
}

// Sampler performs clamped multilinear interpolation on a ScalarGrid
// without per-call allocation. Not safe for concurrent use.
type Sampler struct {
	g      *ScalarGrid
	lo, hi []int
	t      []float64
}

// Sample returns the interpolated value at position p.
func (s *Sampler) Sample(p []float64) float64 {
	return s.g.sample(p, s.lo, s.hi, s.t)
}

// sample interpolates over the 2^d cell-center corners surrounding p,
// clamping normalized coordinates to the sample lattice so out-of-domain
// positions read the nearest valid value.
func (g *ScalarGrid) sample(p []float64, lo, hi []int, t []float64) float64 {
	e := g.extent
	d := e.Dims()
	for a := 0; a < d; a++ {
		// Normalized coordinate relative to the first sample center.
		u := (p[a]-e.origin[a])/e.spacing[a] - 0.5
		i := int(floor(u))
		f := u - float64(i)
		if i < 0 {
			i, f = 0, 0
		}
		if i >= e.res[a]-1 {
			i, f = e.res[a]-1, 0
		}
		lo[a] = i
		hi[a] = i + 1
		if hi[a] > e.res[a]-1 {
			hi[a] = e.res[a] - 1
		}
		t[a] = f
	}

	var val float64
	corners := 1 << d
	for c := 0; c < corners; c++ {
		w := 1.0
		flat := 0
		for a := 0; a < d; a++ {
			if c&(1<<a) != 0 {
				w *= t[a]
				flat += hi[a] * e.strides[a]
			} else {
				w *= 1 - t[a]
				flat += lo[a] * e.strides[a]
			}
		}
		if w != 0 {
			val += w * g.data[flat]
		}
	}

	return val
}

// floor avoids importing math for the one hot-path use; int conversion
// truncates toward zero, which is wrong for negatives.
func floor(x float64) float64 {
	i := float64(int(x))
	if x < i {
		return i - 1
	}

	return i
}
