package marker

import (
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
)

// Label is the per-sample physical classification.
type Label uint8

const (
	// Fluid samples carry the simulated quantity and couple into stencils.
	Fluid Label = iota
	// Air samples are free surface: Dirichlet in pressure solves, inert in diffusion.
	Air
	// Boundary samples lie inside solid geometry and contribute zero flux.
	Boundary
)

// String returns the label name.
func (l Label) String() string {
	switch l {
	case Fluid:
		return "Fluid"
	case Air:
		return "Air"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// Field is a reusable per-sample label buffer. The zero value is ready to
// use; Build sizes it to the target lattice.
type Field struct {
	res     []int
	strides []int
	labels  []Label
}

// Resize shapes the field to the given per-axis resolution, reusing the
// backing array when its capacity suffices. Labels are not preserved.
func (f *Field) Resize(resolution []int) {
	d := len(resolution)
	if cap(f.res) >= d {
		f.res = f.res[:d]
		f.strides = f.strides[:d]
	} else {
		f.res = make([]int, d)
		f.strides = make([]int, d)
	}
	copy(f.res, resolution)
	f.strides[d-1] = 1
	for a := d - 2; a >= 0; a-- {
		f.strides[a] = f.strides[a+1] * f.res[a+1]
	}
	n := f.strides[0] * f.res[0]
	if cap(f.labels) >= n {
		f.labels = f.labels[:n]
	} else {
		f.labels = make([]Label, n)
	}
}

// Len returns the number of classified samples.
func (f *Field) Len() int { return len(f.labels) }

// Resolution returns a copy of the per-axis sample counts.
func (f *Field) Resolution() []int {
	out := make([]int, len(f.res))
	copy(out, f.res)

	return out
}

// ResolutionAt returns the sample count along axis a.
func (f *Field) ResolutionAt(a int) int { return f.res[a] }

// Stride returns the flattened-index stride of axis a.
func (f *Field) Stride(a int) int { return f.strides[a] }

// At returns the label at flattened index i.
func (f *Field) At(i int) Label { return f.labels[i] }

// Labels returns the backing label slice; invalidated by Resize.
func (f *Field) Labels() []Label { return f.labels }

// Count returns how many samples carry the given label.
func (f *Field) Count(l Label) int {
	n := 0
	for _, v := range f.labels {
		if v == l {
			n++
		}
	}

	return n
}

// Build resizes the field to resolution and classifies every sample by
// SDF sign at the position pos maps its index to. pos receives a reusable
// index slice and writes the world position into p; it must match the
// target grid's own layout. Recomputed in full on every call.
func (f *Field) Build(resolution []int, pos func(idx []int, p []float64), boundarySdf, fluidSdf field.ScalarField) {
	f.Resize(resolution)
	d := len(resolution)
	grid.ParallelChunks(0, len(f.labels), func(lo, hi int) {
		idx := make([]int, d)
		p := make([]float64, d)
		for i := lo; i < hi; i++ {
			f.unflatten(i, idx)
			pos(idx, p)
			switch {
			case field.Inside(boundarySdf.Sample(p)):
				f.labels[i] = Boundary
			case field.Inside(fluidSdf.Sample(p)):
				f.labels[i] = Fluid
			default:
				f.labels[i] = Air
			}
		}
	})
}

func (f *Field) unflatten(flat int, dst []int) {
	for a := range f.strides {
		dst[a] = flat / f.strides[a]
		flat -= dst[a] * f.strides[a]
	}
}
