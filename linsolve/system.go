package linsolve

import (
	"math"

	"github.com/marcelomata/gridflow/grid"
)

// System is a sparse linear system in stencil form over a flattened
// lattice. Row i couples sample i to its +axis neighbor i+Stride(a)
// through Plus[a][i]; the coupling is symmetric, so the −axis coefficient
// of row i is Plus[a][i−Stride(a)].
//
// Invariant: builders must leave Plus[a][i] == 0 for samples on the +a
// edge of the lattice. With that, stride arithmetic never couples across
// axis wrap-around and plain bounds checks suffice.
type System struct {
	res     []int
	strides []int

	// Diag holds the diagonal coefficient per sample.
	Diag []float64
	// Plus holds, per axis, the coefficient coupling i to i+Stride(a).
	Plus [][]float64
	// B is the right-hand side.
	B []float64
	// X holds the initial guess on entry to a solve and the solution on exit.
	X []float64
}

// NewSystem allocates a zeroed system over the given per-axis resolution.
func NewSystem(resolution []int) *System {
	s := &System{}
	s.Resize(resolution)

	return s
}

// Resize shapes the system to a new resolution, reusing capacity where
// possible, and zeroes every coefficient.
func (s *System) Resize(resolution []int) {
	d := len(resolution)
	s.res = resizeInts(s.res, d)
	copy(s.res, resolution)
	s.strides = resizeInts(s.strides, d)
	s.strides[d-1] = 1
	for a := d - 2; a >= 0; a-- {
		s.strides[a] = s.strides[a+1] * s.res[a+1]
	}
	n := s.strides[0] * s.res[0]

	s.Diag = resizeZeroed(s.Diag, n)
	s.B = resizeZeroed(s.B, n)
	s.X = resizeZeroed(s.X, n)
	if cap(s.Plus) >= d {
		s.Plus = s.Plus[:d]
	} else {
		p := make([][]float64, d)
		copy(p, s.Plus)
		s.Plus = p
	}
	for a := 0; a < d; a++ {
		s.Plus[a] = resizeZeroed(s.Plus[a], n)
	}
}

// Len returns the number of equations.
func (s *System) Len() int { return len(s.Diag) }

// Dims returns the axis count.
func (s *System) Dims() int { return len(s.res) }

// Stride returns the flattened-index stride of axis a.
func (s *System) Stride(a int) int { return s.strides[a] }

// ResolutionAt returns the sample count along axis a.
func (s *System) ResolutionAt(a int) int { return s.res[a] }

// SetIdentity makes row i trivially satisfied: unit diagonal, zero
// couplings. The caller sets B[i] and X[i] to the pinned value.
func (s *System) SetIdentity(i int) {
	s.Diag[i] = 1
	for a := range s.Plus {
		s.Plus[a][i] = 0
	}
}

// MatVec computes y = A·x. x and y must have length Len and must not
// alias. Rows are independent, so the product fans out across CPUs.
func (s *System) MatVec(x, y []float64) {
	n := len(s.Diag)
	grid.ParallelFor(0, n, func(i int) {
		v := s.Diag[i] * x[i]
		for a := range s.Plus {
			sa := s.strides[a]
			if i+sa < n {
				v += s.Plus[a][i] * x[i+sa]
			}
			if i-sa >= 0 {
				v += s.Plus[a][i-sa] * x[i-sa]
			}
		}
		y[i] = v
	})
}

// ResidualInto writes r = B − A·X and returns its L2 norm.
func (s *System) ResidualInto(r []float64) float64 {
	s.MatVec(s.X, r)
	var sum float64
	for i := range r {
		r[i] = s.B[i] - r[i]
		sum += r[i] * r[i]
	}

	return math.Sqrt(sum)
}

// validate reports a nil or internally inconsistent system.
func validate(s *System) error {
	if s == nil {
		return ErrNilSystem
	}
	n := len(s.Diag)
	if len(s.B) != n || len(s.X) != n || len(s.Plus) != len(s.res) {
		return ErrShapeMismatch
	}
	for a := range s.Plus {
		if len(s.Plus[a]) != n {
			return ErrShapeMismatch
		}
	}

	return nil
}

func resizeInts(s []int, n int) []int {
	if cap(s) >= n {
		return s[:n]
	}

	return make([]int, n)
}

func resizeZeroed(s []float64, n int) []float64 {
	if cap(s) >= n {
		s = s[:n]
		for i := range s {
			s[i] = 0
		}

		return s
	}

	return make([]float64, n)
}
