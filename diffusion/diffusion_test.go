package diffusion_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marcelomata/gridflow/diffusion"
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
	"github.com/marcelomata/gridflow/linsolve"
)

func openDomain() field.ScalarField { return field.ConstantScalar{Value: math.MaxFloat64} }
func allFluid() field.ScalarField   { return field.ConstantScalar{Value: -1} }

func sum(g *grid.ScalarGrid) float64 {
	var s float64
	for _, v := range g.Data() {
		s += v
	}

	return s
}

func randomFill(g *grid.ScalarGrid, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < g.Len(); i++ {
		g.Set(i, rng.Float64()*2-1)
	}
}

// DiffusionSuite exercises the explicit solver's masked-Laplacian
// semantics.
type DiffusionSuite struct {
	suite.Suite
}

func (s *DiffusionSuite) extent(res ...int) grid.Extent {
	e, err := grid.NewUniformExtent(res, 1)
	require.NoError(s.T(), err)

	return e
}

// TestConservation verifies that a fully fluid explicit step preserves
// the total: interior fluxes telescope and edges contribute zero flux.
func (s *DiffusionSuite) TestConservation() {
	e := s.extent(16, 16)
	src := grid.NewScalarGrid(e)
	dst := grid.NewScalarGrid(e)
	randomFill(src, 11)
	before := sum(src)

	solver := diffusion.NewExplicit()
	require.NoError(s.T(), solver.Solve(src, 0.2, 0.5, dst, openDomain(), allFluid()))
	require.InDelta(s.T(), before, sum(dst), 1e-9)
}

// TestUniformIsFixedPoint verifies that a constant field is unchanged by
// both solvers.
func (s *DiffusionSuite) TestUniformIsFixedPoint() {
	e := s.extent(8, 8)
	src := grid.NewScalarGrid(e)
	dst := grid.NewScalarGrid(e)
	src.Fill(4.2)

	require.NoError(s.T(), diffusion.NewExplicit().Solve(src, 0.3, 0.4, dst, openDomain(), allFluid()))
	for i := 0; i < dst.Len(); i++ {
		require.InDelta(s.T(), 4.2, dst.At(i), 1e-12)
	}

	dst.Fill(0)
	_, err := diffusion.NewImplicit(nil).Solve(src, 0.3, 0.4, dst, openDomain(), allFluid())
	require.NoError(s.T(), err)
	for i := 0; i < dst.Len(); i++ {
		require.InDelta(s.T(), 4.2, dst.At(i), 1e-6)
	}
}

// TestNonFluidCopiedThrough verifies that Air and Boundary samples pass
// through both solvers bit for bit and do not leak into Fluid neighbors'
// stencils.
func (s *DiffusionSuite) TestNonFluidCopiedThrough() {
	e := s.extent(8)
	src := grid.NewScalarGrid(e)
	dst := grid.NewScalarGrid(e)
	randomFill(src, 13)

	// Solid over x < 2 (cells 0,1), fluid over x < 6 (cells 2..5), air beyond.
	boundary := field.Box{Min: []float64{-1}, Max: []float64{2}}
	fluid := field.Box{Min: []float64{-1}, Max: []float64{6}}

	require.NoError(s.T(), diffusion.NewExplicit().Solve(src, 0.1, 1, dst, boundary, fluid))
	for _, i := range []int{0, 1, 6, 7} {
		require.Equal(s.T(), src.At(i), dst.At(i), "non-fluid sample %d", i)
	}

	// Fluid cell 2 borders the solid: its update must use only the fluid
	// neighbor (cell 3), so the solid value must not appear in it.
	lap := src.At(3) - src.At(2)
	require.InDelta(s.T(), src.At(2)+0.1*lap, dst.At(2), 1e-12)

	dst.Fill(0)
	_, err := diffusion.NewImplicit(nil).Solve(src, 0.1, 1, dst, boundary, fluid)
	require.NoError(s.T(), err)
	for _, i := range []int{0, 1, 6, 7} {
		require.Equal(s.T(), src.At(i), dst.At(i), "non-fluid sample %d", i)
	}
}

// TestExplicitStabilityBoundary pins the forward-Euler limit
// coeff·dt/h² < 0.5 on a 1-D lattice: coeff 0.1 with dt 4.9 stays
// bounded, dt 5.1 diverges.
func (s *DiffusionSuite) TestExplicitStabilityBoundary() {
	run := func(dt float64, steps int) float64 {
		e := s.extent(32)
		a := grid.NewScalarGrid(e)
		b := grid.NewScalarGrid(e)
		// Seed the highest-frequency mode.
		for i := 0; i < a.Len(); i++ {
			if i%2 == 0 {
				a.Set(i, 1)
			} else {
				a.Set(i, -1)
			}
		}

		solver := diffusion.NewExplicit()
		for step := 0; step < steps; step++ {
			require.NoError(s.T(), solver.Solve(a, 0.1, dt, b, openDomain(), allFluid()))
			a, b = b, a
		}
		var max float64
		for _, v := range a.Data() {
			if av := math.Abs(v); av > max {
				max = av
			}
		}

		return max
	}

	require.LessOrEqual(s.T(), run(4.9, 500), 1.0+1e-9, "below the bound the mode must decay")
	require.Greater(s.T(), run(5.1, 500), 1e6, "above the bound the mode must grow")
}

// TestImplicitMatchesExplicitAtSmallStep verifies first-order agreement
// of the two time discretizations.
func (s *DiffusionSuite) TestImplicitMatchesExplicitAtSmallStep() {
	e := s.extent(12, 12)
	src := grid.NewScalarGrid(e)
	randomFill(src, 17)

	exp := grid.NewScalarGrid(e)
	require.NoError(s.T(), diffusion.NewExplicit().Solve(src, 0.5, 0.01, exp, openDomain(), allFluid()))

	imp := grid.NewScalarGrid(e)
	cg := linsolve.NewCG(linsolve.Options{Tolerance: 1e-12, MaxIterations: 10000})
	_, err := diffusion.NewImplicit(cg).Solve(src, 0.5, 0.01, imp, openDomain(), allFluid())
	require.NoError(s.T(), err)

	// The discretizations differ at O((coeff·dt·L)²) of the field scale.
	for i := 0; i < exp.Len(); i++ {
		require.InDelta(s.T(), exp.At(i), imp.At(i), 5e-3, "sample %d", i)
	}
}

// TestSolveFaces verifies per-component diffusion and the aggregate
// implicit result.
func (s *DiffusionSuite) TestSolveFaces() {
	e := s.extent(6, 6)
	src := grid.NewFaceGrid(e)
	dst := grid.NewFaceGrid(e)
	src.Component(0).Fill(2)
	randomFill(src.Component(1), 19)
	before := sum(src.Component(1))

	require.NoError(s.T(), diffusion.NewExplicit().SolveFaces(src, 0.2, 0.5, dst, openDomain(), allFluid()))
	for i := 0; i < dst.Component(0).Len(); i++ {
		require.InDelta(s.T(), 2.0, dst.Component(0).At(i), 1e-12, "uniform component")
	}
	require.InDelta(s.T(), before, sum(dst.Component(1)), 1e-9, "per-component conservation")

	res, err := diffusion.NewImplicit(nil).SolveFaces(src, 0.2, 0.5, dst, openDomain(), allFluid())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Converged)
}

// TestArgumentValidation covers the shared fail-fast paths.
func (s *DiffusionSuite) TestArgumentValidation() {
	e := s.extent(4, 4)
	g := grid.NewScalarGrid(e)
	o := grid.NewScalarGrid(e)
	solver := diffusion.NewExplicit()

	require.ErrorIs(s.T(), solver.Solve(nil, 1, 1, o, openDomain(), allFluid()), diffusion.ErrNilGrid)
	require.ErrorIs(s.T(), solver.Solve(g, 1, 1, nil, openDomain(), allFluid()), diffusion.ErrNilGrid)
	require.ErrorIs(s.T(), solver.Solve(g, 1, 1, g, openDomain(), allFluid()), diffusion.ErrSharedBuffer)
	require.ErrorIs(s.T(), solver.Solve(g, -1, 1, o, openDomain(), allFluid()), diffusion.ErrNegativeCoefficient)
	require.ErrorIs(s.T(), solver.Solve(g, 1, 0, o, openDomain(), allFluid()), diffusion.ErrNonPositiveTimeStep)

	small := grid.NewScalarGrid(s.extent(3, 3))
	require.ErrorIs(s.T(), solver.Solve(g, 1, 1, small, openDomain(), allFluid()), diffusion.ErrExtentMismatch)

	_, err := diffusion.NewImplicit(nil).Solve(g, 1, 1, g, openDomain(), allFluid())
	require.ErrorIs(s.T(), err, diffusion.ErrSharedBuffer)
}

func TestDiffusionSuite(t *testing.T) {
	suite.Run(t, new(DiffusionSuite))
}
