package fluidsolver_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/fluidsolver"
	"github.com/marcelomata/gridflow/grid"
	"github.com/marcelomata/gridflow/pressure"
)

// SolverSuite exercises the orchestrator end to end on small domains.
type SolverSuite struct {
	suite.Suite
}

func (s *SolverSuite) extent(res ...int) grid.Extent {
	e, err := grid.NewUniformExtent(res, 1)
	require.NoError(s.T(), err)

	return e
}

// fixedOptions returns a quiet single-substep configuration for
// deterministic stage checks.
func (s *SolverSuite) fixedOptions(dims int) fluidsolver.Options {
	o := fluidsolver.DefaultOptions(dims)
	o.TimeStepMode = fluidsolver.TimeStepFixed
	o.Density = 1

	return o
}

// TestNew_Validation covers option fail-fast paths.
func (s *SolverSuite) TestNew_Validation() {
	e := s.extent(4, 4)

	o := fluidsolver.DefaultOptions(2)
	o.Density = 0
	_, err := fluidsolver.New(e, o)
	require.ErrorIs(s.T(), err, fluidsolver.ErrBadDensity)

	o = fluidsolver.DefaultOptions(3)
	_, err = fluidsolver.New(e, o)
	require.ErrorIs(s.T(), err, fluidsolver.ErrGravityDims)

	o = fluidsolver.DefaultOptions(2)
	o.CFLNumber = 0
	_, err = fluidsolver.New(e, o)
	require.ErrorIs(s.T(), err, fluidsolver.ErrBadCFLNumber)

	o = fluidsolver.DefaultOptions(2)
	o.MaxSubSteps = 0
	_, err = fluidsolver.New(e, o)
	require.ErrorIs(s.T(), err, fluidsolver.ErrBadMaxSubSteps)
}

// TestDefaultOptions verifies the dimension-aware gravity default.
func (s *SolverSuite) TestDefaultOptions() {
	o2 := fluidsolver.DefaultOptions(2)
	require.Equal(s.T(), []float64{0, -9.8}, o2.Gravity)

	o1 := fluidsolver.DefaultOptions(1)
	require.Equal(s.T(), []float64{0}, o1.Gravity)
}

// TestStep_RejectsBadDt verifies the time-step fail-fast.
func (s *SolverSuite) TestStep_RejectsBadDt() {
	sv, err := fluidsolver.New(s.extent(4, 4), s.fixedOptions(2))
	require.NoError(s.T(), err)
	require.ErrorIs(s.T(), sv.Step(0), fluidsolver.ErrNonPositiveTimeStep)
	require.ErrorIs(s.T(), sv.Step(-1), fluidsolver.ErrNonPositiveTimeStep)
}

// TestStep_GravityAcceleratesUniformly verifies one full substep on an
// open all-fluid domain: gravity integrates exactly and the uniform
// result is already divergence free, so every later stage is a no-op on
// it.
func (s *SolverSuite) TestStep_GravityAcceleratesUniformly() {
	sv, err := fluidsolver.New(s.extent(8, 8), s.fixedOptions(2))
	require.NoError(s.T(), err)

	require.NoError(s.T(), sv.Step(0.1))

	v := sv.Velocity().Component(1)
	for i := 0; i < v.Len(); i++ {
		require.InDelta(s.T(), -0.98, v.At(i), 1e-9, "v sample %d", i)
	}
	u := sv.Velocity().Component(0)
	for i := 0; i < u.Len(); i++ {
		require.InDelta(s.T(), 0.0, u.At(i), 1e-9, "u sample %d", i)
	}
}

// TestStep_BuoyancyOpposesGravity verifies the supplemental force: a
// uniformly hot field pushes against gravity along the vertical axis.
func (s *SolverSuite) TestStep_BuoyancyOpposesGravity() {
	o := s.fixedOptions(2)
	o.BuoyancyTemperatureFactor = 2
	sv, err := fluidsolver.New(s.extent(8, 8), o)
	require.NoError(s.T(), err)
	sv.Temperature().Fill(1)

	require.NoError(s.T(), sv.Step(0.1))

	v := sv.Velocity().Component(1)
	for i := 0; i < v.Len(); i++ {
		require.InDelta(s.T(), 0.1*(-9.8+2), v.At(i), 1e-9, "v sample %d", i)
	}
}

// TestStep_ForceHook verifies the user force callback runs per substep
// with the working grid.
func (s *SolverSuite) TestStep_ForceHook() {
	o := s.fixedOptions(2)
	o.Gravity = []float64{0, 0}
	sv, err := fluidsolver.New(s.extent(6, 6), o)
	require.NoError(s.T(), err)

	calls := 0
	sv.SetForceHook(func(dt float64, vel *grid.FaceGrid) {
		calls++
		require.Equal(s.T(), 0.25, dt)
		vel.Component(0).Fill(1)
	})

	require.NoError(s.T(), sv.Step(0.25))
	require.Equal(s.T(), 1, calls)
	require.InDelta(s.T(), 1.0, sv.Velocity().Component(0).At(0), 1e-9)
}

// TestStep_CFLSubstepCounting verifies the adaptive split and its cap by
// counting the per-substep log entries.
func (s *SolverSuite) TestStep_CFLSubstepCounting() {
	countSubsteps := func(fill float64, maxSub int) int {
		o := fluidsolver.DefaultOptions(2)
		o.Gravity = []float64{0, 0}
		o.Density = 1
		o.CFLNumber = 1
		o.MaxSubSteps = maxSub
		sv, err := fluidsolver.New(s.extent(4, 4), o)
		require.NoError(s.T(), err)

		logger, hook := test.NewNullLogger()
		logger.SetLevel(logrus.DebugLevel)
		sv.SetLogger(logger)

		sv.Velocity().Component(0).Fill(fill)
		require.NoError(s.T(), sv.Step(1))

		return len(hook.AllEntries())
	}

	require.Equal(s.T(), 1, countSubsteps(0, 8), "still fluid needs one substep")
	require.Equal(s.T(), 2, countSubsteps(2, 8), "speed 2 over unit cells halves the step")
	require.Equal(s.T(), 8, countSubsteps(100, 8), "the cap bounds the split")
}

// TestStep_SolidObstacle verifies that the blocked policy pins faces
// inside a solid to rest across a full step.
func (s *SolverSuite) TestStep_SolidObstacle() {
	o := s.fixedOptions(2)
	o.Gravity = []float64{0, 0}
	o.BoundaryPolicy = pressure.PolicyBlocked
	sv, err := fluidsolver.New(s.extent(8, 8), o)
	require.NoError(s.T(), err)

	solid := field.Sphere{Center: []float64{4, 4}, Radius: 1.5}
	sv.SetBoundary(solid, nil)
	sv.Velocity().Component(0).Fill(3)

	require.NoError(s.T(), sv.Step(0.1))

	// The u-face at index (4,4) sits at world (4.0, 4.5), inside the
	// sphere: it must be at rest after the step.
	u := sv.Velocity().Component(0)
	require.Zero(s.T(), u.At(u.Extent().Flatten([]int{4, 4})))
}

// TestStep_ScalarTransport verifies that density rides a uniform flow:
// after one substep the profile shifts upstream by dt·u.
func (s *SolverSuite) TestStep_ScalarTransport() {
	o := s.fixedOptions(1)
	sv, err := fluidsolver.New(s.extent(32), o)
	require.NoError(s.T(), err)

	// Uniform rightward flow; linear density ramp.
	sv.Velocity().Component(0).Fill(1)
	e := sv.Extent()
	idx := make([]int, 1)
	p := make([]float64, 1)
	den := sv.Density()
	for i := 0; i < den.Len(); i++ {
		e.Unflatten(i, idx)
		e.CenterInto(idx, p)
		den.Set(i, p[0])
	}

	require.NoError(s.T(), sv.Step(0.25))

	den = sv.Density()
	for i := 2; i < den.Len()-2; i++ {
		e.Unflatten(i, idx)
		e.CenterInto(idx, p)
		require.InDelta(s.T(), p[0]-0.25, den.At(i), 1e-9, "sample %d", i)
	}
}

func TestSolverSuite(t *testing.T) {
	suite.Run(t, new(SolverSuite))
}
