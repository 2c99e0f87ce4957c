package fluidsolver

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/marcelomata/gridflow/advect"
	"github.com/marcelomata/gridflow/diffusion"
	"github.com/marcelomata/gridflow/field"
	"github.com/marcelomata/gridflow/grid"
	"github.com/marcelomata/gridflow/linsolve"
	"github.com/marcelomata/gridflow/pressure"
)

// ForceHook receives the working velocity grid after gravity and
// buoyancy have been applied and may add arbitrary accelerations for
// the substep.
type ForceHook func(dt float64, vel *grid.FaceGrid)

// Solver advances an incompressible velocity field and two passive
// scalars (density, temperature) over a fixed Extent. Grids are double
// buffered and swapped between stages. Not safe for concurrent use.
type Solver struct {
	opts   Options
	extent grid.Extent

	vel     *grid.FaceGrid
	velTmp  *grid.FaceGrid
	den     *grid.ScalarGrid
	denTmp  *grid.ScalarGrid
	temp    *grid.ScalarGrid
	tempTmp *grid.ScalarGrid

	boundarySdf field.ScalarField
	fluidSdf    field.ScalarField
	collider    field.VectorField
	forceHook   ForceHook

	advector  *advect.SemiLagrangian
	explicit  *diffusion.Explicit
	implicit  *diffusion.Implicit
	enforcer  *pressure.Enforcer
	projector *pressure.Projector

	log   *logrus.Logger
	frame int
}

// New builds a solver over e. By default the whole domain is fluid and
// there is no solid geometry; see SetBoundary and SetFluidSdf.
func New(e grid.Extent, opts Options) (*Solver, error) {
	if err := opts.validate(e.Dims()); err != nil {
		return nil, err
	}

	psolver := opts.PressureSolver
	if psolver == nil {
		psolver = linsolve.NewICCG(linsolve.Options{
			Tolerance:     opts.PressureTolerance,
			MaxIterations: opts.PressureMaxIterations,
		})
	}
	projector, err := pressure.NewProjector(opts.Density, psolver)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)

	return &Solver{
		opts:        opts,
		extent:      e,
		vel:         grid.NewFaceGrid(e),
		velTmp:      grid.NewFaceGrid(e),
		den:         grid.NewScalarGrid(e),
		denTmp:      grid.NewScalarGrid(e),
		temp:        grid.NewScalarGrid(e),
		tempTmp:     grid.NewScalarGrid(e),
		boundarySdf: field.ConstantScalar{Value: math.MaxFloat64},
		fluidSdf:    field.ConstantScalar{Value: -1},
		advector:    advect.New(advect.Options{Scheme: opts.AdvectScheme}),
		explicit:    diffusion.NewExplicit(),
		implicit:    diffusion.NewImplicit(nil),
		enforcer:    pressure.NewEnforcer(opts.BoundaryPolicy, nil),
		projector:   projector,
		log:         log,
	}, nil
}

// Velocity returns the current velocity grid. Valid until the next Step.
func (s *Solver) Velocity() *grid.FaceGrid { return s.vel }

// Density returns the passive density grid. Valid until the next Step.
func (s *Solver) Density() *grid.ScalarGrid { return s.den }

// Temperature returns the passive temperature grid. Valid until the
// next Step.
func (s *Solver) Temperature() *grid.ScalarGrid { return s.temp }

// Extent returns the cell lattice the solver runs on.
func (s *Solver) Extent() grid.Extent { return s.extent }

// SetBoundary installs solid geometry as an SDF plus an optional
// collider velocity field for moving obstacles. A nil sdf removes all
// solids.
func (s *Solver) SetBoundary(sdf field.ScalarField, collider field.VectorField) {
	if sdf == nil {
		sdf = field.ConstantScalar{Value: math.MaxFloat64}
	}
	s.boundarySdf = sdf
	s.collider = collider
	s.enforcer = pressure.NewEnforcer(s.opts.BoundaryPolicy, collider)
}

// SetFluidSdf installs the fluid region. A nil sdf marks the whole
// non-solid domain as fluid.
func (s *Solver) SetFluidSdf(sdf field.ScalarField) {
	if sdf == nil {
		sdf = field.ConstantScalar{Value: -1}
	}
	s.fluidSdf = sdf
}

// SetForceHook installs a per-substep external force callback.
func (s *Solver) SetForceHook(h ForceHook) { s.forceHook = h }

// SetLogger replaces the solver's logger. Must not be nil.
func (s *Solver) SetLogger(log *logrus.Logger) { s.log = log }

// Step advances the simulation by dt, splitting it into substeps under
// the CFL policy. Returns ErrNonPositiveTimeStep when dt <= 0; stage
// failures abort the step with the offending substep partially applied.
func (s *Solver) Step(dt float64) error {
	if dt <= 0 {
		return ErrNonPositiveTimeStep
	}

	n := s.subStepCount(dt)
	sub := dt / float64(n)
	s.frame++
	for i := 0; i < n; i++ {
		res, err := s.stepOnce(sub)
		if err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"frame":              s.frame,
			"substep":            i,
			"dt":                 sub,
			"cfl":                s.cfl(sub),
			"pressureIterations": res.Iterations,
			"residual":           res.Residual,
		}).Debug("substep complete")
	}

	return nil
}

// subStepCount returns how many substeps dt is split into under the
// configured policy.
func (s *Solver) subStepCount(dt float64) int {
	if s.opts.TimeStepMode != TimeStepCFL {
		return 1
	}
	maxVel := s.vel.MaxAbsComponent()
	if maxVel == 0 {
		return 1
	}
	limit := s.opts.CFLNumber * s.extent.MinSpacing() / maxVel
	n := int(math.Ceil(dt / limit))
	if n < 1 {
		n = 1
	}
	if n > s.opts.MaxSubSteps {
		n = s.opts.MaxSubSteps
	}

	return n
}

// cfl returns the Courant number of the current velocity field at dt.
func (s *Solver) cfl(dt float64) float64 {
	return s.vel.MaxAbsComponent() * dt / s.extent.MinSpacing()
}

// stepOnce runs one full substep: forces, velocity advection, viscosity,
// boundary enforcement, projection, enforcement again, scalar transport.
// Returns the pressure solve result for logging.
func (s *Solver) stepOnce(dt float64) (linsolve.Result, error) {
	s.applyForces(dt)

	if err := s.advector.AdvectFaces(s.vel, s.vel, dt, s.velTmp); err != nil {
		return linsolve.Result{}, fmt.Errorf("advect velocity: %w", err)
	}
	s.vel, s.velTmp = s.velTmp, s.vel

	if s.opts.Viscosity > 0 {
		if err := s.diffuseFaces(s.vel, s.opts.Viscosity, dt, s.velTmp); err != nil {
			return linsolve.Result{}, fmt.Errorf("diffuse velocity: %w", err)
		}
		s.vel, s.velTmp = s.velTmp, s.vel
	}

	if err := s.enforcer.Apply(s.vel, s.boundarySdf); err != nil {
		return linsolve.Result{}, fmt.Errorf("enforce boundary: %w", err)
	}

	res, err := s.projector.Project(s.vel, dt, s.velTmp, s.boundarySdf, s.fluidSdf)
	if err != nil {
		return res, fmt.Errorf("project: %w", err)
	}
	s.vel, s.velTmp = s.velTmp, s.vel

	if err := s.enforcer.Apply(s.vel, s.boundarySdf); err != nil {
		return res, fmt.Errorf("enforce boundary: %w", err)
	}

	if err := s.advectScalar(s.den, dt, s.denTmp); err != nil {
		return res, fmt.Errorf("advect density: %w", err)
	}
	s.den, s.denTmp = s.denTmp, s.den
	if err := s.advectScalar(s.temp, dt, s.tempTmp); err != nil {
		return res, fmt.Errorf("advect temperature: %w", err)
	}
	s.temp, s.tempTmp = s.tempTmp, s.temp

	if s.opts.ScalarDiffusion > 0 {
		if err := s.diffuseScalar(s.den, dt, s.denTmp); err != nil {
			return res, fmt.Errorf("diffuse density: %w", err)
		}
		s.den, s.denTmp = s.denTmp, s.den
		if err := s.diffuseScalar(s.temp, dt, s.tempTmp); err != nil {
			return res, fmt.Errorf("diffuse temperature: %w", err)
		}
		s.temp, s.tempTmp = s.tempTmp, s.temp
	}

	return res, nil
}

// applyForces adds gravity, buoyancy and the user hook to the velocity.
func (s *Solver) applyForces(dt float64) {
	for a, g := range s.opts.Gravity {
		if g == 0 {
			continue
		}
		data := s.vel.Component(a).Data()
		dv := dt * g
		grid.ParallelChunks(0, len(data), func(lo, hi int) {
			for i := lo; i < hi; i++ {
				data[i] += dv
			}
		})
	}

	s.applyBuoyancy(dt)

	if s.forceHook != nil {
		s.forceHook(dt, s.vel)
	}
}

// applyBuoyancy adds (temperatureFactor·T − densityFactor·d)·dt along
// the up direction, the axis opposing the strongest gravity component.
// Skipped when both factors are zero or gravity vanishes.
func (s *Solver) applyBuoyancy(dt float64) {
	df := s.opts.BuoyancyDensityFactor
	tf := s.opts.BuoyancyTemperatureFactor
	if df == 0 && tf == 0 {
		return
	}

	up, sign := 0, 1.0
	var gmax float64
	for a, g := range s.opts.Gravity {
		if ag := math.Abs(g); ag > gmax {
			gmax = ag
			up = a
			sign = 1
			if g > 0 {
				sign = -1
			}
		}
	}
	if gmax == 0 {
		return
	}

	comp := s.vel.Component(up)
	fe := comp.Extent()
	data := comp.Data()
	d := fe.Dims()

	grid.ParallelChunks(0, len(data), func(lo, hi int) {
		idx := make([]int, d)
		p := make([]float64, d)
		denSampler := s.den.Sampler()
		tempSampler := s.temp.Sampler()
		for i := lo; i < hi; i++ {
			fe.Unflatten(i, idx)
			fe.CenterInto(idx, p)
			f := tf*tempSampler.Sample(p) - df*denSampler.Sample(p)
			data[i] += dt * sign * f
		}
	})
}

func (s *Solver) diffuseFaces(src *grid.FaceGrid, coeff, dt float64, dst *grid.FaceGrid) error {
	if s.opts.ImplicitDiffusion {
		_, err := s.implicit.SolveFaces(src, coeff, dt, dst, s.boundarySdf, s.fluidSdf)

		return err
	}

	return s.explicit.SolveFaces(src, coeff, dt, dst, s.boundarySdf, s.fluidSdf)
}

func (s *Solver) advectScalar(src *grid.ScalarGrid, dt float64, dst *grid.ScalarGrid) error {
	return s.advector.Advect(src, s.vel, dt, dst)
}

func (s *Solver) diffuseScalar(src *grid.ScalarGrid, dt float64, dst *grid.ScalarGrid) error {
	if s.opts.ImplicitDiffusion {
		_, err := s.implicit.Solve(src, s.opts.ScalarDiffusion, dt, dst, s.boundarySdf, s.fluidSdf)

		return err
	}

	return s.explicit.Solve(src, s.opts.ScalarDiffusion, dt, dst, s.boundarySdf, s.fluidSdf)
}
