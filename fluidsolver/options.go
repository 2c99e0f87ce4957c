package fluidsolver

import (
	"github.com/marcelomata/gridflow/advect"
	"github.com/marcelomata/gridflow/linsolve"
	"github.com/marcelomata/gridflow/pressure"
)

// TimeStepMode selects how Step splits dt into substeps.
type TimeStepMode int

const (
	// TimeStepFixed performs one substep per Step call.
	TimeStepFixed TimeStepMode = iota
	// TimeStepCFL splits dt so no sample moves more than CFLNumber cell
	// spacings per substep, capped at MaxSubSteps.
	TimeStepCFL
)

// Options is the solver configuration surface. Zero values are not
// usable; start from DefaultOptions and override.
type Options struct {
	// Gravity is the body acceleration per axis. Length must match the
	// grid dimensionality.
	Gravity []float64
	// Viscosity is the velocity diffusion coefficient; zero skips the
	// diffusion stage for velocity.
	Viscosity float64
	// ScalarDiffusion is the coefficient applied to density and
	// temperature; zero skips it.
	ScalarDiffusion float64
	// Density is the fluid density used by the pressure projection.
	Density float64

	TimeStepMode TimeStepMode
	CFLNumber    float64
	MaxSubSteps  int

	// BoundaryPolicy selects how the enforcer treats faces in solids.
	BoundaryPolicy pressure.Policy
	// AdvectScheme selects the backtrace integrator.
	AdvectScheme advect.TraceScheme

	// PressureSolver overrides the linear solver used by the projection.
	// Nil selects ICCG with PressureTolerance and PressureMaxIterations.
	PressureSolver        linsolve.Solver
	PressureTolerance     float64
	PressureMaxIterations int

	// ImplicitDiffusion switches both diffusion stages from forward
	// Euler to the unconditionally stable backward Euler solve.
	ImplicitDiffusion bool

	// Buoyancy adds (TemperatureFactor·T − DensityFactor·d) per sample
	// along the up direction. Both zero disables the term.
	BuoyancyDensityFactor     float64
	BuoyancyTemperatureFactor float64
}

// DefaultOptions returns water-like defaults for a dims-dimensional
// domain: gravity −9.8 on the vertical axis (axis 1 when present),
// ICCG pressure solve, midpoint advection, CFL time stepping.
func DefaultOptions(dims int) Options {
	g := make([]float64, dims)
	if dims >= 2 {
		g[1] = -9.8
	}

	return Options{
		Gravity:               g,
		Density:               1000,
		TimeStepMode:          TimeStepCFL,
		CFLNumber:             1,
		MaxSubSteps:           8,
		BoundaryPolicy:        pressure.PolicyFractional,
		AdvectScheme:          advect.TraceMidpoint,
		PressureTolerance:     1e-6,
		PressureMaxIterations: 1000,
	}
}

// validate reports the first invalid option for a dims-dimensional
// domain.
func (o Options) validate(dims int) error {
	if o.Density <= 0 {
		return ErrBadDensity
	}
	if len(o.Gravity) != dims {
		return ErrGravityDims
	}
	if o.TimeStepMode == TimeStepCFL && o.CFLNumber <= 0 {
		return ErrBadCFLNumber
	}
	if o.MaxSubSteps < 1 {
		return ErrBadMaxSubSteps
	}

	return nil
}
