package fluidsolver

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/marcelomata/gridflow/advect"
	"github.com/marcelomata/gridflow/linsolve"
	"github.com/marcelomata/gridflow/pressure"
)

// LoadOptions reads solver settings from an INI file for a
// dims-dimensional domain. Every key is optional and falls back to
// DefaultOptions(dims). Recognized layout:
//
//	[solver]
//	gravity            = 0, -9.8        ; comma-separated, one per axis
//	density            = 1000
//	viscosity          = 0
//	scalar_diffusion   = 0
//	implicit_diffusion = false
//
//	[time]
//	mode         = cfl                  ; fixed | cfl
//	cfl_number   = 1
//	max_substeps = 8
//
//	[boundary]
//	policy = fractional                 ; blocked | fractional
//
//	[advect]
//	scheme = midpoint                   ; euler | midpoint
//
//	[pressure]
//	solver         = iccg               ; jacobi | gauss-seidel | cg | iccg
//	tolerance      = 1e-6
//	max_iterations = 1000
//
//	[buoyancy]
//	density_factor     = 0
//	temperature_factor = 0
func LoadOptions(path string, dims int) (Options, error) {
	o := DefaultOptions(dims)

	cfg, err := ini.Load(path)
	if err != nil {
		return o, fmt.Errorf("fluidsolver: load config: %w", err)
	}

	solver := cfg.Section("solver")
	if solver.HasKey("gravity") {
		o.Gravity = solver.Key("gravity").Float64s(",")
	}
	o.Density = solver.Key("density").MustFloat64(o.Density)
	o.Viscosity = solver.Key("viscosity").MustFloat64(o.Viscosity)
	o.ScalarDiffusion = solver.Key("scalar_diffusion").MustFloat64(o.ScalarDiffusion)
	o.ImplicitDiffusion = solver.Key("implicit_diffusion").MustBool(o.ImplicitDiffusion)

	tm := cfg.Section("time")
	if tm.HasKey("mode") {
		switch tm.Key("mode").String() {
		case "fixed":
			o.TimeStepMode = TimeStepFixed
		case "cfl":
			o.TimeStepMode = TimeStepCFL
		default:
			return o, fmt.Errorf("%w: %q", ErrUnknownTimeStepMode, tm.Key("mode").String())
		}
	}
	o.CFLNumber = tm.Key("cfl_number").MustFloat64(o.CFLNumber)
	o.MaxSubSteps = tm.Key("max_substeps").MustInt(o.MaxSubSteps)

	if b := cfg.Section("boundary"); b.HasKey("policy") {
		switch b.Key("policy").String() {
		case "blocked":
			o.BoundaryPolicy = pressure.PolicyBlocked
		case "fractional":
			o.BoundaryPolicy = pressure.PolicyFractional
		default:
			return o, fmt.Errorf("%w: %q", ErrUnknownBoundaryPolicy, b.Key("policy").String())
		}
	}

	if a := cfg.Section("advect"); a.HasKey("scheme") {
		switch a.Key("scheme").String() {
		case "euler":
			o.AdvectScheme = advect.TraceEuler
		case "midpoint":
			o.AdvectScheme = advect.TraceMidpoint
		default:
			return o, fmt.Errorf("fluidsolver: unknown advect scheme %q", a.Key("scheme").String())
		}
	}

	pr := cfg.Section("pressure")
	o.PressureTolerance = pr.Key("tolerance").MustFloat64(o.PressureTolerance)
	o.PressureMaxIterations = pr.Key("max_iterations").MustInt(o.PressureMaxIterations)
	if pr.HasKey("solver") {
		opts := linsolve.Options{
			Tolerance:     o.PressureTolerance,
			MaxIterations: o.PressureMaxIterations,
		}
		switch pr.Key("solver").String() {
		case "jacobi":
			o.PressureSolver = linsolve.NewJacobi(opts)
		case "gauss-seidel":
			o.PressureSolver = linsolve.NewGaussSeidel(opts)
		case "cg":
			o.PressureSolver = linsolve.NewCG(opts)
		case "iccg":
			o.PressureSolver = linsolve.NewICCG(opts)
		default:
			return o, fmt.Errorf("%w: %q", ErrUnknownPressureSolver, pr.Key("solver").String())
		}
	}

	buoy := cfg.Section("buoyancy")
	o.BuoyancyDensityFactor = buoy.Key("density_factor").MustFloat64(o.BuoyancyDensityFactor)
	o.BuoyancyTemperatureFactor = buoy.Key("temperature_factor").MustFloat64(o.BuoyancyTemperatureFactor)

	return o, nil
}
