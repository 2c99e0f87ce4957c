// File: fluidsolver/example_test.go
package fluidsolver_test

import (
	"fmt"

	"github.com/marcelomata/gridflow/fluidsolver"
	"github.com/marcelomata/gridflow/grid"
)

// ExampleSolver advances a small open water column by one fixed step and
// reads the speed gravity imparted.
// Scenario:
//
//   - 8×8 unit cells, whole domain fluid, no solids
//   - fixed time stepping, one substep of 0.1
//   - gravity −9.8 on the vertical axis, so |v| = 0.98 afterwards
func ExampleSolver() {
	extent, err := grid.NewUniformExtent([]int{8, 8}, 1)
	if err != nil {
		fmt.Println("extent:", err)
		return
	}

	opts := fluidsolver.DefaultOptions(2)
	opts.TimeStepMode = fluidsolver.TimeStepFixed
	opts.Density = 1

	solver, err := fluidsolver.New(extent, opts)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	if err := solver.Step(0.1); err != nil {
		fmt.Println("step:", err)
		return
	}

	fmt.Printf("max speed: %.2f\n", solver.Velocity().MaxAbsComponent())

	// Output:
	// max speed: 0.98
}
