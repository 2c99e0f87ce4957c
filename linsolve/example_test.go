// File: linsolve/example_test.go
package linsolve_test

import (
	"fmt"

	"github.com/marcelomata/gridflow/linsolve"
)

// ExampleGaussSeidel demonstrates solving a tiny 1-D stencil system
//
//	| 2 -1 | |x0|   |1|
//	|-1  2 | |x1| = |1|
//
// whose exact solution is x0 = x1 = 1.
func ExampleGaussSeidel() {
	sys := linsolve.NewSystem([]int{2})
	sys.Diag[0], sys.Diag[1] = 2, 2
	sys.Plus[0][0] = -1
	sys.B[0], sys.B[1] = 1, 1

	solver := linsolve.NewGaussSeidel(linsolve.Options{Tolerance: 1e-10, MaxIterations: 100})
	res, err := solver.Solve(sys)
	if err != nil {
		fmt.Println("solve:", err)
		return
	}

	fmt.Printf("converged: %v\n", res.Converged)
	fmt.Printf("x = [%.3f %.3f]\n", sys.X[0], sys.X[1])

	// Output:
	// converged: true
	// x = [1.000 1.000]
}
