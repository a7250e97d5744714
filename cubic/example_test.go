package cubic_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlspline/core"
	"github.com/katalvlaran/lvlspline/cubic"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Reconstruct a smooth curve through the zig-zag samples
//	  (0,0) (1,1) (2,0) (3,1)
//	with the default natural boundary (zero end curvature), then query
//	halfway between two knots.
//
// Complexity: O(n) fit, O(log n) per query
func ExampleNew() {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 0, 1}

	sp, err := cubic.New(xs, ys, nil) // nil options = natural boundary
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, err := sp.Eval(1.5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("f(1.5) = %.3f\n", v)
	// Output:
	// f(1.5) = 0.500
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleNew_clamped
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fit a bump through (0,0) (1,1) (2,0) with flat tangents pinned at both
//	ends — the clamped boundary condition. The fitted endpoint slopes match
//	the supplied ones exactly.
func ExampleNew_clamped() {
	opts := cubic.DefaultOptions()
	opts.Boundary = cubic.Clamped
	opts.LeftSlope, opts.RightSlope = 0, 0

	sp, err := cubic.New([]float64{0, 1, 2}, []float64{0, 1, 0}, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	slope, err := sp.Diff(0, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("f'(0) = %.3f\n", slope)
	// Output:
	// f'(0) = 0.000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSpline_Eval_outOfDomain
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Bounds enforcement is the default: queries past the fitted range fail
//	with core.ErrOutOfDomain. Extrapolate opts out for a single call and
//	continues the boundary polynomial instead.
func ExampleSpline_Eval_outOfDomain() {
	sp, err := cubic.New([]float64{0, 1, 2}, []float64{0, 1, 0}, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if _, err = sp.Eval(2.5); errors.Is(err, core.ErrOutOfDomain) {
		fmt.Println("Eval(2.5): out of domain")
	}
	fmt.Printf("Extrapolate(2.5) = %.4f\n", sp.Extrapolate(2.5))
	// Output:
	// Eval(2.5): out of domain
	// Extrapolate(2.5) = -0.6875
}
