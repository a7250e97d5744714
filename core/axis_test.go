package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlspline/core"
)

//----------------------------------------------------------------------------//
// NewAxis and Linspace Tests
//----------------------------------------------------------------------------//

// TestNewAxis_Errors verifies that NewAxis rejects short, duplicated and
// decreasing coordinate sequences with ErrInvalidDomain.
func TestNewAxis_Errors(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
	}{
		{"TooFew", []float64{0, 1}},
		{"Duplicate", []float64{0, 1, 1, 2}},
		{"Decreasing", []float64{0, 2, 1, 3}},
		{"Empty", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewAxis(tc.xs)
			if !errors.Is(err, core.ErrInvalidDomain) {
				t.Errorf("NewAxis(%v) error = %v; want ErrInvalidDomain", tc.xs, err)
			}
		})
	}
}

// TestNewAxis_Accessors checks cached bounds, length and step widths.
func TestNewAxis_Accessors(t *testing.T) {
	ax, err := core.NewAxis([]float64{-1, 0, 2, 5})
	if err != nil {
		t.Fatalf("NewAxis error: %v", err)
	}
	if ax.Len() != 4 {
		t.Errorf("Len() = %d; want 4", ax.Len())
	}
	if ax.Min() != -1 || ax.Max() != 5 {
		t.Errorf("bounds = [%g, %g]; want [-1, 5]", ax.Min(), ax.Max())
	}
	if ax.At(2) != 2 {
		t.Errorf("At(2) = %g; want 2", ax.At(2))
	}
	if ax.Step(1) != 2 {
		t.Errorf("Step(1) = %g; want 2", ax.Step(1))
	}
	if !ax.Contains(0) || ax.Contains(5.1) || ax.Contains(-1.1) {
		t.Error("Contains misreports range membership")
	}
}

// TestNewAxis_Immutable verifies the constructor deep-copies its input.
func TestNewAxis_Immutable(t *testing.T) {
	xs := []float64{0, 1, 2}
	ax, err := core.NewAxis(xs)
	if err != nil {
		t.Fatalf("NewAxis error: %v", err)
	}
	xs[1] = 42
	if ax.At(1) != 1 {
		t.Errorf("At(1) = %g after caller mutation; want 1", ax.At(1))
	}
}

// TestAxis_Interval checks the locator on uniform and non-uniform axes,
// including clamping below Min and above Max.
func TestAxis_Interval(t *testing.T) {
	cases := []struct {
		name string
		xs   []float64
		x    float64
		want int
	}{
		{"UniformInside", []float64{0, 1, 2, 3}, 1.5, 1},
		{"UniformAtKnot", []float64{0, 1, 2, 3}, 2, 2},
		{"UniformAtMax", []float64{0, 1, 2, 3}, 3, 2},
		{"UniformBelowMin", []float64{0, 1, 2, 3}, -5, 0},
		{"UniformAboveMax", []float64{0, 1, 2, 3}, 9, 2},
		{"NonUniformInside", []float64{0, 1, 4, 9, 16}, 5, 2},
		{"NonUniformFirst", []float64{0, 1, 4, 9, 16}, 0.5, 0},
		{"NonUniformLast", []float64{0, 1, 4, 9, 16}, 15.9, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ax, err := core.NewAxis(tc.xs)
			if err != nil {
				t.Fatalf("NewAxis error: %v", err)
			}
			if got := ax.Interval(tc.x); got != tc.want {
				t.Errorf("Interval(%g) = %d; want %d", tc.x, got, tc.want)
			}
		})
	}
}

// TestAxis_Uniform verifies the spacing check passes evenly spaced axes and
// rejects uneven ones with ErrNonuniformGrid.
func TestAxis_Uniform(t *testing.T) {
	even, err := core.NewAxis([]float64{0, 0.5, 1, 1.5})
	if err != nil {
		t.Fatalf("NewAxis error: %v", err)
	}
	if err = even.Uniform(core.UniformTol); err != nil {
		t.Errorf("Uniform on even axis = %v; want nil", err)
	}

	uneven, err := core.NewAxis([]float64{0, 1, 3})
	if err != nil {
		t.Fatalf("NewAxis error: %v", err)
	}
	if err = uneven.Uniform(core.UniformTol); !errors.Is(err, core.ErrNonuniformGrid) {
		t.Errorf("Uniform on uneven axis = %v; want ErrNonuniformGrid", err)
	}
}

// TestLinspace checks exact endpoints, even spacing and input validation.
func TestLinspace(t *testing.T) {
	xs, err := core.Linspace(-2, 3, 11)
	if err != nil {
		t.Fatalf("Linspace error: %v", err)
	}
	if xs[0] != -2 || xs[10] != 3 {
		t.Errorf("endpoints = [%g, %g]; want [-2, 3]", xs[0], xs[10])
	}
	for i := 0; i < len(xs)-1; i++ {
		if math.Abs((xs[i+1]-xs[i])-0.5) > 1e-12 {
			t.Errorf("step %d = %g; want 0.5", i, xs[i+1]-xs[i])
		}
	}

	if _, err = core.Linspace(0, 1, 2); !errors.Is(err, core.ErrInvalidDomain) {
		t.Errorf("Linspace(0,1,2) error = %v; want ErrInvalidDomain", err)
	}
	if _, err = core.Linspace(1, 1, 5); !errors.Is(err, core.ErrInvalidDomain) {
		t.Errorf("Linspace(1,1,5) error = %v; want ErrInvalidDomain", err)
	}
	if _, err = core.Linspace(2, 1, 5); !errors.Is(err, core.ErrInvalidDomain) {
		t.Errorf("Linspace(2,1,5) error = %v; want ErrInvalidDomain", err)
	}
}
