package core

import (
	"fmt"
	"math"
)

const (
	// MinPoints is the minimum coordinate count accepted by NewAxis.
	// Cubic construction needs at least one true interior node; clamped
	// splines would be well-posed for two points, but both engines require
	// MinPoints uniformly to keep a single contract across variants.
	MinPoints = 3

	// UniformTol is the relative second-difference tolerance used by
	// Axis.Uniform: spacing deviations up to UniformTol×max|coord| pass.
	UniformTol = 1e-8
)

// Axis is an immutable, strictly increasing coordinate sequence with cached
// bounds. It is the sole authority on "is x inside the fitted range" and on
// locating the sub-interval that encloses a query coordinate.
type Axis struct {
	xs       []float64
	min, max float64
	// dx is the mean spacing, used as a first-guess stride by Interval.
	dx float64
}

// NewAxis validates and deep-copies xs into an Axis.
// Returns ErrInvalidDomain (wrapped with context) when len(xs) < MinPoints or
// xs is not strictly increasing.
// Complexity: O(n) time and memory.
func NewAxis(xs []float64) (*Axis, error) {
	if len(xs) < MinPoints {
		return nil, fmt.Errorf("core: NewAxis needs at least %d coordinates, got %d: %w",
			MinPoints, len(xs), ErrInvalidDomain)
	}
	for i := 0; i < len(xs)-1; i++ {
		if xs[i+1] <= xs[i] {
			return nil, fmt.Errorf("core: NewAxis coordinates must be strictly increasing, violated at index %d (%g ≥ %g): %w",
				i, xs[i], xs[i+1], ErrInvalidDomain)
		}
	}

	cp := make([]float64, len(xs))
	copy(cp, xs)

	return &Axis{
		xs:  cp,
		min: cp[0],
		max: cp[len(cp)-1],
		dx:  (cp[len(cp)-1] - cp[0]) / float64(len(cp)-1),
	}, nil
}

// Len returns the number of coordinates. Complexity: O(1).
func (a *Axis) Len() int { return len(a.xs) }

// At returns the i-th coordinate. Complexity: O(1).
func (a *Axis) At(i int) float64 { return a.xs[i] }

// Min returns the smallest (first) coordinate. Complexity: O(1).
func (a *Axis) Min() float64 { return a.min }

// Max returns the largest (last) coordinate. Complexity: O(1).
func (a *Axis) Max() float64 { return a.max }

// Step returns the width of sub-interval i: xs[i+1]-xs[i]. Complexity: O(1).
func (a *Axis) Step(i int) float64 { return a.xs[i+1] - a.xs[i] }

// Contains reports whether x lies within [Min, Max]. Complexity: O(1).
func (a *Axis) Contains(x float64) bool { return x >= a.min && x <= a.max }

// Coords returns a copy of the coordinate sequence. Complexity: O(n).
func (a *Axis) Coords() []float64 {
	cp := make([]float64, len(a.xs))
	copy(cp, a.xs)

	return cp
}

// Interval returns the index i of the sub-interval [xs[i], xs[i+1]] that
// encloses x: the largest i with xs[i] ≤ x, clamped to [0, Len-2]. Queries
// below Min map to 0 and queries above Max map to Len-2, so callers that skip
// bounds enforcement evaluate the nearest boundary polynomial.
//
// A mean-spacing guess resolves evenly spaced axes in O(1); otherwise a
// binary search finishes in O(log n). Never allocates.
func (a *Axis) Interval(x float64) int {
	// Fast path under the assumption of uniform spacing.
	if g := int((x - a.min) / a.dx); g >= 0 && g < len(a.xs)-1 &&
		a.xs[g] <= x && x <= a.xs[g+1] {
		return g
	}

	lo, hi := 0, len(a.xs)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if a.xs[mid] <= x {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// Uniform verifies that the axis spacing is even within the relative
// tolerance tol×max(|Min|,|Max|): every step must match the first one.
// Returns ErrNonuniformGrid (wrapped with the offending index) on violation.
// Complexity: O(n).
func (a *Axis) Uniform(tol float64) error {
	scale := math.Max(math.Abs(a.min), math.Abs(a.max))
	if scale == 0 {
		scale = 1
	}
	h0 := a.xs[1] - a.xs[0]
	for i := 1; i < len(a.xs)-1; i++ {
		if math.Abs((a.xs[i+1]-a.xs[i])-h0) > tol*scale {
			return fmt.Errorf("core: axis spacing deviates at index %d (step %g vs %g): %w",
				i, a.xs[i+1]-a.xs[i], h0, ErrNonuniformGrid)
		}
	}

	return nil
}

// Linspace returns n evenly spaced coordinates over [x0, x1] with exact
// endpoints. It is the sampling primitive behind the NewFromFunc factories.
// Returns ErrInvalidDomain when n < MinPoints or x1 ≤ x0.
// Complexity: O(n).
func Linspace(x0, x1 float64, n int) ([]float64, error) {
	if n < MinPoints {
		return nil, fmt.Errorf("core: Linspace needs at least %d points, got %d: %w",
			MinPoints, n, ErrInvalidDomain)
	}
	if x1 <= x0 {
		return nil, fmt.Errorf("core: Linspace range [%g, %g] is empty: %w",
			x0, x1, ErrInvalidDomain)
	}

	xs := make([]float64, n)
	span := x1 - x0
	for i := range xs {
		xs[i] = x0 + span*float64(i)/float64(n-1)
	}
	// Guard the last coordinate against rounding drift: samplers rely on the
	// axis ending exactly at x1.
	xs[n-1] = x1

	return xs, nil
}
