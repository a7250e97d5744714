package cubic

import (
	"fmt"

	"github.com/katalvlaran/lvlspline/core"
)

// coeff holds one sub-interval's polynomial a + b·ξ + c·ξ² + d·ξ³, ξ = x − xᵢ.
type coeff struct {
	a, b, c, d float64
}

// Spline is an immutable 1-D piecewise-cubic interpolant. Construct with New
// or NewFromFunc; evaluation never mutates state, so a Spline is safe for
// concurrent use.
type Spline struct {
	ax       *core.Axis
	coeffs   []coeff
	boundary BoundaryMode
}

// New fits a cubic spline through the knots (xs[i], ys[i]).
//
// Algorithm outline:
//  1. Validate: len(xs) == len(ys), xs strictly increasing, ≥ core.MinPoints.
//  2. Assemble the tridiagonal curvature system (natural rows pin c to zero
//     at the ends; clamped rows encode the supplied endpoint slopes).
//  3. Forward elimination, then back-substitution for the c coefficients.
//  4. Derive b and d per interval; a is the knot value itself.
//
// Returns core.ErrInvalidDomain (wrapped) on any validation failure; no
// partially built Spline ever escapes. A nil opts fits a natural spline.
//
// Complexity: O(n) time and memory. The elimination sweep uses transient
// working arrays discarded once the coefficient table is final.
func New(xs, ys []float64, opts *Options) (*Spline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("cubic: New got %d coordinates but %d values: %w",
			len(xs), len(ys), core.ErrInvalidDomain)
	}
	mode := Natural
	left, right := 0.0, 0.0
	if opts != nil {
		mode = opts.Boundary
		left, right = opts.LeftSlope, opts.RightSlope
	}
	if mode != Natural && mode != Clamped {
		return nil, fmt.Errorf("cubic: New got unknown boundary mode %d: %w",
			mode, core.ErrInvalidDomain)
	}

	ax, err := core.NewAxis(xs)
	if err != nil {
		return nil, fmt.Errorf("cubic: New: %w", err)
	}

	return &Spline{
		ax:       ax,
		coeffs:   solve(xs, ys, mode, left, right),
		boundary: mode,
	}, nil
}

// NewFromFunc samples f at n evenly spaced points over [x0, x1] and fits a
// spline through the samples. It is a convenience factory that delegates to
// New; the sampling itself performs no interpolation logic.
// Returns core.ErrInvalidDomain when n < core.MinPoints or x1 ≤ x0.
// Complexity: O(n) plus n calls to f.
func NewFromFunc(f func(float64) float64, x0, x1 float64, n int, opts *Options) (*Spline, error) {
	xs, err := core.Linspace(x0, x1, n)
	if err != nil {
		return nil, fmt.Errorf("cubic: NewFromFunc: %w", err)
	}
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}

	return New(xs, ys, opts)
}

// solve runs the tridiagonal sweep and returns the per-interval coefficient
// table. Inputs are pre-validated: xs strictly increasing, lengths equal,
// n ≥ core.MinPoints. The l/mu/z working arrays are local to this call.
func solve(xs, ys []float64, mode BoundaryMode, left, right float64) []coeff {
	n := len(xs)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	alpha := make([]float64, n)
	for i := 1; i < n-1; i++ {
		alpha[i] = 3*(ys[i+1]-ys[i])/h[i] - 3*(ys[i]-ys[i-1])/h[i-1]
	}

	l := make([]float64, n)
	mu := make([]float64, n)
	z := make([]float64, n)
	c := make([]float64, n)

	// First row: natural pins c[0]=0, clamped encodes the left slope.
	if mode == Clamped {
		alpha[0] = 3*(ys[1]-ys[0])/h[0] - 3*left
		l[0] = 2 * h[0]
		mu[0] = 0.5
		z[0] = alpha[0] / l[0]
	} else {
		l[0] = 1
	}

	// Forward elimination over interior rows.
	for i := 1; i < n-1; i++ {
		l[i] = 2*(xs[i+1]-xs[i-1]) - h[i-1]*mu[i-1]
		mu[i] = h[i] / l[i]
		z[i] = (alpha[i] - h[i-1]*z[i-1]) / l[i]
	}

	// Last row: natural pins c[n-1]=0, clamped encodes the right slope.
	if mode == Clamped {
		alpha[n-1] = 3*right - 3*(ys[n-1]-ys[n-2])/h[n-2]
		l[n-1] = h[n-2] * (2 - mu[n-2])
		z[n-1] = (alpha[n-1] - h[n-2]*z[n-2]) / l[n-1]
		c[n-1] = z[n-1]
	} else {
		l[n-1] = 1
	}

	// Back-substitution and per-interval coefficient derivation.
	coeffs := make([]coeff, n-1)
	for j := n - 2; j >= 0; j-- {
		c[j] = z[j] - mu[j]*c[j+1]
		coeffs[j] = coeff{
			a: ys[j],
			b: (ys[j+1]-ys[j])/h[j] - h[j]*(c[j+1]+2*c[j])/3,
			c: c[j],
			d: (c[j+1] - c[j]) / (3 * h[j]),
		}
	}

	return coeffs
}

// Boundary reports which endpoint condition the spline was fitted with.
// Complexity: O(1).
func (s *Spline) Boundary() BoundaryMode { return s.boundary }

// Knots returns the number of fitted knots. Complexity: O(1).
func (s *Spline) Knots() int { return s.ax.Len() }

// Min returns the lower end of the fitted range. Complexity: O(1).
func (s *Spline) Min() float64 { return s.ax.Min() }

// Max returns the upper end of the fitted range. Complexity: O(1).
func (s *Spline) Max() float64 { return s.ax.Max() }

// Eval returns the spline value at x with bounds enforcement: queries outside
// [Min, Max] fail with core.ErrOutOfDomain and are never silently clamped.
// Use Extrapolate to opt out of enforcement for a single call.
// Complexity: O(log n) lookup + O(1) polynomial, zero allocation.
func (s *Spline) Eval(x float64) (float64, error) {
	if !s.ax.Contains(x) {
		return 0, fmt.Errorf("cubic: Eval(%g) outside fitted range [%g, %g]: %w",
			x, s.ax.Min(), s.ax.Max(), core.ErrOutOfDomain)
	}

	return s.at(x, 0), nil
}

// Extrapolate returns the spline value at x without bounds enforcement:
// out-of-range queries continue the nearest boundary polynomial. The result
// is always finite, but carries no approximation guarantee beyond the fitted
// range. Complexity: O(log n), zero allocation.
func (s *Spline) Extrapolate(x float64) float64 {
	return s.at(x, 0)
}

// Diff returns the order-th derivative of the spline at x (order 0 is the
// value itself; orders above 3 are identically zero). Bounds are enforced
// exactly as in Eval. Complexity: O(log n), zero allocation.
func (s *Spline) Diff(x float64, order int) (float64, error) {
	if !s.ax.Contains(x) {
		return 0, fmt.Errorf("cubic: Diff(%g) outside fitted range [%g, %g]: %w",
			x, s.ax.Min(), s.ax.Max(), core.ErrOutOfDomain)
	}

	return s.at(x, order), nil
}

// at evaluates the local polynomial (or its derivative) in the offset from
// the enclosing interval's origin. Interval is clamped, so at is total.
func (s *Spline) at(x float64, order int) float64 {
	i := s.ax.Interval(x)
	co := s.coeffs[i]

	return core.CubicDiff(co.a, co.b, co.c, co.d, x-s.ax.At(i), order)
}
