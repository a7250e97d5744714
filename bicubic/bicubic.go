package bicubic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlspline/core"
)

// Surface is an immutable piecewise-bicubic interpolant over a uniform grid.
// Construct with New or NewFromFunc; evaluation never mutates state, so a
// Surface is safe for concurrent use.
type Surface struct {
	grid *core.Grid
	// cells[i][j] holds the coefficient matrix of the cell spanning
	// [x_i, x_{i+1}] × [y_j, y_{j+1}].
	cells [][][4][4]float64
}

// New fits a bicubic surface to z[i][j] sampled at (xs[i], ys[j]).
//
// Algorithm outline:
//  1. Validate via core.NewGrid: both axes strictly increasing with at least
//     core.MinPoints coordinates and even spacing within core.UniformTol,
//     z shaped len(xs)×len(ys). Fail-fast, no partial Surface.
//  2. Estimate ∂z/∂x, ∂z/∂y and ∂²z/∂x∂y at every node (central differences
//     inside, one-sided three-point estimates on the boundary).
//  3. Per cell, combine the four corners' Hermite data through α = A·F·Aᵗ.
//
// Returns core.ErrInvalidDomain or core.ErrNonuniformGrid (wrapped) on
// validation failure. Complexity: O(nx·ny) time and memory; the derivative
// fields are transient working storage discarded after construction.
func New(xs, ys []float64, z [][]float64) (*Surface, error) {
	grid, err := core.NewGrid(xs, ys, z)
	if err != nil {
		return nil, fmt.Errorf("bicubic: New: %w", err)
	}

	dx, dy, dxy := nodeDerivatives(grid)

	nx, ny := grid.X().Len(), grid.Y().Len()
	cells := make([][][4][4]float64, nx-1)
	for i := range cells {
		cells[i] = make([][4][4]float64, ny-1)
		for j := range cells[i] {
			cells[i][j] = cellCoefficients(grid, dx, dy, dxy, i, j)
		}
	}

	return &Surface{grid: grid, cells: cells}, nil
}

// NewFromFunc samples f on an evenly spaced nx×ny grid over
// [x0, x1] × [y0, y1] and fits a surface through the samples. It delegates to
// New; the sampling itself performs no interpolation logic.
// Returns core.ErrInvalidDomain when either count is below core.MinPoints or
// either range is empty. Complexity: O(nx·ny) plus nx·ny calls to f.
func NewFromFunc(f func(x, y float64) float64, x0, x1 float64, nx int, y0, y1 float64, ny int) (*Surface, error) {
	xs, err := core.Linspace(x0, x1, nx)
	if err != nil {
		return nil, fmt.Errorf("bicubic: NewFromFunc x-axis: %w", err)
	}
	ys, err := core.Linspace(y0, y1, ny)
	if err != nil {
		return nil, fmt.Errorf("bicubic: NewFromFunc y-axis: %w", err)
	}

	z := make([][]float64, nx)
	for i, x := range xs {
		z[i] = make([]float64, ny)
		for j, y := range ys {
			z[i][j] = f(x, y)
		}
	}

	return New(xs, ys, z)
}

// X returns the fitted x-axis. Complexity: O(1).
func (s *Surface) X() *core.Axis { return s.grid.X() }

// Y returns the fitted y-axis. Complexity: O(1).
func (s *Surface) Y() *core.Axis { return s.grid.Y() }

// Eval returns the surface value at (x, y) with bounds enforcement on both
// axes independently: a query outside either fitted range fails with
// core.ErrOutOfDomain and is never silently clamped. Use Extrapolate to opt
// out for a single call.
// Complexity: O(log nx + log ny) lookup + 16-term polynomial, zero allocation.
func (s *Surface) Eval(x, y float64) (float64, error) {
	if !s.grid.X().Contains(x) || !s.grid.Y().Contains(y) {
		return 0, fmt.Errorf("bicubic: Eval(%g, %g) outside fitted range [%g, %g]×[%g, %g]: %w",
			x, y, s.grid.X().Min(), s.grid.X().Max(), s.grid.Y().Min(), s.grid.Y().Max(),
			core.ErrOutOfDomain)
	}

	return s.at(x, y, 0, 0), nil
}

// Extrapolate returns the surface value at (x, y) without bounds enforcement:
// out-of-range queries continue the nearest boundary cell's polynomial. The
// result is always finite, but carries no approximation guarantee beyond the
// fitted ranges. Complexity: O(log nx + log ny), zero allocation.
func (s *Surface) Extrapolate(x, y float64) float64 {
	return s.at(x, y, 0, 0)
}

// Diff returns the mixed partial derivative ∂^(ox+oy) f / ∂x^ox ∂y^oy at
// (x, y); order 0 on both axes is the value itself and orders above 3 vanish.
// Bounds are enforced exactly as in Eval.
// Complexity: O(log nx + log ny), zero allocation.
func (s *Surface) Diff(x, y float64, ox, oy int) (float64, error) {
	if !s.grid.X().Contains(x) || !s.grid.Y().Contains(y) {
		return 0, fmt.Errorf("bicubic: Diff(%g, %g) outside fitted range [%g, %g]×[%g, %g]: %w",
			x, y, s.grid.X().Min(), s.grid.X().Max(), s.grid.Y().Min(), s.grid.Y().Max(),
			core.ErrOutOfDomain)
	}

	return s.at(x, y, ox, oy), nil
}

// at evaluates the local bivariate polynomial (or a mixed partial) of the
// enclosing cell in normalized offsets, then rescales index-space derivatives
// to coordinate space via the cell widths. Interval is clamped, so at is
// total.
func (s *Surface) at(x, y float64, ox, oy int) float64 {
	i := s.grid.X().Interval(x)
	j := s.grid.Y().Interval(y)
	tx := (x - s.grid.X().At(i)) / s.grid.X().Step(i)
	ty := (y - s.grid.Y().At(j)) / s.grid.Y().Step(j)

	// Collapse the y-direction first: rows[p] = Σ_q α[p][q]·ty^q (or its
	// oy-th derivative), then the x-direction the same way.
	al := &s.cells[i][j]
	var rows [4]float64
	for p := 0; p < 4; p++ {
		rows[p] = core.CubicDiff(al[p][0], al[p][1], al[p][2], al[p][3], ty, oy)
	}
	v := core.CubicDiff(rows[0], rows[1], rows[2], rows[3], tx, ox)

	// Chain rule: d/dx = (1/hx)·d/dΔx per derivative order.
	if ox > 0 {
		v /= math.Pow(s.grid.X().Step(i), float64(ox))
	}
	if oy > 0 {
		v /= math.Pow(s.grid.Y().Step(j), float64(oy))
	}

	return v
}
