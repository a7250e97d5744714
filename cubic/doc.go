// Package cubic fits and evaluates 1-D piecewise-cubic interpolating splines
// over strictly increasing sample points, with natural or clamped boundary
// conditions.
//
// 🚀 What is a cubic spline?
//
//	A piecewise polynomial f(x) = aᵢ + bᵢ·ξ + cᵢ·ξ² + dᵢ·ξ³ (ξ = x − xᵢ) on
//	each sub-interval, chosen so the curve passes exactly through every knot
//	and keeps continuous first and second derivatives across interior knots.
//	It is the standard tool for smooth curve reconstruction in:
//	  • Signal resampling & audio pitch curves
//	  • Scientific data tables (fit once, query repeatedly)
//	  • Animation easing & camera paths
//
// ✨ Key features:
//   - natural boundary: zero second derivative at both endpoints (default)
//   - clamped boundary: caller-supplied endpoint slopes (Options.LeftSlope,
//     Options.RightSlope)
//   - O(n) construction via a specialized tridiagonal solve
//   - O(log n) evaluation: shared interval locator + Horner polynomial
//   - Eval enforces the fitted range; Extrapolate continues the boundary
//     polynomial past it
//   - Diff returns closed-form derivatives up to order 3
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlspline/cubic"
//
//	opts := cubic.DefaultOptions()       // natural boundary
//	sp, err := cubic.New(xs, ys, &opts)
//	v, err := sp.Eval(2.5)
//
// Construction requires at least core.MinPoints (3) knots for both variants.
// Clamped splines are mathematically well-posed for two points already; the
// uniform minimum is a deliberate simplification keeping one contract across
// boundary modes.
//
// Performance:
//
//   - Construction: O(n) time, O(n) memory
//   - Evaluation:   O(log n) time (O(1) on evenly spaced knots), zero allocation
package cubic
