// Package bicubic fits and evaluates piecewise-bicubic interpolating
// surfaces over uniformly spaced 2-D grids.
//
// 🚀 What is a bicubic spline?
//
//	A surface assembled from one bivariate cubic per grid cell, written in
//	normalized cell-local coordinates (Δx, Δy) ∈ [0,1]²:
//
//	  f(Δx, Δy) = Σₚ Σ_q α[p][q] · Δxᵖ · Δy^q   (p, q = 0..3)
//
//	The 16 coefficients per cell come from the four corner values and their
//	finite-difference derivative estimates, combined through the fixed 4×4
//	Hermite basis transform α = A·F·Aᵗ. The result interpolates every grid
//	node exactly and is C¹-continuous across shared cell edges. Typical uses:
//	  • Height-map and terrain resampling
//	  • Image-style value fields on regular lattices
//	  • Lookup-table smoothing for simulation inputs
//
// ✨ Key features:
//   - central differences at interior nodes, one-sided three-point estimates
//     on the boundary, and the same scheme reapplied for the mixed ∂²/∂x∂y term
//   - O(nx·ny) construction, O(log nx + log ny) evaluation, allocation-free
//     queries
//   - Eval enforces both axis ranges independently; Extrapolate continues the
//     nearest boundary cell's polynomial
//   - Diff returns mixed partial derivatives up to order 3 per axis
//   - affine input data (z = a + b·x + c·y) is reproduced to machine
//     precision, since its derivative estimates are exact
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlspline/bicubic"
//
//	sf, err := bicubic.New(xs, ys, z) // z[i][j] sampled at (xs[i], ys[j])
//	v, err := sf.Eval(2.5, 0.75)
//
// Both axes need at least core.MinPoints (3) coordinates and even spacing
// within core.UniformTol; violations fail construction with
// core.ErrInvalidDomain or core.ErrNonuniformGrid before any numeric work.
//
// Performance:
//
//   - Construction: O(nx·ny) time and memory
//   - Evaluation:   O(log nx + log ny) lookup + 16-term polynomial, zero allocation
package bicubic
