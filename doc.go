// Package lvlspline is your in-memory toolkit for smooth curve and surface
// reconstruction from sampled data — fit once, evaluate anywhere, cheaply.
//
// 🚀 What is lvlspline?
//
//	A small, deterministic interpolation library that brings together:
//		• Cubic splines: natural & clamped boundary conditions over ordered 1-D points
//		• Bicubic splines: C¹ surfaces over uniformly spaced 2-D grids
//		• Validated domains: strictly increasing axes, cached bounds, uniformity checks
//		• A shared cell locator: O(log n) interval search with a uniform-spacing fast path
//		• Sampled-function factories: fit directly from f(x) or f(x,y)
//
// ✨ Why choose lvlspline?
//
//   - Fit once, query forever – models are immutable after construction,
//     so concurrent evaluation needs no locks
//   - Fail-fast contracts – every invalid input is rejected by a sentinel
//     error before any numeric work starts
//   - Allocation-free evaluation – O(log n) lookup + O(1) local polynomial
//   - Pure computation – no cgo, no goroutines, no hidden state
//
// Everything is organized under three subpackages:
//
//	core/    — Axis & Grid domains, the interval locator, shared cubic helpers
//	cubic/   — 1-D piecewise-cubic splines (natural / clamped)
//	bicubic/ — 2-D piecewise-bicubic splines on uniform grids
//
// Quick sketch:
//
//	    y ┤      ∙──∙
//	      │    ╱      ╲        fitted spline passes exactly
//	      │  ∙╱        ╲∙      through every knot ∙
//	      └─────────────────── x
//
// Dive into the examples/ directory for runnable curve- and
// surface-reconstruction demos.
//
//	go get github.com/katalvlaran/lvlspline
package lvlspline
