// Package core provides the validated domains and shared primitives that the
// spline engines are built on:
//
//   - Axis — an immutable, strictly increasing 1-D coordinate sequence with
//     cached bounds, a uniform-spacing estimate, and an O(log n) interval
//     locator with an O(1) fast path for evenly spaced data
//   - Grid — an immutable 2-D domain: two uniformly spaced Axes plus a dense,
//     deep-copied value matrix
//   - Linspace — evenly spaced sample coordinates with exact endpoints, the
//     building block for the fit-from-function factories
//   - Cubic / CubicDiff — shared local-polynomial evaluation helpers
//
// All validation is fail-fast: constructors reject bad input with a sentinel
// error (ErrInvalidDomain, ErrNonuniformGrid) before any numeric work, and
// never expose a partially built value. Evaluation-time range violations are
// reported by the engines as ErrOutOfDomain.
//
// Every type in this package is read-only after construction, so concurrent
// use from multiple goroutines needs no locking.
package core
