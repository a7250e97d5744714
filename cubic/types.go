// Package cubic defines options and boundary modes for 1-D spline fitting.
package cubic

// BoundaryMode selects the spline's endpoint condition.
//
//   - Natural — second derivative fixed to zero at both endpoints.
//     The curve relaxes to a straight line beyond the data trend.
//
//   - Clamped — first derivative fixed to caller-supplied slopes at the
//     endpoints (Options.LeftSlope, Options.RightSlope). Use when the true
//     endpoint slopes are known, e.g. periodic joins or physical boundary
//     conditions.
type BoundaryMode int

const (
	// Natural boundary: f''(x₀) = f''(xₙ) = 0.
	Natural BoundaryMode = iota

	// Clamped boundary: f'(x₀) = LeftSlope, f'(xₙ) = RightSlope.
	Clamped
)

// Options configures spline construction.
//
// Fields:
//   - Boundary   — Natural (default) or Clamped endpoint condition.
//   - LeftSlope  — f' at the first knot; read only when Boundary == Clamped.
//   - RightSlope — f' at the last knot; read only when Boundary == Clamped.
//
// Example:
//
//	opts := cubic.DefaultOptions()
//	opts.Boundary = cubic.Clamped
//	opts.LeftSlope, opts.RightSlope = 0, 0 // flat tangents at both ends
//	sp, err := cubic.New(xs, ys, &opts)
type Options struct {
	Boundary   BoundaryMode
	LeftSlope  float64
	RightSlope float64
}

// DefaultOptions returns the documented defaults: Natural boundary,
// zero (unused) endpoint slopes.
func DefaultOptions() Options {
	return Options{Boundary: Natural}
}
