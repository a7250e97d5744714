package core

import "fmt"

// Grid is an immutable 2-D interpolation domain: two uniformly spaced axes
// and a dense value matrix z[i][j] holding the sample at (x[i], y[j]).
// The input matrix is deep-copied so later caller mutations cannot leak in.
type Grid struct {
	x, y *Axis
	z    [][]float64
}

// NewGrid validates axes and matrix shape and builds an immutable Grid.
// Returns ErrInvalidDomain when either coordinate slice is too short or not
// strictly increasing, or when z is not an len(xs)×len(ys) matrix, and
// ErrNonuniformGrid when either axis fails the UniformTol spacing check.
// All checks run before any copy; no partial Grid ever escapes.
// Complexity: O(nx×ny) time and memory.
func NewGrid(xs, ys []float64, z [][]float64) (*Grid, error) {
	ax, err := NewAxis(xs)
	if err != nil {
		return nil, fmt.Errorf("core: NewGrid x-axis: %w", err)
	}
	ay, err := NewAxis(ys)
	if err != nil {
		return nil, fmt.Errorf("core: NewGrid y-axis: %w", err)
	}
	if err = ax.Uniform(UniformTol); err != nil {
		return nil, fmt.Errorf("core: NewGrid x-axis: %w", err)
	}
	if err = ay.Uniform(UniformTol); err != nil {
		return nil, fmt.Errorf("core: NewGrid y-axis: %w", err)
	}
	if len(z) != ax.Len() {
		return nil, fmt.Errorf("core: NewGrid has %d value rows for %d x-coordinates: %w",
			len(z), ax.Len(), ErrInvalidDomain)
	}
	for i, row := range z {
		if len(row) != ay.Len() {
			return nil, fmt.Errorf("core: NewGrid row %d has %d values for %d y-coordinates: %w",
				i, len(row), ay.Len(), ErrInvalidDomain)
		}
	}

	cp := make([][]float64, len(z))
	for i := range z {
		cp[i] = make([]float64, len(z[i]))
		copy(cp[i], z[i])
	}

	return &Grid{x: ax, y: ay, z: cp}, nil
}

// X returns the x-axis. Complexity: O(1).
func (g *Grid) X() *Axis { return g.x }

// Y returns the y-axis. Complexity: O(1).
func (g *Grid) Y() *Axis { return g.y }

// At returns the sample value at node (i, j). Complexity: O(1).
func (g *Grid) At(i, j int) float64 { return g.z[i][j] }
