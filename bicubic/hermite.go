package bicubic

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlspline/core"
)

// hermiteBasis is the fixed basis-change matrix A mapping Hermite corner data
// (values, tangents, mixed term) to polynomial coefficients: α = A·F·Aᵗ.
var hermiteBasis = mat.NewDense(4, 4, []float64{
	1, 0, 0, 0,
	0, 0, 1, 0,
	-3, 3, -2, -1,
	2, -2, 1, 1,
})

// nodeDerivatives estimates ∂z/∂x, ∂z/∂y and ∂²z/∂x∂y at every grid node, in
// index-normalized units (per grid step, matching the normalized cell
// coordinates used at evaluation time).
//
// Interior nodes use central differences (z[i+1]-z[i-1])/2; boundary nodes
// use the one-sided three-point estimates −3z₀/2 + 2z₁ − z₂/2 (first node)
// and z_{n-3}/2 − 2z_{n-2} + 3z_{n-1}/2 (last node). The mixed term applies
// the same y-scheme to the dx field. Complexity: O(nx·ny).
func nodeDerivatives(g *core.Grid) (dx, dy, dxy [][]float64) {
	nx, ny := g.X().Len(), g.Y().Len()
	dx = alloc(nx, ny)
	dy = alloc(nx, ny)
	dxy = alloc(nx, ny)

	for j := 0; j < ny; j++ {
		dx[0][j] = -1.5*g.At(0, j) + 2*g.At(1, j) - 0.5*g.At(2, j)
		for i := 1; i < nx-1; i++ {
			dx[i][j] = (g.At(i+1, j) - g.At(i-1, j)) / 2
		}
		dx[nx-1][j] = 0.5*g.At(nx-3, j) - 2*g.At(nx-2, j) + 1.5*g.At(nx-1, j)
	}

	for i := 0; i < nx; i++ {
		dy[i][0] = -1.5*g.At(i, 0) + 2*g.At(i, 1) - 0.5*g.At(i, 2)
		for j := 1; j < ny-1; j++ {
			dy[i][j] = (g.At(i, j+1) - g.At(i, j-1)) / 2
		}
		dy[i][ny-1] = 0.5*g.At(i, ny-3) - 2*g.At(i, ny-2) + 1.5*g.At(i, ny-1)

		// Mixed term: the same one-sided/central scheme, applied to dx along y.
		dxy[i][0] = -1.5*dx[i][0] + 2*dx[i][1] - 0.5*dx[i][2]
		for j := 1; j < ny-1; j++ {
			dxy[i][j] = (dx[i][j+1] - dx[i][j-1]) / 2
		}
		dxy[i][ny-1] = 0.5*dx[i][ny-3] - 2*dx[i][ny-2] + 1.5*dx[i][ny-1]
	}

	return dx, dy, dxy
}

// cellCoefficients assembles the Hermite corner matrix F for cell (i, j) and
// returns α = A·F·Aᵗ as a flat 4×4 coefficient array (row p, column q weight
// of Δxᵖ·Δy^q). Complexity: O(1) per cell (two fixed 4×4 multiplies).
func cellCoefficients(g *core.Grid, dx, dy, dxy [][]float64, i, j int) [4][4]float64 {
	f := mat.NewDense(4, 4, []float64{
		g.At(i, j), g.At(i, j+1), dy[i][j], dy[i][j+1],
		g.At(i+1, j), g.At(i+1, j+1), dy[i+1][j], dy[i+1][j+1],
		dx[i][j], dx[i][j+1], dxy[i][j], dxy[i][j+1],
		dx[i+1][j], dx[i+1][j+1], dxy[i+1][j], dxy[i+1][j+1],
	})

	var tmp, prod mat.Dense
	tmp.Mul(hermiteBasis, f)
	prod.Mul(&tmp, hermiteBasis.T())

	var out [4][4]float64
	for p := 0; p < 4; p++ {
		for q := 0; q < 4; q++ {
			out[p][q] = prod.At(p, q)
		}
	}

	return out
}

// alloc returns a zeroed nx×ny working matrix.
func alloc(nx, ny int) [][]float64 {
	m := make([][]float64, nx)
	for i := range m {
		m[i] = make([]float64, ny)
	}

	return m
}
