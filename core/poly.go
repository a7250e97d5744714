package core

// Cubic evaluates the local polynomial a + b·t + c·t² + d·t³ in Horner form.
// Both engines express every piece in this shape, with t the offset from the
// interval origin. Complexity: O(1), no allocation.
func Cubic(a, b, c, d, t float64) float64 {
	return a + t*(b+t*(c+t*d))
}

// CubicDiff evaluates the order-th derivative of a + b·t + c·t² + d·t³ at t.
// Order 0 is the value itself; orders above 3 (and negative orders) are
// identically zero for a cubic. Complexity: O(1), no allocation.
func CubicDiff(a, b, c, d, t float64, order int) float64 {
	switch order {
	case 0:
		return Cubic(a, b, c, d, t)
	case 1:
		return b + t*(2*c+t*3*d)
	case 2:
		return 2*c + t*6*d
	case 3:
		return 6 * d
	default:
		return 0
	}
}
