package bessel

import "math"

// Std evaluates J_n through the standard library.
type Std struct{}

// Jn returns J_n(x).
func (Std) Jn(n int, x float64) float64 {
	switch n {
	case 0:
		return math.J0(x)
	case 1:
		return math.J1(x)
	default:
		return math.Jn(n, x)
	}
}
