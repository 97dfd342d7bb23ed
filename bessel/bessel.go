// SPDX-License-Identifier: MIT
// Package: bessel
//
// bessel.go - capability interface and the Orders helper.
//
// Contract:
//   - Implementations are stateless values; safe for concurrent use.
//   - Jn accepts any integer order, negative orders follow
//     J_{-n}(x) = (-1)^n J_n(x).

package bessel

// J evaluates the integer-order Bessel function of the first kind.
type J interface {
	Jn(n int, x float64) float64
}

// Arrayer is implemented by evaluators that can produce a run of
// consecutive non-negative orders more cheaply than one call per order.
type Arrayer interface {
	// Array stores J_nmin(x) … J_nmax(x) into dst[0 : nmax-nmin+1].
	Array(nmin, nmax int, x float64, dst []float64)
}

// Width is the number of consecutive orders returned by Orders.
const Width = 5

// Orders returns J_{n-2}(x) … J_{n+2}(x) for harmonic index n ≥ 1.
// For n == 1 the order -1 term is taken as -J_1(x).
func Orders(j J, n int, x float64) [Width]float64 {
	var out [Width]float64
	if n == 1 {
		j0, j1 := j.Jn(0, x), j.Jn(1, x)
		out[0] = -j1
		out[1] = j0
		out[2] = j1
		out[3] = j.Jn(2, x)
		out[4] = j.Jn(3, x)

		return out
	}
	if a, ok := j.(Arrayer); ok && n >= 2 {
		a.Array(n-2, n+2, x, out[:])

		return out
	}
	for k := 0; k < Width; k++ {
		out[k] = j.Jn(n-2+k, x)
	}

	return out
}
