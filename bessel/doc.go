// Package bessel evaluates integer-order Bessel functions of the first
// kind, J_n(x), behind one small capability interface.
//
// Two interchangeable implementations are provided:
//
//	Std           delegates to the standard library (math.J0, math.J1, math.Jn).
//	Recurrence    Miller's downward recurrence, normalised with
//	              J_0 + 2·Σ J_2k = 1; evaluates a whole run of consecutive
//	              orders in one pass (see Recurrence.Array).
//
// The AAK harmonic sum needs the five orders n-2 … n+2 at x = n·e for every
// harmonic n. Orders returns exactly that block and folds the n = 1 case,
// where order -1 appears, into the identity J_{-1}(x) = -J_1(x), so callers
// never special-case it.
//
// Usage:
//
//	j := bessel.Orders(bessel.Recurrence{}, n, float64(n)*e)
//	// j[0]=J_{n-2}, j[1]=J_{n-1}, j[2]=J_n, j[3]=J_{n+1}, j[4]=J_{n+2}
package bessel
