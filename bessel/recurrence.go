// SPDX-License-Identifier: MIT
// Package: bessel
//
// recurrence.go - Miller's downward recurrence for runs of J_n.
//
// Algorithm:
//  1. Start at an even order m well above max(nmax, |x|) with
//     J_{m+1} = 0, J_m = 1 (arbitrary scale).
//  2. Recur downward: J_{k-1} = (2k/x)·J_k − J_{k+1}.
//  3. Accumulate the normalisation sum J_0 + 2·(J_2 + J_4 + …).
//  4. Rescale on the fly when values approach overflow.
//  5. Divide the captured orders by the sum.
//
// Below |x| = 1e-5 the step factor 2k/|x| can reach Inf in one multiply,
// so the two leading power-series terms are used instead.
//
// Complexity: O(m) per call, m ≈ top + √(160·top) + 16, top = max(nmax, |x|).

package bessel

import "math"

const (
	startAcc    = 160.0  // controls how far above top the recurrence starts
	startPad    = 16     // extra orders above the accuracy estimate
	rescaleAt   = 1e100  // magnitude that triggers rescaling
	rescaleBy   = 1e-100 // rescale factor
	seriesBelow = 1e-5   // |x| below which the two-term power series is used
)

// Recurrence evaluates J_n with Miller's downward recurrence.
type Recurrence struct{}

// Jn returns J_n(x) for any integer n.
func (r Recurrence) Jn(n int, x float64) float64 {
	sign := 1.0
	if n < 0 {
		n = -n
		if n&1 == 1 {
			sign = -sign
		}
	}
	var v [1]float64
	r.Array(n, n, x, v[:])

	return sign * v[0]
}

// Array stores J_nmin(x) … J_nmax(x) into dst. Orders must satisfy
// 0 ≤ nmin ≤ nmax and len(dst) ≥ nmax-nmin+1.
func (Recurrence) Array(nmin, nmax int, x float64, dst []float64) {
	width := nmax - nmin + 1
	dst = dst[:width]

	ax := math.Abs(x)
	if ax < seriesBelow {
		// J_k(x) = (x/2)^k/k! · (1 − (x/2)²/(k+1) + …); the recurrence
		// step 2k/|x| would overflow before any rescale here.
		half := ax / 2
		q := half * half
		lead := 1.0
		for k := 0; k <= nmax; k++ {
			if k > 0 {
				lead *= half / float64(k)
			}
			if k >= nmin {
				dst[k-nmin] = lead * (1 - q/float64(k+1))
			}
		}
		applyParity(nmin, x, dst)

		return
	}

	top := nmax
	if t := int(ax) + 1; t > top {
		top = t
	}
	m := 2 * ((top + int(math.Sqrt(startAcc*float64(top))) + startPad) / 2)

	for k := range dst {
		dst[k] = 0
	}

	bjp, bj := 0.0, 1.0 // J_{k+1}, J_k at k = m
	sum := 2 * bj       // m is even and positive
	for k := m; k > 0; k-- {
		bjm := 2*float64(k)/ax*bj - bjp
		bjp, bj = bj, bjm
		o := k - 1
		if o >= nmin && o <= nmax {
			dst[o-nmin] = bj
		}
		switch {
		case o == 0:
			sum += bj
		case o&1 == 0:
			sum += 2 * bj
		}
		if math.Abs(bj) > rescaleAt {
			bj *= rescaleBy
			bjp *= rescaleBy
			sum *= rescaleBy
			for i := range dst {
				dst[i] *= rescaleBy
			}
		}
	}

	inv := 1 / sum
	for k := range dst {
		dst[k] *= inv
	}
	applyParity(nmin, x, dst)
}

// applyParity uses J_n(-x) = (-1)^n J_n(x) for negative arguments.
func applyParity(nmin int, x float64, dst []float64) {
	if x >= 0 {
		return
	}
	for k := range dst {
		if (nmin+k)&1 == 1 {
			dst[k] = -dst[k]
		}
	}
}
