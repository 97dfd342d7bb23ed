// SPDX-License-Identifier: MIT
// Package: spline
//
// locate.go - spline-segment locator.
//
// Algorithm Outline:
//  1. starts[0] = 0.
//  2. For knot i = 1.. while Knots[i] ≤ (n−1)·dt:
//     starts[i]    = ⌈Knots[i]/dt⌉  (first dense sample of segment i)
//     lengths[i−1] = starts[i] − starts[i−1]
//  3. On exit (all knots used, or first knot past the window):
//     starts[i] = n, lengths[i−1] = n − starts[i−1], Count = i.
//
// The lengths therefore always telescope to n; Count drops below the knot
// count when the trajectory extends past the output window.
//
// Complexity: O(K) for K knots; SampleMap is O(n).

package spline

import "math"

// Segmentation is the locator output.
//
// Fields:
//   - Starts: Count+1 entries; segment s owns samples [Starts[s], Starts[s+1]).
//   - Lengths: Count entries; Lengths[s] = Starts[s+1] − Starts[s].
//   - Count: effective number of usable segments.
type Segmentation struct {
	Starts  []int
	Lengths []int
	Count   int
}

// Locate computes the dense-sample range of every sparse segment for an
// output of n samples spaced dt apart.
func Locate(knots []float64, dt float64, n int) (Segmentation, error) {
	const method = "Locate"
	if err := validateKnots(method, knots); err != nil {
		return Segmentation{}, err
	}
	if err := validateSpacing(method, dt); err != nil {
		return Segmentation{}, err
	}
	if n < 1 {
		return Segmentation{}, splineErrorf(method, ErrBadLength, "n=%d", n)
	}

	window := float64(n-1) * dt
	starts := make([]int, len(knots)+1)
	lengths := make([]int, len(knots))

	i := 1
	for ; i < len(knots); i++ {
		t := knots[i]
		if t > window {
			break
		}
		starts[i] = int(math.Ceil(t / dt))
		if starts[i] < starts[i-1] {
			// knots before t = 0 own no samples
			starts[i] = starts[i-1]
		}
		lengths[i-1] = starts[i] - starts[i-1]
	}
	starts[i] = n
	lengths[i-1] = n - starts[i-1]

	return Segmentation{Starts: starts[:i+1], Lengths: lengths[:i], Count: i}, nil
}

// N returns the number of dense samples covered.
func (s Segmentation) N() int {
	if len(s.Starts) == 0 {
		return 0
	}

	return s.Starts[len(s.Starts)-1]
}

// SampleMap returns, for every dense sample, the index of its segment.
func (s Segmentation) SampleMap() []int {
	out := make([]int, s.N())
	s.FillSampleMap(out)

	return out
}

// FillSampleMap writes the per-sample segment indices into dst, which must
// hold at least N() entries.
func (s Segmentation) FillSampleMap(dst []int) {
	for seg := 0; seg < s.Count; seg++ {
		for j := s.Starts[seg]; j < s.Starts[seg+1]; j++ {
			dst[j] = seg
		}
	}
}
