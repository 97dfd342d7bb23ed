// SPDX-License-Identifier: MIT
// Package: spline
//
// arena.go - fixed-capacity staging buffer.
//
// An Arena holds one trajectory's knots and coefficients in arrays sized
// for MaxSegments, packed with the same layout as Trajectory.Coeffs so that
// EvalFlat works on either. Stage copies a strided share of the data; the
// parallel driver lets every thread of a block stage its own share (disjoint
// writes) and then waits on a barrier before reading.

package spline

const (
	arenaCoeffs = NumOrders * MaxSegments * NumParams
)

// Arena is a bounded staging area for one trajectory.
type Arena struct {
	knots  [MaxSegments]float64
	coeffs [arenaCoeffs]float64
	nseg   int
}

// Reset prepares the arena for a trajectory with nseg segments.
func (a *Arena) Reset(nseg int) error {
	if err := validateCapacity("Arena.Reset", nseg); err != nil {
		return err
	}
	a.nseg = nseg

	return nil
}

// Stage copies the entries of traj whose flat index ≡ lane (mod lanes).
// Calls with distinct lanes touch disjoint memory.
func (a *Arena) Stage(traj Trajectory, lane, lanes int) {
	for i := lane; i < len(traj.Knots); i += lanes {
		a.knots[i] = traj.Knots[i]
	}
	for i := lane; i < len(traj.Coeffs); i += lanes {
		a.coeffs[i] = traj.Coeffs[i]
	}
}

// Knots returns the staged knot times.
func (a *Arena) Knots() []float64 {
	return a.knots[:a.nseg]
}

// Coeffs returns the staged coefficients in Trajectory layout.
func (a *Arena) Coeffs() []float64 {
	return a.coeffs[:NumOrders*a.nseg*NumParams]
}

// Segments returns the staged segment count.
func (a *Arena) Segments() int {
	return a.nseg
}
