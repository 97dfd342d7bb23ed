// Package: spline
//
// validators.go - shared precondition checks. Each returns a wrapped
// sentinel so call sites stay branch-light.

package spline

import "math"

// validateKnots requires a non-empty, strictly increasing, finite knot array.
func validateKnots(method string, knots []float64) error {
	if len(knots) == 0 {
		return splineErrorf(method, ErrNoKnots, "len=0")
	}
	for i, k := range knots {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			return splineErrorf(method, ErrNotMonotone, "knot %d is %v", i, k)
		}
		if i > 0 && k <= knots[i-1] {
			return splineErrorf(method, ErrNotMonotone, "knot %d (%g) <= knot %d (%g)", i, k, i-1, knots[i-1])
		}
	}

	return nil
}

// validateSpacing requires a finite dt > 0.
func validateSpacing(method string, dt float64) error {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return splineErrorf(method, ErrBadSpacing, "dt=%v", dt)
	}

	return nil
}

// validateCapacity rejects trajectories larger than the staging arena.
func validateCapacity(method string, nseg int) error {
	if nseg > MaxSegments {
		return splineErrorf(method, ErrTooManySegments, "%d segments, capacity %d", nseg, MaxSegments)
	}

	return nil
}

// CheckCapacity reports ErrTooManySegments when nseg exceeds MaxSegments.
func CheckCapacity(nseg int) error {
	return validateCapacity("CheckCapacity", nseg)
}
