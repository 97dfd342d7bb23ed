// SPDX-License-Identifier: MIT
// Package: spline
//
// errors.go - sentinel errors for the spline package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach context with splineErrorf (%w wrapping).

package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrNoKnots indicates an empty knot array.
	ErrNoKnots = errors.New("spline: knot array is empty")

	// ErrNotMonotone indicates knot times that are not strictly increasing.
	ErrNotMonotone = errors.New("spline: knot times must be strictly increasing")

	// ErrBadSpacing indicates a non-positive or non-finite sample spacing.
	ErrBadSpacing = errors.New("spline: sample spacing must be finite and > 0")

	// ErrBadLength indicates an output length < 1 or a buffer whose length
	// does not match the declared layout.
	ErrBadLength = errors.New("spline: invalid length")

	// ErrTooManySegments indicates a trajectory that does not fit the
	// fixed-capacity staging arena.
	ErrTooManySegments = errors.New("spline: segment count exceeds staging capacity")

	// ErrTooFewKnots indicates Fit was given fewer than two sample times.
	ErrTooFewKnots = errors.New("spline: at least two knots are required to fit")
)

// splineErrorf wraps err with the method name and a formatted detail.
func splineErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
