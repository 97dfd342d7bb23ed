// SPDX-License-Identifier: MIT
// Package: aak
//
// errors.go - sentinel errors for the aak package.
//
// Error policy:
//   - Callers branch with errors.Is; messages are context-wrapped with %w.
//   - Every error is returned before the output buffer is written.

package aak

import (
	"errors"
	"fmt"

	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

var (
	// ErrTooManySegments indicates a trajectory with more segments than the
	// staging capacity (spline.MaxSegments). It is the same sentinel as
	// spline.ErrTooManySegments.
	ErrTooManySegments = spline.ErrTooManySegments

	// ErrBadInput indicates a non-positive sample spacing or a negative
	// harmonic count.
	ErrBadInput = errors.New("aak: invalid synthesis parameters")

	// ErrBadLength indicates buffers whose lengths disagree (output vs
	// sample map, coefficients vs knots).
	ErrBadLength = errors.New("aak: buffer length mismatch")

	// ErrBadSegmentMap indicates a sample-to-segment entry outside
	// [0, segments).
	ErrBadSegmentMap = errors.New("aak: segment map entry out of range")
)

// aakErrorf prefixes err with the method and a formatted detail.
func aakErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
