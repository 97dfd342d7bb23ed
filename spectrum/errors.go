// SPDX-License-Identifier: MIT
// Package: spectrum
//
// errors.go - sentinel errors for the spectrum package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach context with spectrumErrorf (%w wrapping).

package spectrum

import (
	"errors"
	"fmt"
)

var (
	// ErrTooShort indicates fewer than two samples.
	ErrTooShort = errors.New("spectrum: need at least two samples")

	// ErrBadSpacing indicates a non-positive or non-finite sample spacing.
	ErrBadSpacing = errors.New("spectrum: sample spacing must be finite and > 0")
)

// Method names used as error prefixes.
const (
	MethodPower             = "Power"
	MethodDominantFrequency = "DominantFrequency"
)

// spectrumErrorf wraps err with the method name and a formatted detail.
func spectrumErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
