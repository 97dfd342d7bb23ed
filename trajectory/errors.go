// SPDX-License-Identifier: MIT
// Package: trajectory
//
// errors.go - sentinel errors for the trajectory package.

package trajectory

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize indicates a knot count < 1 or a non-positive span.
	ErrBadSize = errors.New("trajectory: invalid knot count or span")

	// ErrUnphysical indicates a recipe whose eccentricity leaves [0, 1) or
	// whose frequency drops to zero or below within the span.
	ErrUnphysical = errors.New("trajectory: recipe leaves the physical range")
)

func trajErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
