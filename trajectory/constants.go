// SPDX-License-Identifier: MIT
// Package: trajectory
//
// constants.go - recipe defaults.

package trajectory

import "math"

// Deterministic defaults (named, no magic numbers).
const (
	DefaultEccentricity  = 0.3  // e0
	DefaultEccRate       = 0.0  // ė, 1/s
	DefaultFrequency     = 2e-3 // ν0, Hz
	DefaultChirp         = 0.0  // ν̇, Hz/s
	DefaultPrecession    = 1e-5 // γ̇, rad/s
	DefaultLenseThirring = 1e-6 // α̇, rad/s
	DefaultInclination   = 0.5  // λ0, rad
)

const twoPi = 2 * math.Pi
