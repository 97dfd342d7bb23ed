// SPDX-License-Identifier: MIT
// Package: aak
//
// constants.go - physical constants (SI) and numeric floors.

package aak

import "math"

const (
	// MTSunSI is G·M_sun/c³ in seconds.
	MTSunSI = 4.925491025543576e-06

	// YearSiderealSI is one sidereal year in seconds.
	YearSiderealSI = 31558149.763545603

	// CSI is the speed of light in m/s.
	CSI = 299792458.0

	// AUSI is the astronomical unit in metres.
	AUSI = 149597870700.0

	// GpcSI is one gigaparsec in metres.
	GpcSI = 3.0856775814913673e25

	// AUSec is the light travel time across one AU, in seconds.
	AUSec = AUSI / CSI

	// GpcSec is the light travel time across one Gpc, in seconds.
	GpcSec = GpcSI / CSI
)

const (
	// PoleEpsilon keeps colatitudes and the inclination inside (ε, π−ε).
	PoleEpsilon = 1e-6

	// NormFloor is the lower bound applied to |n×L|·|n×S| in RotCoeff.
	NormFloor = 1e-6
)

const (
	halfSqrt3 = 0.8660254037844386 // √3/2, LISA arm-projection factor
	twoThirds = 2.0 / 3.0
	twoPi     = 2 * math.Pi
)

// Method names used as error prefixes.
const (
	MethodGenerate = "Generate"
	MethodWaveform = "Waveform"
)
