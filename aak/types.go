// SPDX-License-Identifier: MIT
// Package: aak
//
// types.go - per-call inputs.

package aak

// Geometry is the immutable per-call source description.
//
// Fields:
//   - M: total (redshifted) mass of the central body, solar masses.
//   - S: spin magnitude; S == 0 disables the polarisation offset beta.
//   - Mu: mass of the compact object, solar masses.
//   - QS, PhiS: sky colatitude / azimuth of the source (rad).
//   - QK, PhiK: colatitude / azimuth of the spin axis (rad).
//   - Dist: luminosity distance, Gpc.
type Geometry struct {
	M    float64
	S    float64
	Mu   float64
	QS   float64
	PhiS float64
	QK   float64
	PhiK float64
	Dist float64
}

// Params controls sampling and response.
//
// Fields:
//   - NModes: number of orbital harmonics n = 1..NModes (0 ⇒ silent output).
//   - Doppler: true: heliocentric two-channel response with Doppler phase;
//     false: fixed antenna, hI = h+, hII = h× (identity projection).
//   - Dt: dense sample spacing, seconds (> 0).
type Params struct {
	NModes  int
	Doppler bool
	Dt      float64
}

// Strategy selects how samples are scheduled.
type Strategy int

const (
	// Grid runs blocks × threads goroutines with per-block staged arenas.
	Grid Strategy = iota

	// Host runs a bounded worker pool over contiguous chunks.
	Host
)

// String names the strategy.
func (s Strategy) String() string {
	switch s {
	case Grid:
		return "grid"
	case Host:
		return "host"
	default:
		return "Strategy(?)"
	}
}

// Rot is the flattened 2×2 polarisation rotation
// [cos2θ, −sin2θ; sin2θ, cos2θ] as produced by RotCoeff.
type Rot [4]float64

// Antenna is a pair of (F+, F×) responses, one per output channel.
type Antenna struct {
	PlusI, CrossI   float64
	PlusII, CrossII float64
}

// FixedAntenna is the identity projection used when Doppler is false.
var FixedAntenna = Antenna{PlusI: 1, CrossI: 0, PlusII: 0, CrossII: 1}
