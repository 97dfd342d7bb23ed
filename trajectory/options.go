// SPDX-License-Identifier: MIT
// Package: trajectory
//
// options.go - functional options for Build and BuildFitted.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Options apply in order; last wins.

package trajectory

import (
	"math"

	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

// Option customises a recipe.
type Option func(*config)

// config is the resolved recipe. Passed by value.
type config struct {
	e0, eDot       float64
	nu0, nuDot     float64
	gimDot, alpDot float64
	lam            float64
	phi0, gim0     float64
	alp0           float64

	interp func() spline.Interpolant
}

func newConfig(opts ...Option) config {
	cfg := config{
		e0:     DefaultEccentricity,
		eDot:   DefaultEccRate,
		nu0:    DefaultFrequency,
		nuDot:  DefaultChirp,
		gimDot: DefaultPrecession,
		alpDot: DefaultLenseThirring,
		lam:    DefaultInclination,
		interp: spline.NaturalCubic,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEccentricity sets e0 and its linear drift ė. Panics unless 0 ≤ e0 < 1.
func WithEccentricity(e0, eDot float64) Option {
	if !(e0 >= 0 && e0 < 1) || math.IsNaN(eDot) {
		panic("trajectory: WithEccentricity(e0 outside [0,1))")
	}
	return func(c *config) {
		c.e0, c.eDot = e0, eDot
	}
}

// WithFrequency sets ν0 (Hz) and its linear drift ν̇ (Hz/s). Panics unless
// ν0 > 0 and finite.
func WithFrequency(nu0, nuDot float64) Option {
	if !(nu0 > 0) || math.IsInf(nu0, 0) || math.IsNaN(nuDot) {
		panic("trajectory: WithFrequency(nu0<=0)")
	}
	return func(c *config) {
		c.nu0, c.nuDot = nu0, nuDot
	}
}

// WithPrecession sets the pericentre precession rate γ̇ (rad/s).
func WithPrecession(gimDot float64) Option {
	if math.IsNaN(gimDot) || math.IsInf(gimDot, 0) {
		panic("trajectory: WithPrecession(non-finite)")
	}
	return func(c *config) {
		c.gimDot = gimDot
	}
}

// WithLenseThirring sets the precession rate α̇ (rad/s) of L about the spin.
func WithLenseThirring(alpDot float64) Option {
	if math.IsNaN(alpDot) || math.IsInf(alpDot, 0) {
		panic("trajectory: WithLenseThirring(non-finite)")
	}
	return func(c *config) {
		c.alpDot = alpDot
	}
}

// WithInclination sets λ0 (rad). Panics outside [0, π].
func WithInclination(lam float64) Option {
	if !(lam >= 0 && lam <= math.Pi) {
		panic("trajectory: WithInclination(lam outside [0,pi])")
	}
	return func(c *config) {
		c.lam = lam
	}
}

// WithPhases sets the initial orbital, pericentre and Lense-Thirring phases.
func WithPhases(phi0, gim0, alp0 float64) Option {
	return func(c *config) {
		c.phi0, c.gim0, c.alp0 = phi0, gim0, alp0
	}
}

// WithInterpolant selects the spline.Fit interpolator used by BuildFitted.
// Panics on nil.
func WithInterpolant(fn func() spline.Interpolant) Option {
	if fn == nil {
		panic("trajectory: WithInterpolant(nil)")
	}
	return func(c *config) {
		c.interp = fn
	}
}
