// SPDX-License-Identifier: MIT
// Package: trajectory
//
// build.go - knot placement, exact coefficients and fitted coefficients.
//
// Contract:
//   - Knots are K evenly spaced times on [0, span): t_k = k·span/K.
//   - Build writes the exact Taylor expansion of every element about t_k;
//     all recipe elements are at most quadratic, so order 3 is zero.
//   - BuildFitted samples the recipe at the knots and at span, then fits.
//   - Both return ErrUnphysical before allocating if e(t) ∉ [0,1) or
//     ν(t) ≤ 0 anywhere on [0, span].

package trajectory

import (
	"gonum.org/v1/gonum/floats"

	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

const (
	methodBuild       = "Build"
	methodBuildFitted = "BuildFitted"
)

// Knots returns k evenly spaced knot times on [0, span), or nil for k < 1.
func Knots(k int, span float64) []float64 {
	if k < 1 {
		return nil
	}
	grid := floats.Span(make([]float64, k+1), 0, span)

	return grid[:k]
}

// Build returns a k-knot trajectory covering [0, span) whose spline
// evaluation reproduces the recipe exactly.
func Build(k int, span float64, opts ...Option) (spline.Trajectory, error) {
	cfg := newConfig(opts...)
	if err := validate(methodBuild, cfg, k, span); err != nil {
		return spline.Trajectory{}, err
	}

	knots := Knots(k, span)
	traj := spline.NewTrajectory(knots)
	for s, tk := range knots {
		nu := cfg.nu0 + cfg.nuDot*tk
		set := func(p spline.Param, c0, c1, c2 float64) {
			traj.SetSegment(s, p, [spline.NumOrders]float64{c0, c1, c2, 0})
		}
		set(spline.E, cfg.e0+cfg.eDot*tk, cfg.eDot, 0)
		set(spline.Phi, cfg.phase(tk), twoPi*nu, 0.5*twoPi*cfg.nuDot)
		set(spline.Gim, cfg.gim0+cfg.gimDot*tk, cfg.gimDot, 0)
		set(spline.Alp, cfg.alp0+cfg.alpDot*tk, cfg.alpDot, 0)
		set(spline.Nu, nu, cfg.nuDot, 0)
		set(spline.Gimdot, cfg.gimDot, 0, 0)
		set(spline.OmegaPhi, twoPi*nu+cfg.gimDot, twoPi*cfg.nuDot, 0)
		set(spline.Lam, cfg.lam, 0, 0)
	}

	return traj, nil
}

// Samples evaluates the recipe at times ts, one row per spline.Param.
func Samples(ts []float64, opts ...Option) [spline.NumParams][]float64 {
	return newConfig(opts...).samples(ts)
}

// BuildFitted is Build's interpolating counterpart: the recipe is sampled at
// the knots plus the end of the span and passed through spline.Fit with the
// configured interpolant (natural cubic by default).
func BuildFitted(k int, span float64, opts ...Option) (spline.Trajectory, error) {
	cfg := newConfig(opts...)
	if err := validate(methodBuildFitted, cfg, k, span); err != nil {
		return spline.Trajectory{}, err
	}

	// Fit needs the closing sample to shape the final interval; the extra
	// trailing segment it produces is dropped so the knot count stays k.
	ts := floats.Span(make([]float64, k+1), 0, span)
	fitted, err := spline.Fit(ts, cfg.samples(ts), spline.WithInterpolant(cfg.interp))
	if err != nil {
		return spline.Trajectory{}, trajErrorf(methodBuildFitted, err, "k=%d", k)
	}

	traj := spline.NewTrajectory(ts[:k])
	for s := 0; s < k; s++ {
		for p := spline.Param(0); p < spline.NumParams; p++ {
			var c [spline.NumOrders]float64
			for o := range c {
				c[o] = fitted.Coeff(o, s, p)
			}
			traj.SetSegment(s, p, c)
		}
	}

	return traj, nil
}

// phase is Φ(t).
func (c config) phase(t float64) float64 {
	return c.phi0 + twoPi*(c.nu0*t+0.5*c.nuDot*t*t)
}

func (c config) samples(ts []float64) [spline.NumParams][]float64 {
	var out [spline.NumParams][]float64
	for p := range out {
		out[p] = make([]float64, len(ts))
	}
	for i, t := range ts {
		nu := c.nu0 + c.nuDot*t
		out[spline.E][i] = c.e0 + c.eDot*t
		out[spline.Phi][i] = c.phase(t)
		out[spline.Gim][i] = c.gim0 + c.gimDot*t
		out[spline.Alp][i] = c.alp0 + c.alpDot*t
		out[spline.Nu][i] = nu
		out[spline.Gimdot][i] = c.gimDot
		out[spline.OmegaPhi][i] = twoPi*nu + c.gimDot
		out[spline.Lam][i] = c.lam
	}

	return out
}

// validate checks sizes and that the linear e(t) and ν(t) stay physical at
// both ends of the span.
func validate(method string, c config, k int, span float64) error {
	if k < 1 || !(span > 0) {
		return trajErrorf(method, ErrBadSize, "k=%d span=%v", k, span)
	}
	for _, t := range [2]float64{0, span} {
		if e := c.e0 + c.eDot*t; !(e >= 0 && e < 1) {
			return trajErrorf(method, ErrUnphysical, "e(%g)=%g", t, e)
		}
		if nu := c.nu0 + c.nuDot*t; !(nu > 0) {
			return trajErrorf(method, ErrUnphysical, "nu(%g)=%g", t, nu)
		}
	}

	return nil
}
