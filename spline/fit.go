// SPDX-License-Identifier: MIT
// Package: spline
//
// fit.go - coefficient producer: sampled orbital elements → Trajectory.
//
// Algorithm Outline (per parameter):
//  1. Fit a gonum interpolator (natural cubic unless overridden) to the
//     samples at the knot times.
//  2. On every interval [x_k, x_{k+1}] probe the fitted piece at
//     u = 0, ⅓, ⅔, 1 and recover its monomial coefficients from Newton
//     forward differences (exact for any cubic piece).
//  3. The trailing segment, which starts at the last knot, re-expands the
//     last interval's cubic about that knot.
//
// Complexity: O(K·NumParams) predictions for K knots.

package spline

import (
	"gonum.org/v1/gonum/interp"
)

// Interpolant is the subset of gonum's interp.FittablePredictor that Fit
// relies on.
type Interpolant interface {
	Fit(xs, ys []float64) error
	Predict(x float64) float64
}

// Compile-time checks for the gonum interpolators we offer.
var (
	_ Interpolant = (*interp.NaturalCubic)(nil)
	_ Interpolant = (*interp.AkimaSpline)(nil)
	_ Interpolant = (*interp.PiecewiseLinear)(nil)
)

// FitOption customises Fit.
type FitOption func(*fitConfig)

type fitConfig struct {
	newInterp func() Interpolant
}

// WithInterpolant overrides the interpolator constructor; it is invoked
// once per parameter. Panics on nil.
func WithInterpolant(fn func() Interpolant) FitOption {
	if fn == nil {
		panic("spline: WithInterpolant(nil)")
	}
	return func(c *fitConfig) {
		c.newInterp = fn
	}
}

// NaturalCubic returns a fresh gonum natural cubic spline.
func NaturalCubic() Interpolant { return &interp.NaturalCubic{} }

// Akima returns a fresh gonum Akima spline.
func Akima() Interpolant { return &interp.AkimaSpline{} }

// PiecewiseLinear returns a fresh gonum piecewise-linear interpolant.
func PiecewiseLinear() Interpolant { return &interp.PiecewiseLinear{} }

// Fit builds a Trajectory from orbital elements sampled at the knot times.
// samples[p] holds parameter p at every knot.
func Fit(knots []float64, samples [NumParams][]float64, opts ...FitOption) (Trajectory, error) {
	const method = "Fit"
	cfg := fitConfig{newInterp: NaturalCubic}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateKnots(method, knots); err != nil {
		return Trajectory{}, err
	}
	if len(knots) < 2 {
		return Trajectory{}, splineErrorf(method, ErrTooFewKnots, "len=%d", len(knots))
	}
	for p := Param(0); p < NumParams; p++ {
		if len(samples[p]) != len(knots) {
			return Trajectory{}, splineErrorf(method, ErrBadLength, "%s has %d samples, want %d", p, len(samples[p]), len(knots))
		}
	}

	traj := NewTrajectory(append([]float64(nil), knots...))
	last := len(knots) - 1
	for p := Param(0); p < NumParams; p++ {
		fn := cfg.newInterp()
		if err := fn.Fit(knots, samples[p]); err != nil {
			return Trajectory{}, splineErrorf(method, err, "fit %s", p)
		}

		var c [NumOrders]float64
		for k := 0; k < last; k++ {
			c = pieceCoeffs(fn, knots[k], knots[k+1])
			traj.SetSegment(k, p, c)
		}
		traj.SetSegment(last, p, shift(c, knots[last]-knots[last-1]))
	}

	return traj, nil
}

// pieceCoeffs recovers the monomial coefficients of the piece on [x0, x1].
func pieceCoeffs(fn Interpolant, x0, x1 float64) [NumOrders]float64 {
	h := x1 - x0
	f0 := fn.Predict(x0)
	f1 := fn.Predict(x0 + h/3)
	f2 := fn.Predict(x0 + 2*h/3)
	f3 := fn.Predict(x1)

	d1 := f1 - f0
	d2 := f2 - 2*f1 + f0
	d3 := f3 - 3*f2 + 3*f1 - f0

	// Coefficients in k = 3x/h.
	k1 := d1 - d2/2 + d3/3
	k2 := d2/2 - d3/2
	k3 := d3 / 6

	s := 3 / h

	return [NumOrders]float64{f0, k1 * s, k2 * s * s, k3 * s * s * s}
}

// shift re-expands c0 + c1·x + c2·x² + c3·x³ about x = h.
func shift(c [NumOrders]float64, h float64) [NumOrders]float64 {
	return [NumOrders]float64{
		c[0] + h*(c[1]+h*(c[2]+h*c[3])),
		c[1] + h*(2*c[2]+3*h*c[3]),
		c[2] + 3*h*c[3],
		c[3],
	}
}
