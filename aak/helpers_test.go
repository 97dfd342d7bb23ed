package aak_test

import (
	"math"

	"github.com/KwintenF/FastEMRIWaveforms/aak"
	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

// refGeometry is a generic, non-degenerate source.
var refGeometry = aak.Geometry{
	M:    1e6,
	S:    0.5,
	Mu:   10,
	QS:   1.0,
	PhiS: 0.5,
	QK:   0.8,
	PhiK: 1.2,
	Dist: 1,
}

// constantOrbit builds a single-segment trajectory whose elements are all
// constant except Phi, which advances at omega rad/s.
func constantOrbit(e, omega float64) spline.Trajectory {
	traj := spline.NewTrajectory([]float64{0})
	set := func(p spline.Param, c0, c1 float64) {
		traj.SetSegment(0, p, [spline.NumOrders]float64{c0, c1, 0, 0})
	}
	set(spline.E, e, 0)
	set(spline.Phi, 0, omega)
	set(spline.Gim, 0.3, 0)
	set(spline.Alp, 0.2, 0)
	set(spline.Nu, omega/(2*math.Pi), 0)
	set(spline.Gimdot, 0, 0)
	set(spline.OmegaPhi, omega, 0)
	set(spline.Lam, 0.6, 0)

	return traj
}

// evolvingOrbit builds an nseg-knot trajectory with every element varying
// along the segments (quadratic phase, drifting frequency and eccentricity).
func evolvingOrbit(nseg int, span float64) spline.Trajectory {
	knots := make([]float64, nseg)
	for k := range knots {
		knots[k] = span * float64(k) / float64(nseg)
	}
	traj := spline.NewTrajectory(knots)

	const (
		nu0, nudot = 2e-3, 1e-9
		gimdot     = 3e-5
		alpdot     = 1e-6
		e0, edot   = 0.4, -2e-7
		lam0       = 0.7
	)
	for s, tk := range knots {
		nu := nu0 + nudot*tk
		set := func(p spline.Param, c0, c1, c2 float64) {
			traj.SetSegment(s, p, [spline.NumOrders]float64{c0, c1, c2, 0})
		}
		set(spline.E, e0+edot*tk, edot, 0)
		set(spline.Phi, 2*math.Pi*(nu0*tk+0.5*nudot*tk*tk), 2*math.Pi*nu, math.Pi*nudot)
		set(spline.Gim, gimdot*tk, gimdot, 0)
		set(spline.Alp, alpdot*tk, alpdot, 0)
		set(spline.Nu, nu, nudot, 0)
		set(spline.Gimdot, gimdot, 0, 0)
		set(spline.OmegaPhi, 2*math.Pi*nu+gimdot, 2*math.Pi*nudot, 0)
		set(spline.Lam, lam0, 0, 0)
	}

	return traj
}

// mapFor locates the segments of n samples spaced dt apart.
func mapFor(traj spline.Trajectory, dt float64, n int) []int {
	seg, err := spline.Locate(traj.Knots, dt, n)
	if err != nil {
		panic(err)
	}

	return seg.SampleMap()
}

// finite reports whether every sample is free of NaN and Inf.
func finite(h []complex128) bool {
	for _, v := range h {
		for _, x := range []float64{real(v), imag(v)} {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return false
			}
		}
	}

	return true
}

// maxAbs returns max |h_i|.
func maxAbs(h []complex128) float64 {
	m := 0.0
	for _, v := range h {
		m = math.Max(m, math.Hypot(real(v), imag(v)))
	}

	return m
}
