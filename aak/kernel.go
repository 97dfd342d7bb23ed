// SPDX-License-Identifier: MIT
// Package: aak
//
// kernel.go - per-sample AAK synthesis.
//
// sample(i) reads only the read-only synth state, the (staged or in-place)
// trajectory and the caller's scratch, and returns one complex strain value.
// It is the single algorithm body shared by every execution strategy.

package aak

import (
	"math"

	"github.com/KwintenF/FastEMRIWaveforms/bessel"
	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

// synth is the read-only per-call state.
type synth struct {
	sky    sky
	params Params
	segMap []int
	j      bessel.J

	massSec float64 // M in seconds
	zeta    float64 // Mu (s) / Dist (s)
	spinOff bool    // S == 0 ⇒ beta = 0
}

// scratch is private to one worker.
type scratch struct {
	rot rotScratch
}

func newSynth(g Geometry, p Params, segMap []int, j bessel.J) *synth {
	return &synth{
		sky:     newSky(g),
		params:  p,
		segMap:  segMap,
		j:       j,
		massSec: g.M * MTSunSI,
		zeta:    g.Mu * MTSunSI / (g.Dist * GpcSec),
		spinOff: g.S == 0,
	}
}

// orbit holds the eight spline-evaluated elements at one sample.
type orbit struct {
	e, phi, gim, alp, nu, gimdot, omegaPhi, lam float64
}

func evalOrbit(knots, coeffs []float64, seg int, t float64) orbit {
	nseg := len(knots)
	x := t - knots[seg]

	return orbit{
		e:        spline.EvalFlat(coeffs, nseg, seg, spline.E, x),
		phi:      spline.EvalFlat(coeffs, nseg, seg, spline.Phi, x),
		gim:      spline.EvalFlat(coeffs, nseg, seg, spline.Gim, x),
		alp:      spline.EvalFlat(coeffs, nseg, seg, spline.Alp, x),
		nu:       spline.EvalFlat(coeffs, nseg, seg, spline.Nu, x),
		gimdot:   spline.EvalFlat(coeffs, nseg, seg, spline.Gimdot, x),
		omegaPhi: spline.EvalFlat(coeffs, nseg, seg, spline.OmegaPhi, x),
		lam:      spline.EvalFlat(coeffs, nseg, seg, spline.Lam, x),
	}
}

// sample synthesises output sample i.
func (s *synth) sample(i int, knots, coeffs []float64, sc *scratch) complex128 {
	t := float64(i) * s.params.Dt
	o := evalOrbit(knots, coeffs, s.segMap[i], t)
	k := &s.sky

	lam := clampPole(o.lam)
	sinLam, cosLam := math.Sincos(lam)
	sinAlp, cosAlp := math.Sincos(o.alp)

	// Orbital angular momentum direction and line-of-sight projections.
	cosqL := k.cosQK*cosLam + k.sinQK*sinLam*cosAlp
	sinqL := math.Sqrt(math.Max(0, 1-cosqL*cosqL))
	phiLup := k.sinQK*k.sinPK*cosLam - k.cosPK*sinLam*sinAlp - k.cosQK*k.sinPK*sinLam*cosAlp
	phiLdown := k.sinQK*k.cosPK*cosLam + k.sinPK*sinLam*sinAlp - k.cosQK*k.cosPK*sinLam*cosAlp
	phiL := math.Atan2(phiLup, phiLdown)
	ldotn := cosqL*k.cosQS + sinqL*k.sinQS*math.Cos(phiL-k.phiS)
	ldotn2 := ldotn * ldotn

	beta := 0.0
	if !s.spinOff {
		betaUp := -k.sdotn + cosLam*ldotn
		betaDown := k.sinQS*k.sinPKmPS*sinLam*cosAlp + (k.cosQK*k.sdotn-k.cosQS)/k.sinQK*sinLam*sinAlp
		beta = math.Atan2(betaUp, betaDown)
	}
	sin2gam, cos2gam := math.Sincos(2 * (o.gim + beta))

	ant := FixedAntenna
	cosOrbS := 0.0
	if s.params.Doppler {
		ant, cosOrbS = k.antenna(t)
	}

	amp := math.Pow(math.Abs(o.omegaPhi)*s.massSec, twoThirds) * s.zeta
	rot := sc.rot.rotCoeff(lam, k.qS, k.phiS, k.qK, k.phiK, o.alp)

	e := o.e
	sqrt1me2 := math.Sqrt(1 - e*e)
	var hI, hII float64
	for n := 1; n <= s.params.NModes; n++ {
		nf := float64(n)
		nPhi := nf * o.phi
		if s.params.Doppler {
			fn := nf*o.nu + o.gimdot/math.Pi
			nPhi += twoPi * fn * AUSec * k.sinQS * cosOrbS
		}

		J := bessel.Orders(s.j, n, nf*e)
		sinN, cosN := math.Sincos(nPhi)

		a := -nf * amp * (J[0] - 2*e*J[1] + 2/nf*J[2] + 2*e*J[3] - J[4]) * cosN
		b := -nf * amp * sqrt1me2 * (J[0] - 2*J[2] + J[4]) * sinN
		c := 2 * amp * J[2] * cosN

		aPlus := -(1+ldotn2)*(a*cos2gam-b*sin2gam) + c*(1-ldotn2)
		aCros := 2 * ldotn * (b*cos2gam + a*sin2gam)

		rPlus := aPlus*rot[0] + aCros*rot[1]
		rCros := aPlus*rot[2] + aCros*rot[3]

		hnI := ant.PlusI*rPlus + ant.CrossI*rCros
		hnII := ant.PlusII*rPlus + ant.CrossII*rCros
		if s.params.Doppler {
			hnI *= halfSqrt3
			hnII *= halfSqrt3
		}
		hI += hnI
		hII += hnII
	}

	return complex(hI, -hII)
}
