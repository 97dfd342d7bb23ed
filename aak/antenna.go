// SPDX-License-Identifier: MIT
// Package: aak
//
// antenna.go - heliocentric detector response.
//
// The detector centre moves on a one-sidereal-year orbit. At orbital phase
// orbphs = 2π t / YearSiderealSI the source appears at colatitude q and
// azimuth phiw in the detector frame, with polarisation angle psi; the two
// equivalent-interferometer channels then respond with
//
//	F+I  = ½(1+cos²q)·cos2φ·cos2ψ − cos q·sin2φ·sin2ψ
//	F×I  = ½(1+cos²q)·cos2φ·sin2ψ + cos q·sin2φ·cos2ψ
//	F+II = ½(1+cos²q)·sin2φ·cos2ψ + cos q·cos2φ·sin2ψ
//	F×II = ½(1+cos²q)·sin2φ·sin2ψ − cos q·cos2φ·cos2ψ

package aak

import "math"

// sky caches trigonometry of the clamped sky and spin angles.
type sky struct {
	qS, phiS, qK, phiK float64

	cosQS, sinQS   float64
	cosQK, sinQK   float64
	cosPK, sinPK   float64
	cosPS, sinPS   float64
	sinPKmPS       float64 // sin(phiK − phiS)
	sdotn          float64 // S·n
	psiStatic      float64 // ½ sin qK sin qS sin(phiK − phiS)
	cross1, cross2 float64 // spin/sky cross terms of psidown
}

// clampPole keeps an angle inside (PoleEpsilon, π − PoleEpsilon).
func clampPole(q float64) float64 {
	if q < PoleEpsilon {
		return PoleEpsilon
	}
	if q > math.Pi-PoleEpsilon {
		return math.Pi - PoleEpsilon
	}

	return q
}

func newSky(g Geometry) sky {
	s := sky{
		qS:   clampPole(g.QS),
		phiS: g.PhiS,
		qK:   clampPole(g.QK),
		phiK: g.PhiK,
	}
	s.sinQS, s.cosQS = math.Sincos(s.qS)
	s.sinQK, s.cosQK = math.Sincos(s.qK)
	s.sinPK, s.cosPK = math.Sincos(s.phiK)
	s.sinPS, s.cosPS = math.Sincos(s.phiS)
	s.sinPKmPS = math.Sin(s.phiK - s.phiS)
	s.sdotn = s.cosQK*s.cosQS + s.sinQK*s.sinQS*math.Cos(s.phiK-s.phiS)
	s.psiStatic = 0.5 * s.sinQK * s.sinQS * s.sinPKmPS
	s.cross1 = s.cosQK*s.sinQS*s.sinPS - s.cosQS*s.sinQK*s.sinPK
	s.cross2 = s.cosQS*s.sinQK*s.cosPK - s.cosQK*s.sinQS*s.cosPS

	return s
}

// AntennaAt returns the heliocentric response to g at time t (s).
func AntennaAt(t float64, g Geometry) Antenna {
	s := newSky(g)
	a, _ := s.antenna(t)

	return a
}

// antenna returns the response and cos(orbphs − phiS), which the Doppler
// phase also needs.
func (s *sky) antenna(t float64) (Antenna, float64) {
	orbphs := twoPi * t / YearSiderealSI
	sinOrb, cosOrb := math.Sincos(orbphs)
	sinOrbS, cosOrbS := math.Sincos(orbphs - s.phiS)

	cosq := 0.5*s.cosQS - halfSqrt3*s.sinQS*cosOrbS
	phiw := orbphs + math.Atan2(halfSqrt3*s.cosQS+0.5*s.sinQS*cosOrbS, s.sinQS*sinOrbS)

	psiUp := 0.5*s.cosQK - halfSqrt3*s.sinQK*math.Cos(orbphs-s.phiK) - cosq*s.sdotn
	psiDown := s.psiStatic - halfSqrt3*cosOrb*s.cross1 - halfSqrt3*sinOrb*s.cross2
	psi := math.Atan2(psiUp, psiDown)

	cosq1 := 0.5 * (1 + cosq*cosq)
	sin2phi, cos2phi := math.Sincos(2 * phiw)
	sin2psi, cos2psi := math.Sincos(2 * psi)

	return Antenna{
		PlusI:   cosq1*cos2phi*cos2psi - cosq*sin2phi*sin2psi,
		CrossI:  cosq1*cos2phi*sin2psi + cosq*sin2phi*cos2psi,
		PlusII:  cosq1*sin2phi*cos2psi + cosq*cos2phi*sin2psi,
		CrossII: cosq1*sin2phi*sin2psi - cosq*cos2phi*cos2psi,
	}, cosOrbS
}
