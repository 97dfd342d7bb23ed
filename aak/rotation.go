// SPDX-License-Identifier: MIT
// Package: aak
//
// rotation.go - source-frame → detector-frame polarisation rotation.
//
// Construction:
//
//	n = unit(qS, phiS)                       line of sight
//	S = unit(qK, phiK)                       spin axis
//	L = cos(lam)·S + sin(lam)·(sin alp sin phiK − cos alp cos qK cos phiK,
//	                          −sin alp cos phiK − cos alp cos qK sin phiK,
//	                           cos alp sin qK)
//	norm   = max(|n×L|·|n×S|, NormFloor)
//	cosrot = (n×L)·(n×S) / norm
//	sinrot = (L·(n×S) − S·(n×L)) / norm      (= −2 sin θ)
//	rot    = [2cos²−1, cos·sin, −cos·sin, 2cos²−1]
//
// rot is a rotation by twice the angle between the n×L and n×S planes.

package aak

import (
	"math"

	"github.com/KwintenF/FastEMRIWaveforms/geom"
)

// rotScratch holds the vector intermediates of one RotCoeff evaluation.
type rotScratch struct {
	n, l, s  geom.Vec3
	nxL, nxS geom.Vec3
}

// RotCoeff returns the polarisation rotation for inclination lam, sky
// position (qS, phiS), spin orientation (qK, phiK) and precession phase alp.
func RotCoeff(lam, qS, phiS, qK, phiK, alp float64) Rot {
	var sc rotScratch

	return sc.rotCoeff(lam, qS, phiS, qK, phiK, alp)
}

func (sc *rotScratch) rotCoeff(lam, qS, phiS, qK, phiK, alp float64) Rot {
	sc.n = geom.Unit(qS, phiS)
	sc.s = geom.Unit(qK, phiK)

	sinI, cosI := math.Sincos(lam)
	sinA, cosA := math.Sincos(alp)
	sinQK, cosQK := math.Sincos(qK)
	sinPK, cosPK := math.Sincos(phiK)
	sc.l[0] = cosI*sinQK*cosPK + sinI*(sinA*sinPK-cosA*cosQK*cosPK)
	sc.l[1] = cosI*sinQK*sinPK - sinI*(sinA*cosPK+cosA*cosQK*sinPK)
	sc.l[2] = cosI*cosQK + sinI*cosA*sinQK

	geom.Cross(&sc.n, &sc.l, &sc.nxL)
	geom.Cross(&sc.n, &sc.s, &sc.nxS)

	norm := geom.Norm(&sc.nxL) * geom.Norm(&sc.nxS)
	if norm < NormFloor {
		norm = NormFloor
	}
	cosrot := geom.Dot(&sc.nxL, &sc.nxS) / norm
	sinrot := (geom.Dot(&sc.l, &sc.nxS) - geom.Dot(&sc.s, &sc.nxL)) / norm

	var rot Rot
	rot[0] = 2*cosrot*cosrot - 1
	rot[1] = cosrot * sinrot
	rot[2] = -rot[1]
	rot[3] = rot[0]

	return rot
}
