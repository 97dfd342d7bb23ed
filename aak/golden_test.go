package aak_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KwintenF/FastEMRIWaveforms/aak"
	"github.com/KwintenF/FastEMRIWaveforms/geom"
	"github.com/KwintenF/FastEMRIWaveforms/spline"
)

// clampRef keeps an angle inside (1e-6, π − 1e-6).
func clampRef(q float64) float64 {
	return math.Min(math.Max(q, 1e-6), math.Pi-1e-6)
}

// orbitalL returns the unit orbital angular momentum for inclination lam
// about the spin (qK, phiK) at precession phase alp.
func orbitalL(lam, qK, phiK, alp float64) geom.Vec3 {
	s := geom.Unit(qK, phiK)
	u := geom.Vec3{
		math.Sin(alp)*math.Sin(phiK) - math.Cos(alp)*math.Cos(qK)*math.Cos(phiK),
		-math.Sin(alp)*math.Cos(phiK) - math.Cos(alp)*math.Cos(qK)*math.Sin(phiK),
		math.Cos(alp) * math.Sin(qK),
	}
	var l geom.Vec3
	for i := range l {
		l[i] = math.Cos(lam)*s[i] + math.Sin(lam)*u[i]
	}

	return l
}

// referenceSample evaluates one strain sample straight from the AAK
// formulas: no cached trigonometry, line-of-sight products from vectors,
// antenna angles recomputed from scratch and Bessel values from math.Jn.
func referenceSample(traj spline.Trajectory, seg int, t float64, g aak.Geometry, nmodes int, doppler bool) complex128 {
	el := func(p spline.Param) float64 { return traj.Eval(seg, p, t) }
	e, phi, gim, alp := el(spline.E), el(spline.Phi), el(spline.Gim), el(spline.Alp)
	nu, gimdot, omegaPhi := el(spline.Nu), el(spline.Gimdot), el(spline.OmegaPhi)
	lam := clampRef(el(spline.Lam))
	qS, qK := clampRef(g.QS), clampRef(g.QK)
	phiS, phiK := g.PhiS, g.PhiK

	n := geom.Unit(qS, phiS)
	s := geom.Unit(qK, phiK)
	l := orbitalL(lam, qK, phiK, alp)
	ldotn := geom.Dot(&l, &n)
	sdotn := geom.Dot(&s, &n)

	beta := 0.0
	if g.S != 0 {
		up := -sdotn + math.Cos(lam)*ldotn
		down := math.Sin(qS)*math.Sin(phiK-phiS)*math.Sin(lam)*math.Cos(alp) +
			(math.Cos(qK)*sdotn-math.Cos(qS))/math.Sin(qK)*math.Sin(lam)*math.Sin(alp)
		beta = math.Atan2(up, down)
	}
	gam := 2 * (gim + beta)

	fpI, fxI, fpII, fxII := 1.0, 0.0, 0.0, 1.0
	orbphs := 2 * math.Pi * t / aak.YearSiderealSI
	if doppler {
		cosq := 0.5*math.Cos(qS) - math.Sqrt(3)/2*math.Sin(qS)*math.Cos(orbphs-phiS)
		phiw := orbphs + math.Atan2(
			math.Sqrt(3)/2*math.Cos(qS)+0.5*math.Sin(qS)*math.Cos(orbphs-phiS),
			math.Sin(qS)*math.Sin(orbphs-phiS))
		psiUp := 0.5*math.Cos(qK) - math.Sqrt(3)/2*math.Sin(qK)*math.Cos(orbphs-phiK) - cosq*sdotn
		psiDown := 0.5*math.Sin(qK)*math.Sin(qS)*math.Sin(phiK-phiS) -
			math.Sqrt(3)/2*math.Cos(orbphs)*(math.Cos(qK)*math.Sin(qS)*math.Sin(phiS)-math.Cos(qS)*math.Sin(qK)*math.Sin(phiK)) -
			math.Sqrt(3)/2*math.Sin(orbphs)*(math.Cos(qS)*math.Sin(qK)*math.Cos(phiK)-math.Cos(qK)*math.Sin(qS)*math.Cos(phiS))
		psi := math.Atan2(psiUp, psiDown)
		c1 := 0.5 * (1 + cosq*cosq)
		fpI = c1*math.Cos(2*phiw)*math.Cos(2*psi) - cosq*math.Sin(2*phiw)*math.Sin(2*psi)
		fxI = c1*math.Cos(2*phiw)*math.Sin(2*psi) + cosq*math.Sin(2*phiw)*math.Cos(2*psi)
		fpII = c1*math.Sin(2*phiw)*math.Cos(2*psi) + cosq*math.Cos(2*phiw)*math.Sin(2*psi)
		fxII = c1*math.Sin(2*phiw)*math.Sin(2*psi) - cosq*math.Cos(2*phiw)*math.Cos(2*psi)
	}

	amp := math.Pow(math.Abs(omegaPhi)*g.M*aak.MTSunSI, 2.0/3.0) *
		g.Mu * aak.MTSunSI / (g.Dist * aak.GpcSI / aak.CSI)
	rot := aak.RotCoeff(lam, qS, phiS, qK, phiK, alp)

	var hI, hII float64
	for k := 1; k <= nmodes; k++ {
		nk := float64(k)
		arg := nk * phi
		if doppler {
			fn := nk*nu + gimdot/math.Pi
			arg += 2 * math.Pi * fn * aak.AUSI / aak.CSI * math.Sin(qS) * math.Cos(orbphs-phiS)
		}
		jm2 := math.Jn(k-2, nk*e)
		if k == 1 {
			jm2 = -math.J1(nk * e)
		}
		jm1, j0 := math.Jn(k-1, nk*e), math.Jn(k, nk*e)
		jp1, jp2 := math.Jn(k+1, nk*e), math.Jn(k+2, nk*e)

		a := -nk * amp * (jm2 - 2*e*jm1 + 2/nk*j0 + 2*e*jp1 - jp2) * math.Cos(arg)
		b := -nk * amp * math.Sqrt(1-e*e) * (jm2 - 2*j0 + jp2) * math.Sin(arg)
		c := 2 * amp * j0 * math.Cos(arg)

		plus := -(1+ldotn*ldotn)*(a*math.Cos(gam)-b*math.Sin(gam)) + c*(1-ldotn*ldotn)
		cros := 2 * ldotn * (b*math.Cos(gam) + a*math.Sin(gam))
		rp := plus*rot[0] + cros*rot[1]
		rc := plus*rot[2] + cros*rot[3]

		scale := 1.0
		if doppler {
			scale = math.Sqrt(3) / 2
		}
		hI += scale * (fpI*rp + fxI*rc)
		hII += scale * (fpII*rp + fxII*rc)
	}

	return complex(hI, -hII)
}

// TestGenerate_MatchesReferenceFormulas pins absolute sample values of an
// eccentric, precessing orbit in both antenna modes.
func TestGenerate_MatchesReferenceFormulas(t *testing.T) {
	const nmodes = 6
	traj := evolvingOrbit(10, testN*testDt)
	segMap := mapFor(traj, testDt, testN)

	for _, doppler := range []bool{false, true} {
		h, err := aak.Waveform(traj, refGeometry, aak.Params{NModes: nmodes, Doppler: doppler, Dt: testDt}, testN)
		require.NoError(t, err)
		scale := maxAbs(h)
		require.Greater(t, scale, 0.0)

		for _, i := range []int{0, 1, 205, 777, 1500, testN - 1} {
			want := referenceSample(traj, segMap[i], float64(i)*testDt, refGeometry, nmodes, doppler)
			assert.InDelta(t, real(want)/scale, real(h[i])/scale, 1e-9, "doppler=%v sample %d (hI)", doppler, i)
			assert.InDelta(t, imag(want)/scale, imag(h[i])/scale, 1e-9, "doppler=%v sample %d (hII)", doppler, i)
		}
	}
}

// TestGenerate_CircularEnvelopeClosedForm: for e = 0 only n = 2 radiates,
// with a = −2·Amp·cos 2Φ and b = −2·Amp·sin 2Φ. With P = 2Amp(1+(L·n)²),
// X = 4Amp(L·n) and rotation r, the fixed-antenna channels have amplitudes
// R_I = √((P·r0)² + (X·r1)²) and R_II = √((P·r1)² + (X·r0)²).
func TestGenerate_CircularEnvelopeClosedForm(t *testing.T) {
	const omega = 2 * math.Pi * 1e-3
	g := refGeometry
	traj := constantOrbit(0, omega)

	h, err := aak.Waveform(traj, g, aak.Params{NModes: 3, Dt: testDt}, testN)
	require.NoError(t, err)

	lam, alp := 0.6, 0.2 // constantOrbit
	n := geom.Unit(g.QS, g.PhiS)
	l := orbitalL(lam, g.QK, g.PhiK, alp)
	ldotn := geom.Dot(&l, &n)
	amp := math.Pow(omega*g.M*aak.MTSunSI, 2.0/3.0) * g.Mu * aak.MTSunSI / (g.Dist * aak.GpcSI / aak.CSI)
	rot := aak.RotCoeff(lam, g.QS, g.PhiS, g.QK, g.PhiK, alp)

	p := 2 * amp * (1 + ldotn*ldotn)
	x := 4 * amp * ldotn
	wantI := math.Hypot(p*rot[0], x*rot[1])
	wantII := math.Hypot(p*rot[1], x*rot[0])

	theta := 2 * omega * testDt
	envelope := func(ch func(complex128) float64, k int) float64 {
		d := (ch(h[k+1]) - ch(h[k-1])) / (2 * math.Sin(theta))
		return math.Hypot(ch(h[k]), d)
	}
	chI := func(v complex128) float64 { return real(v) }
	chII := func(v complex128) float64 { return -imag(v) }
	for _, k := range []int{1, 500, testN - 2} {
		assert.InDelta(t, 1, envelope(chI, k)/wantI, 1e-9, "hI envelope at %d", k)
		assert.InDelta(t, 1, envelope(chII, k)/wantII, 1e-9, "hII envelope at %d", k)
	}
}
