// Package aak synthesises extreme-mass-ratio-inspiral (EMRI) strain with
// the Analytic Kludge (AAK) waveform model.
//
// 🚀 What does it compute?
//
//	Given a sparse orbital-element trajectory in piecewise-cubic form
//	(package spline), the kernel evaluates every dense output sample
//	independently:
//	  1. evaluate the eight orbital-element splines at the sample time,
//	  2. derive the orbital-angular-momentum direction and polarisation
//	     offset from the precession phases,
//	  3. sum nmodes orbital harmonics with Bessel-function amplitudes,
//	  4. rotate into the detector polarisation frame (RotCoeff),
//	  5. project through the antenna pattern: heliocentric Doppler-modulated
//	     (two LISA-like channels) or fixed (identity projection),
//	and writes complex(hI, −hII).
//
// ✨ Execution strategies (same per-sample function):
//   - Grid: blocks × threads goroutines; every block stages the trajectory
//     into its own fixed-capacity spline.Arena, meets at one barrier, then
//     walks samples with a grid-stride loop.
//   - Host: errgroup-limited workers over contiguous chunks, reading the
//     trajectory in place with private scratch.
//
// Both strategies are bit-identical for identical inputs.
//
// ⚙️ Usage:
//
//	seg, _ := spline.Locate(traj.Knots, dt, n)
//	out := make([]complex128, n)
//	err := aak.Generate(out, traj, seg.SampleMap(), geo,
//		aak.Params{NModes: 10, Doppler: true, Dt: dt},
//		aak.WithStrategy(aak.Host))
//
// Errors:
//   - ErrTooManySegments: more than spline.MaxSegments (160) segments;
//     reported before any buffer is touched.
//   - ErrBadInput / ErrBadLength / ErrBadSegmentMap: malformed call.
//
// Near-polar angles and degenerate rotation geometry are clamped, never
// reported. Unphysical eccentricity, mass or distance yield NaN output.
package aak
