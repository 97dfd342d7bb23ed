// Package fastemriwaveforms generates gravitational-wave strain for
// extreme-mass-ratio inspirals with the Analytic Kludge (AAK) model.
//
// Sparse orbital-element trajectories come in as per-segment cubic
// coefficients; the kernel reconstructs a dense, uniformly sampled waveform
// by spline evaluation, harmonic summation with Bessel-function amplitudes,
// a polarisation rotation and either a fixed or a heliocentric,
// Doppler-modulated detector response.
//
// Packages:
//
//	geom/          3-vector Dot, Cross, Norm
//	bessel/        integer-order Bessel J (stdlib or Miller recurrence) and
//	               the five orders each harmonic needs
//	spline/        coefficient layout, segment locator, staging arena and
//	               the gonum-backed coefficient fitter
//	aak/           rotation coefficients, antenna pattern, per-sample kernel
//	               and the Generate driver (Grid and Host strategies)
//	trajectory/    synthetic trajectories for tests, benchmarks and the CLI
//	spectrum/      windowed power spectrum and dominant frequency
//	cmd/aakwave/   JSON-configured command writing parquet and PNG output
//
// Quick start:
//
//	traj, _ := trajectory.Build(100, 1<<16*10)
//	h, err := aak.Waveform(traj, aak.Geometry{M: 1e6, S: 0.5, Mu: 10,
//		QS: 1, PhiS: 0.5, QK: 0.8, PhiK: 1.2, Dist: 1},
//		aak.Params{NModes: 10, Doppler: true, Dt: 10}, 1<<16)
package fastemriwaveforms
