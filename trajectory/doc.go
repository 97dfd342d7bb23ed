// Package trajectory builds deterministic synthetic EMRI orbital-element
// trajectories in the piecewise-cubic layout consumed by package aak.
//
// It is a fixture and demo generator, not an orbit integrator: every element
// follows a closed-form recipe
//
//	e(t)        = e0 + ė·t
//	ν(t)        = ν0 + ν̇·t
//	Φ(t)        = φ0 + 2π(ν0·t + ½ν̇·t²)
//	γ(t)        = γ0 + γ̇·t,   γ̇ constant
//	α(t)        = α0 + α̇·t
//	ΩΦ(t)       = 2π·ν(t) + γ̇
//	λ(t)        = λ0
//
// Build samples the recipe at K evenly spaced knots and writes the exact
// Taylor coefficients of each element about every knot, so spline evaluation
// reproduces the recipe to rounding. BuildFitted instead samples the recipe
// and hands the samples to spline.Fit, exercising the interpolating producer.
//
// Options follow the usual contract: constructors panic on meaningless
// values; Build returns sentinel errors (errors.Is) for recipes that become
// unphysical inside the requested span.
package trajectory
