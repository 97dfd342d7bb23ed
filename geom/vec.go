// SPDX-License-Identifier: MIT
// Package: geom
//
// vec.go - 3-vector primitives.
//
// Contract:
//   - Vectors are passed by pointer so hot loops never copy.
//   - Cross writes into a caller-provided destination (no allocation).
//   - No error paths: plain IEEE arithmetic.

package geom

import "math"

// Vec3 is a Cartesian 3-vector.
type Vec3 [3]float64

// Dot returns u·v.
func Dot(u, v *Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Cross stores u×v into w. w may not alias u or v.
func Cross(u, v, w *Vec3) {
	w[0] = u[1]*v[2] - u[2]*v[1]
	w[1] = u[2]*v[0] - u[0]*v[2]
	w[2] = u[0]*v[1] - u[1]*v[0]
}

// Norm returns the Euclidean length of u.
func Norm(u *Vec3) float64 {
	return math.Sqrt(u[0]*u[0] + u[1]*u[1] + u[2]*u[2])
}

// Unit returns the unit vector with colatitude theta and azimuth phi.
func Unit(theta, phi float64) Vec3 {
	st, ct := math.Sincos(theta)
	sp, cp := math.Sincos(phi)

	return Vec3{st * cp, st * sp, ct}
}
