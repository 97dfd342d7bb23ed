// Package geom provides the small fixed-size vector algebra used by the
// AAK waveform kernel: dot product, cross product and Euclidean norm on
// 3-vectors.
//
// All functions are pure, allocation-free and safe for concurrent use, so
// the same code runs unchanged inside every worker of the parallel
// drivers in package aak.
//
// Usage:
//
//	n := geom.Vec3{0, 0, 1}
//	l := geom.Vec3{1, 0, 0}
//	var nxl geom.Vec3
//	geom.Cross(&n, &l, &nxl)
//	fmt.Println(geom.Norm(&nxl)) // 1
package geom
