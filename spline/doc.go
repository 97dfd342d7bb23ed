// Package spline holds the sparse-trajectory side of the AAK kernel: the
// cubic coefficient layout for the eight tracked orbital elements, the
// segment locator that maps dense output samples onto sparse segments, and
// the fixed-capacity staging arena the parallel driver copies coefficients
// into.
//
// 🚀 Layout
//
//	A Trajectory with K knots carries 4·K·NumParams coefficients stored as
//	[order][segment][param], param fastest:
//
//	  index(order, seg, p) = (order·K + seg)·NumParams + p
//
//	Segment s covers t ∈ [Knots[s], Knots[s+1]) and is evaluated as
//
//	  y(t) = c0 + c1·x + c2·x² + c3·x³,   x = t − Knots[s]
//
// ✨ Pieces
//   - Locate / Segmentation.SampleMap: which segment every dense sample uses.
//   - Arena: bounded staging buffer (MaxSegments = 160).
//   - Fit: builds a Trajectory from sampled orbital elements with a gonum
//     interpolator (natural cubic by default).
//
// ⚙️ Usage:
//
//	traj, err := spline.Fit(times, samples)           // samples[p][k]
//	seg, err := spline.Locate(traj.Knots, dt, n)
//	segMap := seg.SampleMap()
package spline
