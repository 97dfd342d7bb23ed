// SPDX-License-Identifier: MIT
// Package: spline
//
// types.go - trajectory coefficient layout.

package spline

// Param identifies one of the tracked orbital elements. The order is part
// of the coefficient layout and must match between producer and kernel.
type Param int

const (
	// E is the orbital eccentricity.
	E Param = iota
	// Phi is the orbital phase.
	Phi
	// Gim is the pericentre precession phase.
	Gim
	// Alp is the Lense–Thirring precession phase of L about the spin.
	Alp
	// Nu is the mean orbital frequency (Hz).
	Nu
	// Gimdot is the secular pericentre precession rate (rad/s).
	Gimdot
	// OmegaPhi is the azimuthal orbital angular frequency (rad/s).
	OmegaPhi
	// Lam is the inclination of L relative to the spin axis.
	Lam
)

const (
	// NumParams is the number of tracked orbital elements.
	NumParams = 8

	// NumOrders is the number of polynomial coefficients per segment.
	NumOrders = 4

	// MaxSegments is the staging capacity of an Arena.
	MaxSegments = 160
)

var paramNames = [NumParams]string{"e", "Phi", "gim", "alp", "nu", "gimdot", "OmegaPhi", "lam"}

// String returns the conventional short name of p.
func (p Param) String() string {
	if p < 0 || int(p) >= NumParams {
		return "Param(?)"
	}

	return paramNames[p]
}

// Trajectory is a sparsely sampled orbital-element trajectory in
// piecewise-cubic form.
//
// Fields:
//   - Knots: segment start times (s), strictly increasing.
//   - Coeffs: 4·len(Knots)·NumParams coefficients, see Index.
type Trajectory struct {
	Knots  []float64
	Coeffs []float64
}

// NewTrajectory allocates a zeroed trajectory with the given knot times.
// The knots slice is retained, not copied.
func NewTrajectory(knots []float64) Trajectory {
	return Trajectory{
		Knots:  knots,
		Coeffs: make([]float64, NumOrders*len(knots)*NumParams),
	}
}

// Segments returns the number of spline segments (one per knot).
func (t Trajectory) Segments() int {
	return len(t.Knots)
}

// Index returns the flat position of coefficient (order, seg, p) in a
// layout with nseg segments.
func Index(nseg, order, seg int, p Param) int {
	return (order*nseg+seg)*NumParams + int(p)
}

// Coeff returns coefficient order of parameter p on segment seg.
func (t Trajectory) Coeff(order, seg int, p Param) float64 {
	return t.Coeffs[Index(len(t.Knots), order, seg, p)]
}

// SetSegment stores the four coefficients c of parameter p on segment seg.
func (t Trajectory) SetSegment(seg int, p Param, c [NumOrders]float64) {
	n := len(t.Knots)
	for o := 0; o < NumOrders; o++ {
		t.Coeffs[Index(n, o, seg, p)] = c[o]
	}
}

// Eval evaluates parameter p at time tm using segment seg.
func (t Trajectory) Eval(seg int, p Param, tm float64) float64 {
	return EvalFlat(t.Coeffs, len(t.Knots), seg, p, tm-t.Knots[seg])
}

// EvalFlat evaluates c0 + c1·x + c2·x² + c3·x³ for (seg, p) directly on a
// flat coefficient slice laid out for nseg segments.
func EvalFlat(coeffs []float64, nseg, seg int, p Param, x float64) float64 {
	stride := nseg * NumParams
	i := seg*NumParams + int(p)

	return coeffs[i] + x*coeffs[i+stride] + x*x*coeffs[i+2*stride] + x*x*x*coeffs[i+3*stride]
}

// Validate checks the knot ordering and the coefficient buffer length.
func (t Trajectory) Validate() error {
	if err := validateKnots("Trajectory.Validate", t.Knots); err != nil {
		return err
	}
	if want := NumOrders * len(t.Knots) * NumParams; len(t.Coeffs) != want {
		return splineErrorf("Trajectory.Validate", ErrBadLength, "coeffs has %d entries, want %d", len(t.Coeffs), want)
	}

	return nil
}
