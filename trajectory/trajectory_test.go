package trajectory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KwintenF/FastEMRIWaveforms/spline"
	"github.com/KwintenF/FastEMRIWaveforms/trajectory"
)

// TestKnots_EvenSpacing checks the half-open knot grid.
func TestKnots_EvenSpacing(t *testing.T) {
	assert.Equal(t, []float64{0, 25, 50, 75}, trajectory.Knots(4, 100))
	assert.Equal(t, []float64{0}, trajectory.Knots(1, 10))
}

// TestBuild_MatchesRecipe evaluates the spline between knots and compares
// against the closed-form recipe.
func TestBuild_MatchesRecipe(t *testing.T) {
	opts := []trajectory.Option{
		trajectory.WithEccentricity(0.5, -1e-6),
		trajectory.WithFrequency(1e-3, 2e-9),
		trajectory.WithPrecession(4e-5),
		trajectory.WithLenseThirring(3e-6),
		trajectory.WithInclination(1.1),
		trajectory.WithPhases(0.1, 0.2, 0.3),
	}
	traj, err := trajectory.Build(10, 1e5, opts...)
	require.NoError(t, err)
	require.NoError(t, traj.Validate())
	require.Equal(t, 10, traj.Segments())

	ts := []float64{0, 1234.5, 37000, 99999}
	want := trajectory.Samples(ts, opts...)
	for i, tm := range ts {
		seg := int(tm / 1e4)
		for p := spline.Param(0); p < spline.NumParams; p++ {
			got := traj.Eval(seg, p, tm)
			assert.InDelta(t, want[p][i], got, 1e-9*math.Max(1, math.Abs(want[p][i])), "%s at t=%g", p, tm)
		}
	}
	assert.InDelta(t, 0.5-0.1, want[spline.E][3], 1e-6)
	assert.InDelta(t, 2*math.Pi*(1e-3+2e-9*99999)+4e-5, want[spline.OmegaPhi][3], 1e-12)
}

// TestBuildFitted_LinearRecipeIsExact: without chirp every element is at
// most linear, which a natural cubic reproduces.
func TestBuildFitted_LinearRecipeIsExact(t *testing.T) {
	exact, err := trajectory.Build(8, 8e4)
	require.NoError(t, err)
	fitted, err := trajectory.BuildFitted(8, 8e4)
	require.NoError(t, err)
	require.Equal(t, exact.Knots, fitted.Knots)

	for seg := 0; seg < 8; seg++ {
		tm := exact.Knots[seg] + 4321
		for p := spline.Param(0); p < spline.NumParams; p++ {
			want := exact.Eval(seg, p, tm)
			assert.InDelta(t, want, fitted.Eval(seg, p, tm), 1e-8*math.Max(1, math.Abs(want)), "%s seg %d", p, seg)
		}
	}
}

// TestBuildFitted_Akima exercises the alternate interpolant on a chirping
// recipe; the phase stays close to the exact quadratic.
func TestBuildFitted_Akima(t *testing.T) {
	opts := []trajectory.Option{
		trajectory.WithFrequency(2e-3, 1e-10),
		trajectory.WithInterpolant(spline.Akima),
	}
	exact, err := trajectory.Build(20, 1e5, opts...)
	require.NoError(t, err)
	fitted, err := trajectory.BuildFitted(20, 1e5, opts...)
	require.NoError(t, err)

	for seg := 0; seg < 20; seg++ {
		tm := exact.Knots[seg] + 2500
		want := exact.Eval(seg, spline.Phi, tm)
		assert.InDelta(t, want, fitted.Eval(seg, spline.Phi, tm), 1e-2)
	}
}

// TestBuild_Errors covers size and physicality checks.
func TestBuild_Errors(t *testing.T) {
	_, err := trajectory.Build(0, 10)
	assert.ErrorIs(t, err, trajectory.ErrBadSize)
	_, err = trajectory.Build(3, 0)
	assert.ErrorIs(t, err, trajectory.ErrBadSize)

	// e reaches 1.3 at the end of the span.
	_, err = trajectory.Build(3, 1e5, trajectory.WithEccentricity(0.3, 1e-5))
	assert.ErrorIs(t, err, trajectory.ErrUnphysical)

	// ν crosses zero.
	_, err = trajectory.BuildFitted(3, 1e5, trajectory.WithFrequency(1e-3, -1e-7))
	assert.ErrorIs(t, err, trajectory.ErrUnphysical)
}

// TestOptions_Panics verifies option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { trajectory.WithEccentricity(1, 0) })
	assert.Panics(t, func() { trajectory.WithEccentricity(-0.1, 0) })
	assert.Panics(t, func() { trajectory.WithFrequency(0, 0) })
	assert.Panics(t, func() { trajectory.WithPrecession(math.NaN()) })
	assert.Panics(t, func() { trajectory.WithLenseThirring(math.Inf(1)) })
	assert.Panics(t, func() { trajectory.WithInclination(4) })
	assert.Panics(t, func() { trajectory.WithInterpolant(nil) })
}
