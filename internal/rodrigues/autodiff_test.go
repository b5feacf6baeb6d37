package rodrigues

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutoDiffDefaults(t *testing.T) {
	a := NewAutoDiff()
	h1, h2 := a.Steps()
	require.Equal(t, DefaultStep, h1)
	require.Equal(t, DefaultStep, h2)

	a.SetSteps(1e-14, 1e-12)
	h1, h2 = a.Steps()
	require.Equal(t, 1e-14, h1)
	require.Equal(t, 1e-12, h2)
}

func TestAutoDiffValuesAreClosedForm(t *testing.T) {
	a := NewAutoDiff()
	d := ClosedForm{}
	for _, theta := range []float64{-1, 0.2, 0.7, 2} {
		require.Equal(t, d.A0(theta), a.A0(theta))
		require.Equal(t, d.A1(theta), a.A1(theta))
		require.Equal(t, d.A2(theta), a.A2(theta))
	}
}

// TestAutoDiffDerivatives compares the extracted derivatives against the
// symbolic expressions at well-conditioned angles. Hyper-dual derivatives are
// exact up to rounding, so agreement is tight.
func TestAutoDiffDerivatives(t *testing.T) {
	a := NewAutoDiff()
	d := ClosedForm{}

	for _, theta := range []float64{-1.2, 0.3, 0.8, 1.5, 2.4} {
		require.InDelta(t, d.Da0(theta), a.Da0(theta), 1e-9, "da0 at %v", theta)
		require.InDelta(t, d.Da1(theta), a.Da1(theta), 1e-9, "da1 at %v", theta)
		require.InDelta(t, d.Da2(theta), a.Da2(theta), 1e-9, "da2 at %v", theta)
		require.InDelta(t, d.D2a0(theta), a.D2a0(theta), 1e-7, "d2a0 at %v", theta)
		require.InDelta(t, d.D2a1(theta), a.D2a1(theta), 1e-7, "d2a1 at %v", theta)
		require.InDelta(t, d.D2a2(theta), a.D2a2(theta), 1e-7, "d2a2 at %v", theta)
	}
}

// TestAutoDiffNearSingularity: close to θ = 0 the closed forms for b1 and b2
// lose digits to cancellation while the hyper-dual path tracks the series
// limits. Compare against the series evaluator, which is exact there.
func TestAutoDiffNearSingularity(t *testing.T) {
	a := NewAutoDiff()
	s := NewSeries()

	for _, theta := range []float64{-0.05, -0.01, 0.01, 0.05} {
		require.InDelta(t, s.B0(theta), a.B0(theta), 1e-8, "b0 at %v", theta)
		require.InDelta(t, s.B1(theta), a.B1(theta), 1e-6, "b1 at %v", theta)
		require.InDelta(t, s.B2(theta), a.B2(theta), 1e-6, "b2 at %v", theta)
	}
}

// TestAutoDiffAtZero: at θ = 0 exactly, the seeded angle routes through the
// tolerance-guarded reciprocal; the a1 and a2 values are the closed-form NaN
// (value components are never substituted), and that is accepted behavior.
func TestAutoDiffAtZero(t *testing.T) {
	a := NewAutoDiff()
	require.True(t, math.IsNaN(a.A1(0)))
	require.Equal(t, 1.0, a.A0(0))
	// da0/dθ = -sin(0) = 0 is finite and exact.
	require.Equal(t, 0.0, a.Da0(0))
	// d²a0/dθ² = -cos(0) = -1.
	require.InDelta(t, -1.0, a.D2a0(0), 1e-12)
}

func TestAutoDiffUnequalSteps(t *testing.T) {
	a := NewAutoDiff()
	a.SetSteps(1e-8, 1e-12)
	d := ClosedForm{}

	const theta = 0.9
	require.InDelta(t, d.Da0(theta), a.Da0(theta), 1e-9)
	require.InDelta(t, d.D2a0(theta), a.D2a0(theta), 1e-9)
}
