// Package element_test verifies the Real field element against the
// ring.Element laws and its pivot-ranking capability.
package element_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/ring"
	"github.com/stretchr/testify/require"
)

// TestRealFieldLaws checks closure, identities and inverses on Real.
func TestRealFieldLaws(t *testing.T) {
	x := element.Real(2.5)
	y := element.Real(-4)

	require.Equal(t, element.Real(-1.5), x.Plus(y))     // addition
	require.Equal(t, element.Real(-2.5), x.Opposite())  // negation
	require.Equal(t, element.Real(-10), x.Times(y))     // multiplication
	require.True(t, x.Plus(y).Equal(y.Plus(x)))         // "+" commutes
	require.True(t, ring.IsZero(x.Plus(x.Opposite()))) // x + (−x) = 0

	inv, ok := x.Inverse()
	require.True(t, ok)                          // 2.5 is invertible
	require.Equal(t, element.Real(0.4), inv)     // exact binary fraction
	require.True(t, x.Times(inv).Equal(element.Real(1)))

	_, ok = element.Real(0).Inverse()
	require.False(t, ok) // zero has no inverse
}

// TestRealMagnitude ensures pivot ranking sees the absolute value.
func TestRealMagnitude(t *testing.T) {
	require.Equal(t, 3.5, element.Real(-3.5).Magnitude())
	require.Equal(t, 0.0, element.Real(0).Magnitude())

	// The default comparator must prefer the larger magnitude.
	require.Positive(t, ring.Compare(element.Real(-3), element.Real(2)))
	require.Negative(t, ring.Compare(element.Real(0), element.Real(1)))
}

// TestReals verifies the native float64 lifting helper.
func TestReals(t *testing.T) {
	got := element.Reals([]float64{1, -2, 0.5})
	require.Equal(t, []element.Real{1, -2, 0.5}, got)
	require.Empty(t, element.Reals(nil))
}
