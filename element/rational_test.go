// Package element_test verifies Rational: exactness, value semantics and
// the zero-value contract.
package element_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/ring"
	"github.com/stretchr/testify/require"
)

// TestRationalExactArithmetic checks that 1/3 + 1/6 is exactly 1/2 —
// the kind of identity float64 can only approximate.
func TestRationalExactArithmetic(t *testing.T) {
	third := element.NewRational(1, 3)
	sixth := element.NewRational(1, 6)
	half := element.NewRational(1, 2)

	require.True(t, third.Plus(sixth).Equal(half))
	require.Equal(t, "1/2", third.Plus(sixth).String())

	inv, ok := third.Inverse()
	require.True(t, ok)
	require.True(t, inv.Equal(element.NewInteger(3)))

	_, ok = element.Rational{}.Inverse()
	require.False(t, ok) // zero value is zero and has no inverse
}

// TestRationalValueSemantics ensures operands are never mutated.
func TestRationalValueSemantics(t *testing.T) {
	x := element.NewRational(2, 3)
	y := element.NewRational(1, 3)

	_ = x.Plus(y)     // result discarded on purpose
	_ = x.Opposite()  // ditto
	_, _ = x.Inverse()

	require.Equal(t, "2/3", x.String()) // x unchanged by every operation
	require.Equal(t, "1/3", y.String())
}

// TestRationalZeroValue verifies the zero value behaves as exact 0/1.
func TestRationalZeroValue(t *testing.T) {
	var zero element.Rational

	require.True(t, ring.IsZero(zero))
	require.True(t, zero.Plus(element.NewInteger(7)).Equal(element.NewInteger(7)))
	require.Equal(t, 0.0, zero.Magnitude())
}

// TestRationalZeroDenominatorPanics documents the programmer-error guard.
func TestRationalZeroDenominatorPanics(t *testing.T) {
	require.Panics(t, func() { element.NewRational(1, 0) })
}
