// Package element_test verifies the Complex field element.
package element_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/stretchr/testify/require"
)

// TestComplexField checks arithmetic and inversion on complex128 values.
func TestComplexField(t *testing.T) {
	i := element.Complex(complex(0, 1))

	require.True(t, i.Times(i).Equal(element.Complex(-1))) // i² = −1

	inv, ok := i.Inverse()
	require.True(t, ok)
	require.True(t, inv.Equal(element.Complex(complex(0, -1)))) // 1/i = −i
	require.True(t, i.Times(inv).Equal(element.Complex(1)))

	_, ok = element.Complex(0).Inverse()
	require.False(t, ok)
}

// TestComplexMagnitude checks pivot ranking uses the modulus.
func TestComplexMagnitude(t *testing.T) {
	require.Equal(t, 5.0, element.Complex(complex(3, 4)).Magnitude())
}
