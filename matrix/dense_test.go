// Package matrix_test: Dense storage construction and access.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseValidation(t *testing.T) {
	// Non-positive shape.
	_, err := matrix.NewDense(0, 3, []element.Real{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Element count vs declared shape.
	_, err = matrix.NewDense(2, 2, element.Reals([]float64{1, 2, 3}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNewFromRowsRaggedRejected(t *testing.T) {
	_, err := matrix.NewFromRows([][]element.Real{
		element.Reals([]float64{1, 2}),
		element.Reals([]float64{3}),
	})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDenseAtAndBounds(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(element.Real(6)))

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "index %v", idx)
	}
}

func TestDenseConstructorCopiesInput(t *testing.T) {
	elems := element.Reals([]float64{1, 2, 3, 4})
	m, err := matrix.NewDense(2, 2, elems)
	require.NoError(t, err)

	elems[0] = element.Real(99) // mutating the source must not leak in
	got, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, got.Equal(element.Real(1)))
}

func TestDenseClone(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, matrix.Equal[element.Real](m, c))
	require.NotSame(t, m, c)
}

func TestNewRealConvenience(t *testing.T) {
	m, err := matrix.NewReal(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = matrix.NewReal(2, 2, []float64{1})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}
