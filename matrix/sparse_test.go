// Package matrix_test: Sparse storage — canonical form and the explicit
// zero.
package matrix_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewSparseValidation(t *testing.T) {
	_, err := matrix.NewSparse(0, 2, element.Real(0), nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	// Entry outside the declared shape.
	_, err = matrix.NewSparse(2, 2, element.Real(0), map[matrix.Index]element.Real{
		{Row: 2, Col: 0}: 1,
	})
	require.ErrorIs(t, err, matrix.ErrBadConfiguration)

	// A zero that is not its own opposite is rejected.
	_, err = matrix.NewSparse(2, 2, element.Real(1), nil)
	require.ErrorIs(t, err, matrix.ErrBadConfiguration)
}

func TestSparseDropsZeroEntries(t *testing.T) {
	m := mustSparseReal(t, 3, 3, map[matrix.Index]element.Real{
		{Row: 0, Col: 0}: 1,
		{Row: 1, Col: 1}: 0, // must be dropped on construction
		{Row: 2, Col: 2}: 3,
	})
	require.Equal(t, 2, m.NonZeroCount())
}

func TestSparseAtReadsZeroForAbsent(t *testing.T) {
	m := mustSparseReal(t, 2, 3, map[matrix.Index]element.Real{
		{Row: 0, Col: 1}: 7,
	})

	got, err := m.At(0, 1)
	require.NoError(t, err)
	require.True(t, got.Equal(element.Real(7)))

	got, err = m.At(1, 2)
	require.NoError(t, err)
	require.True(t, got.Equal(element.Real(0)))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestSparseFromDropsZeros(t *testing.T) {
	dense := mustReal(t, [][]float64{{0, 1}, {2, 0}})
	sp, err := matrix.SparseFrom[element.Real](dense, element.Real(0))
	require.NoError(t, err)
	require.Equal(t, 2, sp.NonZeroCount())
	require.True(t, matrix.Equal[element.Real](dense, sp))
}

func TestSparseCloneIsIndependent(t *testing.T) {
	m := mustSparseReal(t, 2, 2, map[matrix.Index]element.Real{
		{Row: 0, Col: 0}: 4,
	})
	c := m.Clone()
	require.True(t, matrix.Equal[element.Real](m, c))
	require.NotSame(t, m, c)
}
