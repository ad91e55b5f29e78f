// Package matrix_test shared helpers: constructors that fail the test on
// error, plus a deliberately NON-COMMUTATIVE test element (2×2 integer
// matrices under matrix multiplication) used to catch silent
// operand-order regressions in the kernels.
package matrix_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/matrix"
	"github.com/stretchr/testify/require"
)

// nc is a 2×2 integer matrix element: addition commutes, multiplication
// does not. Inverse is integer-exact only for determinant ±1, which is
// all the kernels under test need.
type nc struct{ a, b, c, d int }

func (x nc) Plus(y nc) nc { return nc{x.a + y.a, x.b + y.b, x.c + y.c, x.d + y.d} }
func (x nc) Opposite() nc { return nc{-x.a, -x.b, -x.c, -x.d} }
func (x nc) Times(y nc) nc {
	return nc{
		x.a*y.a + x.b*y.c, x.a*y.b + x.b*y.d,
		x.c*y.a + x.d*y.c, x.c*y.b + x.d*y.d,
	}
}
func (x nc) Equal(y nc) bool { return x == y }
func (x nc) Inverse() (nc, bool) {
	det := x.a*x.d - x.b*x.c
	if det != 1 && det != -1 {
		return nc{}, false // only unimodular matrices invert over ℤ
	}

	return nc{x.d / det, -x.b / det, -x.c / det, x.a / det}, true
}

// ncID is the multiplicative unit of the nc element.
var ncID = nc{1, 0, 0, 1}

// mustReal builds a dense Real matrix from nested rows or fails.
func mustReal(t *testing.T, rows [][]float64) *matrix.Dense[element.Real] {
	t.Helper()
	m, err := matrix.NewRealRows(rows)
	require.NoError(t, err)

	return m
}

// mustNC builds a dense matrix of nc elements from nested rows.
func mustNC(t *testing.T, rows [][]nc) *matrix.Dense[nc] {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustSparseReal builds a sparse Real matrix with the given entries.
func mustSparseReal(t *testing.T, rows, cols int, entries map[matrix.Index]element.Real) *matrix.Sparse[element.Real] {
	t.Helper()
	m, err := matrix.NewSparse(rows, cols, element.Real(0), entries)
	require.NoError(t, err)

	return m
}

// requireRealEqual asserts element-wise equality against nested float rows.
func requireRealEqual(t *testing.T, want [][]float64, got matrix.Matrix[element.Real]) {
	t.Helper()
	require.True(t, matrix.Equal[element.Real](mustReal(t, want), got),
		"matrices differ:\nwant %v\ngot  %v", want, got)
}
