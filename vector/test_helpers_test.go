// Package vector_test shared helpers: a deliberately NON-COMMUTATIVE test
// element (2×2 integer matrices under matrix multiplication) used to catch
// silent operand-order regressions in the kernels.
package vector_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/vector"
	"github.com/stretchr/testify/require"
)

// nc is a 2×2 integer matrix element: addition commutes, multiplication
// does not. Inverse is integer-exact only for determinant ±1, which is all
// the kernels under test need.
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

// mustDense builds a dense Real vector or fails the test.
func mustDense(t *testing.T, values ...float64) *vector.Dense[element.Real] {
	t.Helper()
	v, err := vector.NewReal(values)
	require.NoError(t, err)

	return v
}

// mustSparse builds a sparse Real vector with the given entries.
func mustSparse(t *testing.T, dim int, entries map[int]element.Real) *vector.Sparse[element.Real] {
	t.Helper()
	v, err := vector.NewSparse(dim, element.Real(0), entries)
	require.NoError(t, err)

	return v
}
