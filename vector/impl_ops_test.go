// Package vector_test exercises the vector kernels: mixed-storage
// addition, canonical sparse results, dot/cross semantics and the
// non-commutative order-regression suite.
package vector_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/vector"
	"github.com/stretchr/testify/require"
)

// TestAddSparsePlusDense reproduces the canonical mixed-storage case:
// a dimension-5 sparse vector with 3 at index 2 plus a dense all-ones
// vector yields [1,1,4,1,1].
func TestAddSparsePlusDense(t *testing.T) {
	sparse := mustSparse(t, 5, map[int]element.Real{2: 3})
	ones := mustDense(t, 1, 1, 1, 1, 1)

	sum, err := vector.Add[element.Real](sparse, ones)
	require.NoError(t, err)

	want := mustDense(t, 1, 1, 4, 1, 1)
	require.True(t, vector.Equal[element.Real](want, sum))
}

// TestAddSparseSparseCanonical ensures entries cancelling to zero are
// dropped from the merged result.
func TestAddSparseSparseCanonical(t *testing.T) {
	a := mustSparse(t, 4, map[int]element.Real{1: 2, 3: 5})
	b := mustSparse(t, 4, map[int]element.Real{1: -2, 2: 1})

	sum, err := vector.Add[element.Real](a, b)
	require.NoError(t, err)

	sp, ok := sum.(*vector.Sparse[element.Real])
	require.True(t, ok, "sparse + sparse must stay sparse")
	require.Equal(t, 2, sp.NonZeroCount()) // {2:1, 3:5}; index 1 cancelled
	require.True(t, vector.Equal[element.Real](mustDense(t, 0, 0, 1, 5), sp))
}

// TestAddDimensionMismatch ensures fail-fast validation.
func TestAddDimensionMismatch(t *testing.T) {
	_, err := vector.Add[element.Real](mustDense(t, 1, 2), mustDense(t, 1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)

	_, err = vector.Sub[element.Real](mustDense(t, 1), mustDense(t, 1, 2))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestSubAndNegate checks a − b == a + (−b).
func TestSubAndNegate(t *testing.T) {
	a := mustDense(t, 5, 3)
	b := mustDense(t, 2, 7)

	diff, err := vector.Sub[element.Real](a, b)
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](mustDense(t, 3, -4), diff))

	neg, err := vector.Negate[element.Real](b)
	require.NoError(t, err)
	alt, err := vector.Add[element.Real](a, neg)
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](diff, alt))
}

// TestScaleSparseDropsZeros ensures scaling keeps the canonical form even
// when the scalar annihilates entries.
func TestScaleSparseDropsZeros(t *testing.T) {
	v := mustSparse(t, 3, map[int]element.Real{0: 2, 2: -1})

	scaled, err := vector.Scale[element.Real](v, 0)
	require.NoError(t, err)

	sp, ok := scaled.(*vector.Sparse[element.Real])
	require.True(t, ok)
	require.Equal(t, 0, sp.NonZeroCount()) // everything collapsed to zero
}

// TestDotRealAndOrder checks the numeric value and, with non-commutative
// elements, that each term multiplies a-then-b.
func TestDotRealAndOrder(t *testing.T) {
	a := mustDense(t, 1, 2, 3)
	b := mustDense(t, 4, 5, 6)

	dot, err := vector.Dot[element.Real](a, b)
	require.NoError(t, err)
	require.Equal(t, element.Real(32), dot)

	// Non-commutative pair: x×y ≠ y×x, so a wrong operand order is
	// observable.
	x := nc{0, 1, 0, 0}
	y := nc{0, 0, 1, 0}
	av, err := vector.NewDense([]nc{x})
	require.NoError(t, err)
	bv, err := vector.NewDense([]nc{y})
	require.NoError(t, err)

	got, err := vector.Dot[nc](av, bv)
	require.NoError(t, err)
	require.Equal(t, x.Times(y), got)     // a-then-b
	require.NotEqual(t, y.Times(x), got)  // the swapped product differs
	require.Equal(t, nc{1, 0, 0, 0}, got) // e12·e21 = e11
}

// TestCross checks the dimension-3 contract and a known identity.
func TestCross(t *testing.T) {
	ex := mustDense(t, 1, 0, 0)
	ey := mustDense(t, 0, 1, 0)

	cross, err := vector.Cross[element.Real](ex, ey)
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](mustDense(t, 0, 0, 1), cross)) // x̂ × ŷ = ẑ

	_, err = vector.Cross[element.Real](mustDense(t, 1, 2), ey)
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

// TestSubVector covers reorder/repeat selection and index validation.
func TestSubVector(t *testing.T) {
	v := mustDense(t, 10, 20, 30)

	sub, err := vector.SubVector[element.Real](v, []int{2, 0, 0})
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](mustDense(t, 30, 10, 10), sub))

	_, err = vector.SubVector[element.Real](v, []int{0, 3})
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)

	_, err = vector.SubVector[element.Real](v, nil)
	require.ErrorIs(t, err, vector.ErrInvalidDimensions)
}
