// Package matrix_test exercises the element-wise and multiplicative
// kernels: shape validation, sparse canonical merges, multiplication
// order over non-commutative elements and the parallel path.
package matrix_test

import (
	"testing"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/matrix"
	"github.com/dscho/algebra/vector"
	"github.com/stretchr/testify/require"
)

func TestAddShapeMismatch(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}})
	b := mustReal(t, [][]float64{{1}, {2}})

	_, err := matrix.Add[element.Real](a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add[element.Real](nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAddAndSubDense(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := mustReal(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add[element.Real](a, b)
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub[element.Real](b, a)
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{9, 18}, {27, 36}}, diff)
}

func TestAddSparseSparseCanonical(t *testing.T) {
	a := mustSparseReal(t, 2, 2, map[matrix.Index]element.Real{
		{Row: 0, Col: 0}: 2,
		{Row: 1, Col: 1}: 5,
	})
	b := mustSparseReal(t, 2, 2, map[matrix.Index]element.Real{
		{Row: 0, Col: 0}: -2, // cancels
		{Row: 0, Col: 1}: 1,
	})

	sum, err := matrix.Add[element.Real](a, b)
	require.NoError(t, err)

	sp, ok := sum.(*matrix.Sparse[element.Real])
	require.True(t, ok, "sparse + sparse must stay sparse")
	require.Equal(t, 2, sp.NonZeroCount())
	requireRealEqual(t, [][]float64{{0, 1}, {0, 5}}, sp)
}

func TestNegate(t *testing.T) {
	m := mustReal(t, [][]float64{{1, -2}, {0, 3}})
	neg, err := matrix.Negate[element.Real](m)
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{-1, 2}, {0, -3}}, neg)
}

func TestScaleSparseDropsCollapsed(t *testing.T) {
	m := mustSparseReal(t, 2, 2, map[matrix.Index]element.Real{
		{Row: 0, Col: 0}: 3,
		{Row: 1, Col: 0}: 4,
	})
	scaled, err := matrix.Scale[element.Real](m, 0)
	require.NoError(t, err)

	sp, ok := scaled.(*matrix.Sparse[element.Real])
	require.True(t, ok)
	require.Equal(t, 0, sp.NonZeroCount()) // everything collapsed to zero
}

// TestScaleRightMultiplies pins the documented orientation: out = m × k,
// observable only with a non-commutative element.
func TestScaleRightMultiplies(t *testing.T) {
	p := nc{1, 1, 0, 1}
	q := nc{1, 0, 1, 1}
	m := mustNC(t, [][]nc{{p}})

	scaled, err := matrix.Scale(matrix.Matrix[nc](m), q)
	require.NoError(t, err)

	got, err := scaled.At(0, 0)
	require.NoError(t, err)
	require.True(t, got.Equal(p.Times(q)))
	require.False(t, got.Equal(q.Times(p)), "p and q must not commute for this test")
}

func TestMulShapesAndValues(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2×3
	b := mustReal(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	_, err := matrix.Mul[element.Real](a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	prod, err := matrix.Mul[element.Real](a, b)
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{58, 64}, {139, 154}}, prod)
}

// TestMulCellsMatchDefinition re-expands every product cell by hand,
// a[i][0]×b[0][j] + a[i][1]×b[1][j], with operands that do not commute.
func TestMulCellsMatchDefinition(t *testing.T) {
	p, q, r, s := nc{1, 1, 0, 1}, nc{1, 0, 1, 1}, nc{0, 1, 1, 0}, nc{1, 2, 0, 1}
	a := mustNC(t, [][]nc{{p, q}, {r, s}})
	b := mustNC(t, [][]nc{{s, r}, {q, p}})

	ab, err := matrix.Mul[nc](a, b)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			ai0, err := a.At(i, 0)
			require.NoError(t, err)
			ai1, err := a.At(i, 1)
			require.NoError(t, err)
			b0j, err := b.At(0, j)
			require.NoError(t, err)
			b1j, err := b.At(1, j)
			require.NoError(t, err)

			want := ai0.Times(b0j).Plus(ai1.Times(b1j))
			got, err := ab.At(i, j)
			require.NoError(t, err)
			require.True(t, got.Equal(want), "cell (%d,%d)", i, j)
		}
	}
}

// TestMulOrderNonCommutative locks the accumulation order
// a[i][k] × b[k][j] with operands that do not commute.
func TestMulOrderNonCommutative(t *testing.T) {
	p := nc{1, 1, 0, 1}
	q := nc{1, 0, 1, 1}
	a := mustNC(t, [][]nc{{p}})
	b := mustNC(t, [][]nc{{q}})

	prod, err := matrix.Mul[nc](a, b)
	require.NoError(t, err)
	got, err := prod.At(0, 0)
	require.NoError(t, err)
	require.True(t, got.Equal(p.Times(q)))
	require.False(t, got.Equal(q.Times(p)))
}

// TestMulParallelMatchesSequential forces the parallel path with a tiny
// threshold and compares against the sequential result.
func TestMulParallelMatchesSequential(t *testing.T) {
	const n = 12
	elems := make([]element.Real, n*n)
	for i := range elems {
		elems[i] = element.Real(i%7) - 3 // deterministic fill
	}
	a, err := matrix.NewDense(n, n, elems)
	require.NoError(t, err)
	b, err := matrix.NewDense(n, n, elems)
	require.NoError(t, err)

	seq, err := matrix.Mul[element.Real](a, b, matrix.WithParallelThreshold[element.Real](0))
	require.NoError(t, err)
	par, err := matrix.Mul[element.Real](a, b,
		matrix.WithParallelThreshold[element.Real](1),
		matrix.WithWorkers[element.Real](4))
	require.NoError(t, err)

	require.True(t, matrix.Equal[element.Real](seq, par))
}

// TestAddAssociativity covers (A+B)+C == A+(B+C), over Real and over
// the non-commutative element (whose addition is plain integer
// component addition, so both sides are exact).
func TestAddAssociativity(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := mustReal(t, [][]float64{{5, -6}, {7, 8}})
	c := mustReal(t, [][]float64{{-9, 10}, {11, -12}})

	ab, err := matrix.Add[element.Real](a, b)
	require.NoError(t, err)
	left, err := matrix.Add(ab, matrix.Matrix[element.Real](c))
	require.NoError(t, err)
	bc, err := matrix.Add[element.Real](b, c)
	require.NoError(t, err)
	right, err := matrix.Add(matrix.Matrix[element.Real](a), bc)
	require.NoError(t, err)
	require.True(t, matrix.Equal[element.Real](left, right))

	p, q, r := nc{1, 1, 0, 1}, nc{1, 0, 1, 1}, nc{0, 1, 1, 0}
	na := mustNC(t, [][]nc{{p, q}})
	nb := mustNC(t, [][]nc{{q, r}})
	ncm := mustNC(t, [][]nc{{r, p}})

	nab, err := matrix.Add[nc](na, nb)
	require.NoError(t, err)
	nleft, err := matrix.Add(nab, matrix.Matrix[nc](ncm))
	require.NoError(t, err)
	nbc, err := matrix.Add[nc](nb, ncm)
	require.NoError(t, err)
	nright, err := matrix.Add(matrix.Matrix[nc](na), nbc)
	require.NoError(t, err)
	require.True(t, matrix.Equal[nc](nleft, nright))
}

// TestMulTransposeProductIdentity covers (A×B)ᵀ == Bᵀ×Aᵀ. Over the
// non-commutative element the two-view product goes through the
// reversal identity, so the equality is exact; over Real it also holds
// numerically for materialized (dense) transposes.
func TestMulTransposeProductIdentity(t *testing.T) {
	// Non-commutative, via views.
	p, q, r, s := nc{1, 1, 0, 1}, nc{1, 0, 1, 1}, nc{0, 1, 1, 0}, nc{1, 2, 0, 1}
	a := mustNC(t, [][]nc{{p, q}, {r, s}})
	b := mustNC(t, [][]nc{{s, r}, {q, p}})

	ab, err := matrix.Mul[nc](a, b)
	require.NoError(t, err)
	abT, err := matrix.Transpose(ab)
	require.NoError(t, err)

	aT, err := matrix.Transpose(matrix.Matrix[nc](a))
	require.NoError(t, err)
	bT, err := matrix.Transpose(matrix.Matrix[nc](b))
	require.NoError(t, err)
	btat, err := matrix.Mul(bT, aT)
	require.NoError(t, err)
	require.True(t, matrix.Equal(abT, btat))

	// Commutative, via dense materialized transposes (rectangular).
	ra := mustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rb := mustReal(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	rab, err := matrix.Mul[element.Real](ra, rb)
	require.NoError(t, err)
	rabT, err := matrix.Transpose(rab)
	require.NoError(t, err)

	raT, err := matrix.Transpose(matrix.Matrix[element.Real](ra))
	require.NoError(t, err)
	rbT, err := matrix.Transpose(matrix.Matrix[element.Real](rb))
	require.NoError(t, err)
	prod, err := matrix.Mul(rbT.Clone(), raT.Clone()) // dense path
	require.NoError(t, err)
	require.True(t, matrix.Equal(rabT, prod))
	requireRealEqual(t, [][]float64{{58, 139}, {64, 154}}, prod)
}

func TestMulDensifiesViews(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	v, err := matrix.Transpose[element.Real](a) // [[1,3],[2,4]]
	require.NoError(t, err)

	prod, err := matrix.Mul(v, matrix.Matrix[element.Real](a))
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{10, 14}, {14, 20}}, prod)
}

func TestMulVec(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	v, err := vector.NewReal([]float64{5, 6})
	require.NoError(t, err)

	got, err := matrix.MulVec[element.Real](m, v)
	require.NoError(t, err)
	want, err := vector.NewReal([]float64{17, 39})
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](want, got))

	short, err := vector.NewReal([]float64{1})
	require.NoError(t, err)
	_, err = matrix.MulVec[element.Real](m, short)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTensorScalarTimesIdentity reproduces the canonical case of a 1×1
// matrix [2] tensored with I₂ yielding 2·I₂.
func TestTensorScalarTimesIdentity(t *testing.T) {
	two := mustReal(t, [][]float64{{2}})
	eye := mustReal(t, [][]float64{{1, 0}, {0, 1}})

	prod, err := matrix.Tensor[element.Real](two, eye)
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{2, 0}, {0, 2}}, prod)
}

func TestTensorBlockLayout(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}})
	b := mustReal(t, [][]float64{{0, 5}, {6, 7}})

	prod, err := matrix.Tensor[element.Real](a, b)
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{
		{0, 5, 0, 10},
		{6, 7, 12, 14},
	}, prod)
}

// TestTensorOrderNonCommutative pins the block cell product b[p][q] × a[i][j].
func TestTensorOrderNonCommutative(t *testing.T) {
	p := nc{1, 1, 0, 1}
	q := nc{1, 0, 1, 1}
	a := mustNC(t, [][]nc{{p}})
	b := mustNC(t, [][]nc{{q}})

	prod, err := matrix.Tensor[nc](a, b)
	require.NoError(t, err)
	got, err := prod.At(0, 0)
	require.NoError(t, err)
	require.True(t, got.Equal(q.Times(p)))
}

func TestTraceAndDiagonal(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 9}, {9, 5}})

	tr, err := matrix.Trace[element.Real](m)
	require.NoError(t, err)
	require.True(t, tr.Equal(element.Real(6)))

	diag, err := matrix.Diagonal[element.Real](m)
	require.NoError(t, err)
	want, err := vector.NewReal([]float64{1, 5})
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](want, diag))

	rect := mustReal(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Trace[element.Real](rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRowAtAndColAt(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	row, err := matrix.RowAt[element.Real](m, 1)
	require.NoError(t, err)
	wantRow, err := vector.NewReal([]float64{4, 5, 6})
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](wantRow, row))

	col, err := matrix.ColAt[element.Real](m, 2)
	require.NoError(t, err)
	wantCol, err := vector.NewReal([]float64{3, 6})
	require.NoError(t, err)
	require.True(t, vector.Equal[element.Real](wantCol, col))

	_, err = matrix.RowAt[element.Real](m, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = matrix.ColAt[element.Real](m, -1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestSubMatrixReorderAndRepeat(t *testing.T) {
	m := mustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	sub, err := matrix.SubMatrix[element.Real](m, []int{2, 0, 0}, []int{1, 1})
	require.NoError(t, err)
	requireRealEqual(t, [][]float64{{8, 8}, {2, 2}, {2, 2}}, sub)

	_, err = matrix.SubMatrix[element.Real](m, []int{0, 3}, []int{0})
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = matrix.SubMatrix[element.Real](m, nil, []int{0})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestEqualAndIsSquare(t *testing.T) {
	a := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	b := mustReal(t, [][]float64{{1, 2}, {3, 4}})
	c := mustReal(t, [][]float64{{1, 2}})

	require.True(t, matrix.Equal[element.Real](a, b))
	require.False(t, matrix.Equal[element.Real](a, c))
	require.True(t, matrix.Equal[element.Real](nil, nil))
	require.False(t, matrix.Equal[element.Real](a, nil))

	require.True(t, matrix.IsSquare[element.Real](a))
	require.False(t, matrix.IsSquare[element.Real](c))
	require.False(t, matrix.IsSquare[element.Real](nil))
}
