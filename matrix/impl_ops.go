// SPDX-License-Identifier: MIT

// Package matrix: element-wise and multiplicative kernels.
//
// Conventions in this file:
//   - Every public kernel validates first, then executes; errors are
//     wrapped once with the op tag.
//   - Kernels dispatch on the concrete variant for fast paths (sparse
//     merges, transposed-view identities) and fall back to the generic
//     At loop otherwise.
//   - Multiplication accumulates strictly left to right, a[i][k] times
//     b[k][j], so results are correct for non-commutative elements.
package matrix

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dscho/algebra/ring"
	"github.com/dscho/algebra/vector"
)

// op tags used for error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNegate    = "Negate"
	opScale     = "Scale"
	opMul       = "Mul"
	opMulVec    = "MulVec"
	opTensor    = "Tensor"
	opTrace     = "Trace"
	opDiagonal  = "Diagonal"
	opRowAt     = "RowAt"
	opColAt     = "ColAt"
	opSubMatrix = "SubMatrix"
)

// matrixErrorf wraps an underlying error with the given op tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// mustAt reads an element whose indices are already known to be in
// range. Kernels call it only after shape validation.
func mustAt[T ring.Element[T]](m Matrix[T], i, j int) T {
	val, _ := m.At(i, j)
	return val
}

// toDense materializes any matrix into flat row-major storage. A *Dense
// input is returned as is (matrices are immutable, sharing is safe).
func toDense[T ring.Element[T]](m Matrix[T]) *Dense[T] {
	if d, ok := m.(*Dense[T]); ok {
		return d
	}
	rows, cols := m.Rows(), m.Cols()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = mustAt(m, i, j)
		}
	}

	return &Dense[T]{r: rows, c: cols, data: data}
}

// addSub is the shared kernel behind Add and Sub; negate selects
// subtraction.
//
// Fast paths:
//   - a is a Transposed view: answer via (Aᵀ)±B = (A ± Bᵀ)ᵀ, keeping the
//     work in the source orientation and the result a view.
//   - both operands Sparse: merge the entry maps, dropping entries that
//     collapsed to zero, so the result stays canonical.
//
// Fallback: generic At loop into a Dense result.
func addSub[T ring.Element[T]](a, b Matrix[T], negate bool, opTag string) (Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// View identity: recurse in the source orientation. The source of a
	// view is never itself a view, so this recursion is depth one.
	if av, ok := a.(*Transposed[T]); ok {
		bt, err := Transpose(b)
		if err != nil {
			return nil, matrixErrorf(opTag, err)
		}
		inner, err := addSub(av.src, bt, negate, opTag)
		if err != nil {
			return nil, err
		}

		return Transpose(inner)
	}

	// Sparse merge keeps the result sparse and canonical.
	if as, ok := a.(*Sparse[T]); ok {
		if bs, ok := b.(*Sparse[T]); ok {
			return addSubSparse(as, bs, negate), nil
		}
	}

	// Generic path: fresh dense result.
	rows, cols := a.Rows(), a.Cols()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			bv := mustAt(b, i, j)
			if negate {
				bv = bv.Opposite()
			}
			data[i*cols+j] = mustAt(a, i, j).Plus(bv)
		}
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// addSubSparse merges two canonical sparse matrices. Shapes are already
// validated. Complexity: O(nnz(a) + nnz(b)).
func addSubSparse[T ring.Element[T]](a, b *Sparse[T], negate bool) *Sparse[T] {
	merged := make(map[Index]T, len(a.data)+len(b.data))
	for idx, val := range a.data {
		merged[idx] = val
	}
	for idx, val := range b.data {
		if negate {
			val = val.Opposite()
		}
		if cur, ok := merged[idx]; ok {
			val = cur.Plus(val)
		}
		if val.Equal(a.zero) {
			delete(merged, idx) // cancelled: keep canonical form
			continue
		}
		merged[idx] = val
	}

	return &Sparse[T]{r: a.r, c: a.c, zero: a.zero, data: merged}
}

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch (with both shapes).
// Complexity: O(r*c); O(nnz) when both operands are sparse.
func Add[T ring.Element[T]](a, b Matrix[T]) (Matrix[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub returns a − b element-wise (b's entries replaced by their
// opposites, then added). Errors and complexity as Add.
func Sub[T ring.Element[T]](a, b Matrix[T]) (Matrix[T], error) {
	return addSub(a, b, true, opSub)
}

// Negate returns the element-wise additive opposite of m.
// Views stay views; sparse stays sparse (the opposite of a non-zero
// entry is never zero, so canonical form is preserved for free).
// Complexity: O(r*c), O(nnz) for sparse, O(1) plus the source for views.
func Negate[T ring.Element[T]](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	switch v := m.(type) {
	case *Transposed[T]:
		inner, err := Negate(v.src)
		if err != nil {
			return nil, err
		}

		return Transpose(inner)
	case *Sparse[T]:
		data := make(map[Index]T, len(v.data))
		for idx, val := range v.data {
			data[idx] = val.Opposite()
		}

		return &Sparse[T]{r: v.r, c: v.c, zero: v.zero, data: data}, nil
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = mustAt(m, i, j).Opposite()
		}
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Scale multiplies every element on the RIGHT by k: out[i][j] = m[i][j] × k.
// Right-multiplication is the documented orientation; for commutative
// elements it is indistinguishable from the left.
// Sparse products that collapse to zero (zero divisors) are dropped to
// keep the result canonical. Views answer as views.
// Complexity: O(r*c), O(nnz) for sparse.
func Scale[T ring.Element[T]](m Matrix[T], k T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	switch v := m.(type) {
	case *Transposed[T]:
		inner, err := Scale(v.src, k)
		if err != nil {
			return nil, err
		}

		return Transpose(inner)
	case *Sparse[T]:
		data := make(map[Index]T, len(v.data))
		for idx, val := range v.data {
			prod := val.Times(k)
			if prod.Equal(v.zero) {
				continue // zero divisor: keep canonical form
			}
			data[idx] = prod
		}

		return &Sparse[T]{r: v.r, c: v.c, zero: v.zero, data: data}, nil
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data[i*cols+j] = mustAt(m, i, j).Times(k)
		}
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Mul returns the matrix product a × b.
//
// Cell (i,j) accumulates a[i][k] × b[k][j] strictly left to right, so
// the kernel is order-correct for non-commutative elements.
//
// Transposed operands split two ways. When BOTH operands are views the
// kernel answers through the transpose-product identity
// xᵀ × yᵀ = (y × x)ᵀ, no copy, which keeps (A×B)ᵀ == Bᵀ×Aᵀ exact even
// for non-commutative elements. A single view operand has no such
// identity and is densified first (the view's documented cost).
//
// Above the configured cell-count threshold the output's column range
// splits into disjoint blocks evaluated concurrently over the read-only
// operands; sequential and parallel paths produce identical results.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
// Complexity: O(r*n*c).
func Mul[T ring.Element[T]](a, b Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateMulShapes(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Two views: xᵀ × yᵀ = (y × x)ᵀ. Sources are never views, so the
	// recursive call takes the dense path; its shapes are valid because
	// the outer ones were.
	if av, ok := a.(*Transposed[T]); ok {
		if bv, ok := b.(*Transposed[T]); ok {
			inner, err := Mul(bv.src, av.src, opts...)
			if err != nil {
				return nil, err
			}

			return Transpose(inner)
		}
	}

	// Densify a lone view up front: one copy here beats a swapped-index
	// read per multiply-accumulate.
	left, right := toDense(a), toDense(b)
	rows, cols := left.r, right.c
	data := make([]T, rows*cols)

	o := gatherOptions(opts...)
	if o.parallelThreshold > 0 && rows*cols >= o.parallelThreshold && o.workers > 1 {
		mulParallel(left, right, data, o.workers)
	} else {
		mulBlock(left, right, data, 0, cols)
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// mulBlock fills output columns [colLo, colHi) for all rows.
// Deterministic accumulation order regardless of block boundaries.
func mulBlock[T ring.Element[T]](a, b *Dense[T], out []T, colLo, colHi int) {
	for i := 0; i < a.r; i++ {
		for j := colLo; j < colHi; j++ {
			acc := a.data[i*a.c].Times(b.data[j]) // k = 0
			for k := 1; k < a.c; k++ {
				acc = acc.Plus(a.data[i*a.c+k].Times(b.data[k*b.c+j]))
			}
			out[i*b.c+j] = acc
		}
	}
}

// mulParallel partitions the output column range into one contiguous
// block per worker. Blocks are disjoint, operands read-only, join is
// strict; the group error is always nil (blocks cannot fail).
func mulParallel[T ring.Element[T]](a, b *Dense[T], out []T, workers int) {
	cols := b.c
	if workers > cols {
		workers = cols
	}
	var g errgroup.Group
	chunk := (cols + workers - 1) / workers
	for lo := 0; lo < cols; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > cols {
			hi = cols
		}
		g.Go(func() error {
			mulBlock(a, b, out, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}

// MulVec returns the matrix-vector product m × v as a dense vector.
// Component i accumulates m[i][k] × v[k] left to right.
// Errors: ErrNilMatrix, vector.ErrNilVector, ErrDimensionMismatch when
// m.Cols != v.Dimension. Complexity: O(r*c).
func MulVec[T ring.Element[T]](m Matrix[T], v vector.Vector[T]) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if err := vector.ValidateNotNil(v); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	if m.Cols() != v.Dimension() {
		return nil, matrixErrorf(opMulVec,
			fmt.Errorf("%s × %d: %w", shapeOf(m), v.Dimension(), ErrDimensionMismatch))
	}

	d := toDense(m)
	out := make([]T, d.r)
	for i := 0; i < d.r; i++ {
		acc := d.data[i*d.c].Times(mustAtVec(v, 0))
		for k := 1; k < d.c; k++ {
			acc = acc.Plus(d.data[i*d.c+k].Times(mustAtVec(v, k)))
		}
		out[i] = acc
	}

	return vector.NewDense(out)
}

// mustAtVec mirrors mustAt for vectors after dimension validation.
func mustAtVec[T ring.Element[T]](v vector.Vector[T], i int) T {
	val, _ := v.At(i)
	return val
}

// Tensor returns the Kronecker product a ⊗ b: an (aR*bR)×(aC*bC) matrix
// whose block (i,j) is b with every entry multiplied on the RIGHT by
// a[i][j] — that is, block cell (p,q) = b[p][q] × a[i][j], preserving
// factor order for non-commutative elements.
// Errors: ErrNilMatrix. Complexity: O(aR*aC*bR*bC).
func Tensor[T ring.Element[T]](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTensor, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTensor, err)
	}

	aR, aC, bR, bC := a.Rows(), a.Cols(), b.Rows(), b.Cols()
	rows, cols := aR*bR, aC*bC
	data := make([]T, rows*cols)
	for i := 0; i < aR; i++ {
		for j := 0; j < aC; j++ {
			scalar := mustAt(a, i, j)
			for p := 0; p < bR; p++ {
				for q := 0; q < bC; q++ {
					data[(i*bR+p)*cols+(j*bC+q)] = mustAt(b, p, q).Times(scalar)
				}
			}
		}
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// Trace returns the left-to-right sum of the main diagonal.
// Errors: ErrNilMatrix, ErrDimensionMismatch when not square.
// Complexity: O(n).
func Trace[T ring.Element[T]](m Matrix[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf(opTrace, err)
	}

	acc := mustAt(m, 0, 0)
	for i := 1; i < m.Rows(); i++ {
		acc = acc.Plus(mustAt(m, i, i))
	}

	return acc, nil
}

// Diagonal returns the main diagonal as a dense vector.
// Errors: ErrNilMatrix, ErrDimensionMismatch when not square.
// Complexity: O(n).
func Diagonal[T ring.Element[T]](m Matrix[T]) (vector.Vector[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	diag := make([]T, m.Rows())
	for i := range diag {
		diag[i] = mustAt(m, i, i)
	}

	return vector.NewDense(diag)
}

// RowAt extracts row i as a vector. Table storage answers in O(1) by
// sharing the stored row (vectors are immutable); other variants copy.
// Errors: ErrNilMatrix, ErrIndexOutOfBounds. Complexity: O(c), O(1) for
// Table.
func RowAt[T ring.Element[T]](m Matrix[T], i int) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowAt, err)
	}
	if i < 0 || i >= m.Rows() {
		return nil, matrixErrorf(opRowAt,
			fmt.Errorf("row %d of %s: %w", i, shapeOf(m), ErrIndexOutOfBounds))
	}

	// Shared-row fast path.
	if t, ok := m.(*Table[T]); ok {
		return t.Row(i)
	}

	row := make([]T, m.Cols())
	for j := range row {
		row[j] = mustAt(m, i, j)
	}

	return vector.NewDense(row)
}

// ColAt extracts column j as a dense vector.
// Errors: ErrNilMatrix, ErrIndexOutOfBounds. Complexity: O(r).
func ColAt[T ring.Element[T]](m Matrix[T], j int) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColAt, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColAt,
			fmt.Errorf("column %d of %s: %w", j, shapeOf(m), ErrIndexOutOfBounds))
	}

	col := make([]T, m.Rows())
	for i := range col {
		col[i] = mustAt(m, i, j)
	}

	return vector.NewDense(col)
}

// SubMatrix extracts the selection m[rowIdxs × colIdxs] as a fresh Dense
// matrix. Indices may repeat and appear in any order; every index is
// validated BEFORE any element is copied, so failures leave no partial
// result. Errors: ErrNilMatrix, ErrInvalidDimensions on an empty
// selection, ErrIndexOutOfBounds. Complexity: O(len(rows)*len(cols)).
func SubMatrix[T ring.Element[T]](m Matrix[T], rowIdxs, colIdxs []int) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}
	if err := ValidateIndexSet(opSubMatrix, rowIdxs, m.Rows()); err != nil {
		return nil, err
	}
	if err := ValidateIndexSet(opSubMatrix, colIdxs, m.Cols()); err != nil {
		return nil, err
	}

	data := make([]T, 0, len(rowIdxs)*len(colIdxs))
	for _, i := range rowIdxs {
		for _, j := range colIdxs {
			data = append(data, mustAt(m, i, j))
		}
	}

	return &Dense[T]{r: len(rowIdxs), c: len(colIdxs), data: data}, nil
}

// Equal reports element-wise equality. Two nil matrices are equal; a nil
// and a non-nil one are not; differing shapes are not.
// Complexity: O(r*c) worst case, short-circuits on first difference.
func Equal[T ring.Element[T]](a, b Matrix[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if !mustAt(a, i, j).Equal(mustAt(b, i, j)) {
				return false
			}
		}
	}

	return true
}

// IsSquare reports whether m is non-nil with Rows == Cols.
// Complexity: O(1).
func IsSquare[T ring.Element[T]](m Matrix[T]) bool {
	return m != nil && m.Rows() == m.Cols()
}
