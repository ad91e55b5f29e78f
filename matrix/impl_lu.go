// SPDX-License-Identifier: MIT

// Package matrix: LU decomposition engine (Doolittle, partial pivoting).
//
// Purpose:
//   - Factor a square matrix as P·A = L·U with L unit lower triangular
//     and U upper triangular, tracking the row permutation and its swap
//     parity.
//   - Stay correct over non-commutative rings: every update multiplies
//     in a fixed documented order and divisions are expressed as
//     left-applied inverses, never as a "divide".
//
// Determinism & Performance:
//   - Pivot ties resolve first-wins, so the factorization is fully
//     deterministic for a given comparator.
//   - Decompose is O(n³); the decomposition is immutable afterwards and
//     reusable across any number of Solve / Inverse / Determinant calls.
package matrix

import (
	"fmt"

	"github.com/dscho/algebra/ring"
	"github.com/dscho/algebra/vector"
)

// LUDecomposition is the immutable result of Decompose: a merged L/U
// buffer (L's unit diagonal implicit), the pivot permutation and the
// swap-parity counter.
type LUDecomposition[T ring.Element[T]] struct {
	lu    *Dense[T] // strictly-lower part is L, diagonal and above is U
	piv   []int     // row i of the buffer holds source row piv[i]
	swaps int       // number of row exchanges performed
}

// Decompose factors m via Doolittle elimination with partial pivoting.
//
// Stage 1 (Validate): m non-nil and square, else ErrDimensionMismatch.
// Stage 2 (Execute), per column k:
//   - pick the best pivot row at or below k using the configured
//     comparator (ring.Compare unless overridden); a strictly better
//     candidate replaces the current best, so ties keep the first row;
//   - swap rows when the winner is not row k, counting the exchange;
//   - fail with ErrSingular when the pivot has no inverse;
//   - below the pivot: buffer[i][k] ×= pivot⁻¹ (the L entry), then
//     buffer[i][j] += −(buffer[i][k] × buffer[k][j]) for j > k.
//
// A nil comparator (WithoutPivoting / WithPivotComparator(nil)) disables
// row exchanges entirely; a zero leading minor then surfaces as
// ErrSingular even when exchanges could have rescued it.
//
// Fail-fast: on error nothing is returned, no partial factorization.
// Complexity: O(n³) time, O(n²) memory.
func Decompose[T ring.Element[T]](m Matrix[T], opts ...Option[T]) (*LUDecomposition[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Decompose", err)
	}

	n := m.Rows()
	src := toDense(m)
	buf := make([]T, len(src.data))
	copy(buf, src.data)

	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}
	swaps := 0
	cmp := gatherOptions(opts...).Pivot()

	for k := 0; k < n; k++ {
		if cmp != nil {
			best := k
			for r := k + 1; r < n; r++ {
				if cmp(buf[r*n+k], buf[best*n+k]) > 0 { // strict: ties first-wins
					best = r
				}
			}
			if best != k {
				for j := 0; j < n; j++ {
					buf[k*n+j], buf[best*n+j] = buf[best*n+j], buf[k*n+j]
				}
				piv[k], piv[best] = piv[best], piv[k]
				swaps++
			}
		}

		invPivot, ok := buf[k*n+k].Inverse()
		if !ok {
			return nil, matrixErrorf("Decompose",
				fmt.Errorf("column %d: %w", k, ErrSingular))
		}

		for i := k + 1; i < n; i++ {
			// L entry first; the elimination below reuses it.
			buf[i*n+k] = buf[i*n+k].Times(invPivot)
			for j := k + 1; j < n; j++ {
				buf[i*n+j] = buf[i*n+j].Plus(buf[i*n+k].Times(buf[k*n+j]).Opposite())
			}
		}
	}

	return &LUDecomposition[T]{
		lu:    &Dense[T]{r: n, c: n, data: buf},
		piv:   piv,
		swaps: swaps,
	}, nil
}

// order returns the factored dimension. Complexity: O(1).
func (d *LUDecomposition[T]) order() int { return d.lu.r }

// at reads the merged buffer without bounds checks (indices are internal).
func (d *LUDecomposition[T]) at(i, j int) T { return d.lu.data[i*d.lu.c+j] }

// Determinant returns det(A): the left-to-right product of U's diagonal,
// negated (Opposite) when the swap count is odd.
// Complexity: O(n).
func (d *LUDecomposition[T]) Determinant() T {
	n := d.order()
	det := d.at(0, 0)
	for k := 1; k < n; k++ {
		det = det.Times(d.at(k, k))
	}
	if d.swaps%2 == 1 {
		det = det.Opposite()
	}

	return det
}

// Solve returns X with A·X = B, one substitution pass per column of B.
//
// B's rows are first permuted by the pivot array, then forward
// substitution runs against L (implicit unit diagonal) and backward
// substitution against U, left-applying U[i][i]⁻¹ to each residual so
// multiplicative order is preserved.
//
// Errors: ErrNilMatrix; ErrDimensionMismatch when B.Rows() != n.
// Complexity: O(n² * B.Cols()).
func (d *LUDecomposition[T]) Solve(b Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("Solve", err)
	}
	n := d.order()
	if b.Rows() != n {
		return nil, matrixErrorf("Solve",
			fmt.Errorf("%dx%d lhs vs %s rhs: %w", n, n, shapeOf(b), ErrDimensionMismatch))
	}

	cols := b.Cols()
	x := make([]T, n*cols)
	for i := 0; i < n; i++ { // permuted seed: row piv[i] of B
		for j := 0; j < cols; j++ {
			x[i*cols+j] = mustAt(b, d.piv[i], j)
		}
	}

	// Forward: L·Y = P·B, unit diagonal implicit.
	for i := 1; i < n; i++ {
		for j := 0; j < cols; j++ {
			acc := x[i*cols+j]
			for k := 0; k < i; k++ {
				acc = acc.Plus(d.at(i, k).Times(x[k*cols+j]).Opposite())
			}
			x[i*cols+j] = acc
		}
	}

	// Backward: U·X = Y, inverse left-applied to the residual.
	for i := n - 1; i >= 0; i-- {
		inv, ok := d.at(i, i).Inverse()
		if !ok {
			return nil, matrixErrorf("Solve",
				fmt.Errorf("diagonal %d: %w", i, ErrSingular))
		}
		for j := 0; j < cols; j++ {
			acc := x[i*cols+j]
			for k := i + 1; k < n; k++ {
				acc = acc.Plus(d.at(i, k).Times(x[k*cols+j]).Opposite())
			}
			x[i*cols+j] = inv.Times(acc)
		}
	}

	return &Dense[T]{r: n, c: cols, data: x}, nil
}

// SolveVec solves A·x = b for a single right-hand-side vector.
// Errors: vector.ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n²).
func (d *LUDecomposition[T]) SolveVec(b vector.Vector[T]) (vector.Vector[T], error) {
	if err := vector.ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("SolveVec", err)
	}
	n := d.order()
	if b.Dimension() != n {
		return nil, matrixErrorf("SolveVec",
			fmt.Errorf("%dx%d lhs vs dimension %d rhs: %w", n, n, b.Dimension(), ErrDimensionMismatch))
	}

	col := make([]T, n)
	for i := range col {
		col[i] = mustAtVec(b, i)
	}
	rhs := &Dense[T]{r: n, c: 1, data: col}
	x, err := d.Solve(rhs)
	if err != nil {
		return nil, err
	}

	out := make([]T, n)
	for i := range out {
		out[i] = mustAt(x, i, 0)
	}

	return vector.NewDense(out)
}

// Inverse returns A⁻¹ from the factorization: P·A = L·U gives
// A⁻¹ = U⁻¹ · L⁻¹ · P.
//
// Step 1 inverts U columnwise by back-substitution (R := U⁻¹ remains
// upper triangular). Step 2 solves X·L = R in place, descending over
// columns: X[i][j] = R[i][j] − Σ_{k>j} X[i][k] × L[k][j]. Step 3
// applies P by scattering column j into column piv[j] of the result.
// Complexity: O(n³).
func (d *LUDecomposition[T]) Inverse() (Matrix[T], error) {
	n := d.order()
	zero := ring.Zero(d.at(0, 0))
	one, ok := ring.One(d.at(0, 0))
	if !ok {
		// The diagonal was verified invertible during Decompose.
		return nil, matrixErrorf("Inverse", fmt.Errorf("diagonal 0: %w", ErrSingular))
	}

	// Step 1: R = U⁻¹, columnwise back-substitution on U·R = I.
	r := make([]T, n*n)
	for i := range r {
		r[i] = zero
	}
	for j := 0; j < n; j++ {
		for i := j; i >= 0; i-- {
			acc := zero
			if i == j {
				acc = one
			}
			for k := i + 1; k <= j; k++ {
				acc = acc.Plus(d.at(i, k).Times(r[k*n+j]).Opposite())
			}
			inv, ok := d.at(i, i).Inverse()
			if !ok {
				return nil, matrixErrorf("Inverse",
					fmt.Errorf("diagonal %d: %w", i, ErrSingular))
			}
			r[i*n+j] = inv.Times(acc)
		}
	}

	// Step 2: solve X·L = R in place, columns descending. L's unit
	// diagonal makes each column explicit once later columns are known.
	for j := n - 2; j >= 0; j-- {
		for i := 0; i < n; i++ {
			acc := r[i*n+j]
			for k := j + 1; k < n; k++ {
				acc = acc.Plus(r[i*n+k].Times(d.at(k, j)).Opposite())
			}
			r[i*n+j] = acc
		}
	}

	// Step 3: apply the permutation, column j lands in column piv[j].
	out := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i*n+d.piv[j]] = r[i*n+j]
		}
	}

	return &Dense[T]{r: n, c: n, data: out}, nil
}

// Lower reconstructs L: the strictly-lower buffer entries under a unit
// diagonal derived from the factorization (no literal constants).
// Complexity: O(n²).
func (d *LUDecomposition[T]) Lower() Matrix[T] {
	n := d.order()
	zero := ring.Zero(d.at(0, 0))
	one, _ := ring.One(d.at(0, 0)) // diagonal verified invertible in Decompose

	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i > j:
				data[i*n+j] = d.at(i, j)
			case i == j:
				data[i*n+j] = one
			default:
				data[i*n+j] = zero
			}
		}
	}

	return &Dense[T]{r: n, c: n, data: data}
}

// Upper reconstructs U: the diagonal-and-above buffer entries over
// zeros. Complexity: O(n²).
func (d *LUDecomposition[T]) Upper() Matrix[T] {
	n := d.order()
	zero := ring.Zero(d.at(0, 0))

	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i <= j {
				data[i*n+j] = d.at(i, j)
			} else {
				data[i*n+j] = zero
			}
		}
	}

	return &Dense[T]{r: n, c: n, data: data}
}

// Permutation reconstructs P with P[k][piv[k]] derived one, so that
// P·A = L·U. Complexity: O(n²).
func (d *LUDecomposition[T]) Permutation() Matrix[T] {
	n := d.order()
	zero := ring.Zero(d.at(0, 0))
	one, _ := ring.One(d.at(0, 0))

	data := make([]T, n*n)
	for i := range data {
		data[i] = zero
	}
	for k := 0; k < n; k++ {
		data[k*n+d.piv[k]] = one
	}

	return &Dense[T]{r: n, c: n, data: data}
}

// Pivots returns a copy of the pivot permutation: buffer row i holds
// source row Pivots()[i]. Complexity: O(n).
func (d *LUDecomposition[T]) Pivots() []int {
	out := make([]int, len(d.piv))
	copy(out, d.piv)

	return out
}

// Swaps returns the number of row exchanges performed. Complexity: O(1).
func (d *LUDecomposition[T]) Swaps() int { return d.swaps }

// PackedLU returns a copy of the merged L/U buffer (L's unit diagonal
// implicit). Complexity: O(n²).
func (d *LUDecomposition[T]) PackedLU() Matrix[T] { return d.lu.Clone() }
