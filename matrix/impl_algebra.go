// SPDX-License-Identifier: MIT

// Package matrix: high-level algebra facade built on the LU engine.
//
// Purpose:
//   - One-call forms of the decomposition-backed operations
//     (Determinant, Inverse, Solve), plus powers, division, the
//     pseudo-inverse, cofactors, the adjoint and vectorization.
//   - Each call decomposes afresh; callers that reuse a factorization
//     should hold the LUDecomposition themselves.
package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/dscho/algebra/ring"
	"github.com/dscho/algebra/vector"
)

// Determinant computes det(m) through LU decomposition.
//
// A singular input is NOT an error here: ErrSingular from the engine
// maps to the ring's additive identity, because a vanishing determinant
// is the answer, not a failure. Other errors (nil, non-square)
// propagate. Complexity: O(n³).
func Determinant[T ring.Element[T]](m Matrix[T], opts ...Option[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf("Determinant", err)
	}

	d, err := Decompose(m, opts...)
	if err != nil {
		if errors.Is(err, ErrSingular) {
			return ring.Zero(mustAt(m, 0, 0)), nil
		}

		return zero, matrixErrorf("Determinant", err)
	}

	return d.Determinant(), nil
}

// Inverse computes m⁻¹ through LU decomposition. Unlike Determinant,
// singularity here IS a failure: ErrSingular propagates.
// Complexity: O(n³).
func Inverse[T ring.Element[T]](m Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	d, err := Decompose(m, opts...)
	if err != nil {
		return nil, matrixErrorf("Inverse", err)
	}

	return d.Inverse()
}

// Solve returns X with a·X = b by decomposing a once and substituting
// per column of b. Errors: ErrNilMatrix, ErrDimensionMismatch,
// ErrSingular. Complexity: O(n³ + n²*b.Cols()).
func Solve[T ring.Element[T]](a, b Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return nil, matrixErrorf("Solve", err)
	}

	return d.Solve(b)
}

// SolveVec solves a·x = b for a single right-hand-side vector.
func SolveVec[T ring.Element[T]](a Matrix[T], b vector.Vector[T], opts ...Option[T]) (vector.Vector[T], error) {
	d, err := Decompose(a, opts...)
	if err != nil {
		return nil, matrixErrorf("SolveVec", err)
	}

	return d.SolveVec(b)
}

// Pow raises a square matrix to an integer power by binary
// exponentiation, multiplying the accumulator only on set bits of the
// exponent.
//
// Pow(m, 0) is m × m⁻¹ (the identity derived from m itself, so a
// singular m fails with ErrSingular rather than inventing a unit).
// Pow(m, k) for k < 0 is Pow(m, −k)⁻¹.
// Complexity: O(n³ log|exp|).
func Pow[T ring.Element[T]](m Matrix[T], exp int, opts ...Option[T]) (Matrix[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Pow", err)
	}

	if exp == 0 {
		inv, err := Inverse(m, opts...)
		if err != nil {
			return nil, matrixErrorf("Pow", err)
		}

		return Mul(m, inv, opts...)
	}
	if exp < 0 {
		// −math.MinInt overflows back to itself; peel one factor off so
		// the negation stays in range.
		if exp == math.MinInt {
			p, err := Pow(m, math.MaxInt, opts...)
			if err != nil {
				return nil, err
			}
			p, err = Mul(p, m, opts...)
			if err != nil {
				return nil, matrixErrorf("Pow", err)
			}

			return Inverse(p, opts...)
		}
		p, err := Pow(m, -exp, opts...)
		if err != nil {
			return nil, err
		}

		return Inverse(p, opts...)
	}

	// Square-and-multiply; powers of one matrix commute, so the
	// accumulation side is immaterial and kept left for consistency.
	var result Matrix[T]
	base := m
	for exp > 0 {
		if exp&1 == 1 {
			if result == nil {
				result = base
			} else {
				prod, err := Mul(result, base, opts...)
				if err != nil {
					return nil, matrixErrorf("Pow", err)
				}
				result = prod
			}
		}
		exp >>= 1
		if exp > 0 {
			sq, err := Mul(base, base, opts...)
			if err != nil {
				return nil, matrixErrorf("Pow", err)
			}
			base = sq
		}
	}

	return result, nil
}

// Divide returns a × b⁻¹ (right division; order matters for
// non-commutative elements). Errors: ErrNilMatrix,
// ErrDimensionMismatch, ErrSingular. Complexity: O(n³).
func Divide[T ring.Element[T]](a, b Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf("Divide", err)
	}
	inv, err := Inverse(b, opts...)
	if err != nil {
		return nil, matrixErrorf("Divide", err)
	}

	return Mul(a, inv, opts...)
}

// PseudoInverse returns m⁻¹ for square m and the left Moore–Penrose
// pseudo-inverse (mᵀ·m)⁻¹·mᵀ otherwise. The Gram matrix mᵀ·m must be
// invertible (columns independent), else ErrSingular.
// Complexity: O(r*c² + c³).
func PseudoInverse[T ring.Element[T]](m Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("PseudoInverse", err)
	}
	if m.Rows() == m.Cols() {
		return Inverse(m, opts...)
	}

	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("PseudoInverse", err)
	}
	gram, err := Mul(mt, m, opts...)
	if err != nil {
		return nil, matrixErrorf("PseudoInverse", err)
	}
	gramInv, err := Inverse(gram, opts...)
	if err != nil {
		return nil, matrixErrorf("PseudoInverse", err)
	}

	return Mul(gramInv, mt, opts...)
}

// Cofactor returns the determinant of the minor of m at (i, j) — m with
// row i and column j removed. The (−1)^(i+j) sign is applied by
// Adjoint, not here.
// Errors: ErrNilMatrix; ErrDimensionMismatch when m is not square or
// smaller than 2×2; ErrIndexOutOfBounds. Complexity: O(n³).
func Cofactor[T ring.Element[T]](m Matrix[T], i, j int, opts ...Option[T]) (T, error) {
	var zero T
	if err := ValidateSquareNonNil(m); err != nil {
		return zero, matrixErrorf("Cofactor", err)
	}
	n := m.Rows()
	if n < 2 {
		return zero, matrixErrorf("Cofactor",
			fmt.Errorf("%s has no minors: %w", shapeOf(m), ErrDimensionMismatch))
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return zero, matrixErrorf("Cofactor",
			fmt.Errorf("(%d,%d) of %s: %w", i, j, shapeOf(m), ErrIndexOutOfBounds))
	}

	minor, err := SubMatrix(m, exclude(n, i), exclude(n, j))
	if err != nil {
		return zero, matrixErrorf("Cofactor", err)
	}

	return Determinant(minor, opts...)
}

// exclude returns 0..n-1 with skip removed.
func exclude(n, skip int) []int {
	out := make([]int, 0, n-1)
	for k := 0; k < n; k++ {
		if k != skip {
			out = append(out, k)
		}
	}

	return out
}

// Adjoint returns the adjugate: the matrix of minors with (−1)^(i+j)
// applied (via Opposite, no literal −1), transposed. For invertible m,
// m × adj(m) = det(m) × I.
// Errors: ErrNilMatrix; ErrDimensionMismatch when not square or smaller
// than 2×2. Complexity: O(n⁵).
func Adjoint[T ring.Element[T]](m Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("Adjoint", err)
	}
	n := m.Rows()
	if n < 2 {
		return nil, matrixErrorf("Adjoint",
			fmt.Errorf("%s has no minors: %w", shapeOf(m), ErrDimensionMismatch))
	}

	data := make([]T, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			c, err := Cofactor(m, i, j, opts...)
			if err != nil {
				return nil, matrixErrorf("Adjoint", err)
			}
			if (i+j)%2 == 1 {
				c = c.Opposite()
			}
			data[j*n+i] = c // transposed placement
		}
	}

	return &Dense[T]{r: n, c: n, data: data}, nil
}

// Vectorization flattens m column-major into a dense vector: column 0
// top to bottom, then column 1, and so on.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Vectorization[T ring.Element[T]](m Matrix[T]) (vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("Vectorization", err)
	}

	rows, cols := m.Rows(), m.Cols()
	data := make([]T, 0, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			data = append(data, mustAt(m, i, j))
		}
	}

	return vector.NewDense(data)
}

// NewIdentity builds the n×n identity from an invertible sample
// element: the unit is sample × sample⁻¹ and the zero is
// sample + (−sample), never literals.
// Errors: ErrInvalidDimensions when n <= 0; ErrBadConfiguration when
// the sample has no inverse. Complexity: O(n²).
func NewIdentity[T ring.Element[T]](n int, sample T) (Matrix[T], error) {
	if n <= 0 {
		return nil, matrixErrorf("NewIdentity", ErrInvalidDimensions)
	}
	one, ok := ring.One(sample)
	if !ok {
		return nil, matrixErrorf("NewIdentity",
			fmt.Errorf("sample has no inverse: %w", ErrBadConfiguration))
	}
	zero := ring.Zero(sample)

	data := make([]T, n*n)
	for i := range data {
		data[i] = zero
	}
	for k := 0; k < n; k++ {
		data[k*n+k] = one
	}

	return &Dense[T]{r: n, c: n, data: data}, nil
}
