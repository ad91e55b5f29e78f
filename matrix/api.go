// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across
//     the package.
//   - Avoid any logic duplication — each facade delegates to the
//     canonical implementation.
//   - Keep function names explicit and intention-revealing to improve
//     discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or algebraic policy of the
//     underlying kernels; multiplicative order stays left-to-right.
//   - Neutral elements are always derived from a sample (x + (−x) and
//     x × x⁻¹), never hard-coded literals.
//   - Validation is performed in the kernels; facades only compose or
//     forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice
//     loops); Transposed views densify before any multiply.
//   - Use NewZeros/ZerosLike/IdentityLike to build matrices with
//     explicit shape and derived neutral elements.
//   - Reuse one Decompose result across Solve/Inverse/Determinant when
//     factoring the same matrix repeatedly.

package matrix

import (
	"github.com/dscho/algebra/ring"
)

// ---------- Constructors & Utilities ----------

// NewZeros returns a rows×cols matrix filled with the additive identity
// derived from sample. Complexity: O(r*c).
func NewZeros[T ring.Element[T]](rows, cols int, sample T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	zero := ring.Zero(sample)
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// CloneMatrix returns a structural clone of m (a Transposed view
// materializes), or nil for a nil input. Thin wrapper over Matrix.Clone
// for API discoverability. Complexity: O(r*c).
func CloneMatrix[T ring.Element[T]](m Matrix[T]) Matrix[T] {
	if m == nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with the same shape as m, using
// m[0][0] as the sample element. Complexity: O(r*c).
//
// AI-Hints: Useful for staging buffers or accumulating into fresh
// containers.
func ZerosLike[T ring.Element[T]](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewZeros(m.Rows(), m.Cols(), mustAt(m, 0, 0))
}

// IdentityLike returns I with dimension = Rows(m); requires square
// shape and an invertible m[0][0] to derive the unit from.
// Complexity: O(n²).
func IdentityLike[T ring.Element[T]](m Matrix[T]) (Matrix[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.Rows(), mustAt(m, 0, 0))
}

// ---------- Operation aliases ----------

// Sum is an intention-revealing alias of Add.
func Sum[T ring.Element[T]](a, b Matrix[T]) (Matrix[T], error) { return Add(a, b) }

// Diff is an intention-revealing alias of Sub.
func Diff[T ring.Element[T]](a, b Matrix[T]) (Matrix[T], error) { return Sub(a, b) }

// Opposite is an intention-revealing alias of Negate.
func Opposite[T ring.Element[T]](m Matrix[T]) (Matrix[T], error) { return Negate(m) }

// ScaleBy is an intention-revealing alias of Scale (right-multiply by k).
func ScaleBy[T ring.Element[T]](m Matrix[T], k T) (Matrix[T], error) { return Scale(m, k) }

// Product is an intention-revealing alias of Mul.
func Product[T ring.Element[T]](a, b Matrix[T], opts ...Option[T]) (Matrix[T], error) {
	return Mul(a, b, opts...)
}

// Det is an intention-revealing alias of Determinant.
func Det[T ring.Element[T]](m Matrix[T], opts ...Option[T]) (T, error) {
	return Determinant(m, opts...)
}
