// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks, so kernels stay minimal and guards never diverge.
//   - Return plain sentinel errors wrapped with the conflicting shapes,
//     so call sites only add their op tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocation-free on success.

package matrix

import (
	"fmt"

	"github.com/dscho/algebra/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	// Consistent error tagging for all validation failures.
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf renders a matrix shape for error context.
func shapeOf[T ring.Element[T]](m Matrix[T]) string {
	return fmt.Sprintf("%dx%d", m.Rows(), m.Cols())
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil[T ring.Element[T]](m Matrix[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal shape.
// Assumes both are non-nil (caller must ensure). The wrapped message
// carries both conflicting shapes. Complexity: O(1).
func ValidateSameShape[T ring.Element[T]](a, b Matrix[T]) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%s vs %s: %w", shapeOf(a), shapeOf(b), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Non-square
// inputs report the unified ErrDimensionMismatch with both sizes.
// Assumes m is non-nil. Complexity: O(1).
func ValidateSquare[T ring.Element[T]](m Matrix[T]) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%s: %w", shapeOf(m), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameShape[T ring.Element[T]](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquareNonNil[T ring.Element[T]](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateMulShapes ensures a.Cols == b.Rows for a matrix product.
// Assumes both are non-nil. Complexity: O(1).
func ValidateMulShapes[T ring.Element[T]](a, b Matrix[T]) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShapes",
			fmt.Errorf("%s × %s: %w", shapeOf(a), shapeOf(b), ErrDimensionMismatch))
	}

	return nil
}

// ValidateIndexSet ensures every selection index is inside [0, limit).
// Used by SubMatrix for row and column selections; reordering and
// repetition are legal, emptiness is not. Complexity: O(len(indices)).
func ValidateIndexSet(tag string, indices []int, limit int) error {
	if len(indices) == 0 {
		return validatorErrorf(tag, ErrInvalidDimensions)
	}
	for k, idx := range indices {
		if idx < 0 || idx >= limit {
			return validatorErrorf(tag,
				fmt.Errorf("indices[%d]=%d outside [0,%d): %w", k, idx, limit, ErrIndexOutOfBounds))
		}
	}

	return nil
}
