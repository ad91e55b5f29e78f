// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation
//     checks, so kernels stay minimal and guards never diverge.
//   - Return plain sentinel errors (wrapped with the conflicting sizes)
//     so call sites can add their op tag uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocation-free on success.

package vector

import (
	"fmt"

	"github.com/dscho/algebra/ring"
)

// crossDimension is the only dimension the cross product is defined for.
const crossDimension = 3

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	// Consistent error tagging for all validation failures.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the vector reference is non-nil.
// Returns ErrNilVector if v == nil. Complexity: O(1).
func ValidateNotNil[T ring.Element[T]](v Vector[T]) error {
	if v == nil {
		return validatorErrorf("ValidateNotNil", ErrNilVector)
	}

	return nil
}

// ValidateSameDimension ensures a and b have equal dimension.
// Assumes both are non-nil (caller must ensure). The wrapped message
// carries both conflicting sizes. Complexity: O(1).
func ValidateSameDimension[T ring.Element[T]](a, b Vector[T]) error {
	if a.Dimension() != b.Dimension() {
		return validatorErrorf("ValidateSameDimension",
			fmt.Errorf("%d vs %d: %w", a.Dimension(), b.Dimension(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateBinarySameDimension – Composite: NotNil(a) → NotNil(b) → SameDimension.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(1).
func ValidateBinarySameDimension[T ring.Element[T]](a, b Vector[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameDimension", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameDimension", err)
	}
	if err := ValidateSameDimension(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameDimension", err)
	}

	return nil
}

// ValidateCrossOperands ensures both operands are non-nil and of dimension
// exactly 3. Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(1).
func ValidateCrossOperands[T ring.Element[T]](a, b Vector[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateCrossOperands", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateCrossOperands", err)
	}
	if a.Dimension() != crossDimension || b.Dimension() != crossDimension {
		return validatorErrorf("ValidateCrossOperands",
			fmt.Errorf("%d vs %d (need %d): %w", a.Dimension(), b.Dimension(), crossDimension, ErrDimensionMismatch))
	}

	return nil
}
