// SPDX-License-Identifier: MIT
// Package vector: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// vector package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in constructors.

package vector

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vector: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; when
// context (the conflicting sizes, the offending index) is essential, wrap
// with fmt.Errorf("ctx: %w", ErrX) — callers still match via errors.Is.

var (
	// ErrInvalidDimensions is returned when a requested dimension is
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("vector: dimension must be > 0")

	// ErrIndexOutOfBounds indicates an element index outside [0, dim).
	// Public indexers (At, SubVector) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add/Sub/Dot on unequal lengths or Cross off dimension 3.
	// Wrapping always carries both conflicting sizes.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrBadConfiguration marks an invalid sparse construction: an entry
	// index at or beyond the declared dimension, a zero element that is
	// not its own opposite, or no zero derivable from the input.
	ErrBadConfiguration = errors.New("vector: invalid sparse configuration")

	// ErrNilVector indicates that a nil Vector was passed to a kernel.
	ErrNilVector = errors.New("vector: nil vector")
)
