// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in option
// constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; when
// context (the conflicting shapes, the offending index or column) is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) — callers still match
// via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand → shape/index → dimension mismatch → singularity.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors must validate before
	// allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside valid
	// bounds. Public indexers (At, SubMatrix, Cofactor) MUST return this,
	// not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands — Add/Sub on different shapes, Mul where a.Cols != b.Rows,
	// Solve with the wrong right-hand-side height, or a non-square input
	// where a square one is required. Wrapping always carries the
	// conflicting shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned when a pivot has no multiplicative inverse
	// during LU decomposition or the substitutions built on it. The
	// Determinant facade maps this to the ring's additive identity
	// instead of surfacing it.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadConfiguration marks an invalid construction: a sparse entry
	// index outside the declared shape, a zero element that is not its
	// own opposite, or an identity requested from a non-invertible
	// sample.
	ErrBadConfiguration = errors.New("matrix: invalid configuration")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument)
	// was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
