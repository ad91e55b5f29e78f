// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix contract.
// This file intentionally contains ONLY the interface; storage variants
// live in dense.go / table.go / sparse.go / transposed.go and the kernels
// in impl_* files per the package conventions.
package matrix

import "github.com/dscho/algebra/ring"

// Matrix is a rectangular, immutable table of ring elements. The variant
// set in this package is closed — Dense, Table, Sparse and Transposed —
// and kernels dispatch on the concrete type for fast paths (and for the
// view's explicit densify-before-multiply case) while falling back to
// this contract for element access.
//
// Implementations never mutate after construction; all methods are safe
// for concurrent use.
type Matrix[T ring.Element[T]] interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// At retrieves the element at (i, j).
	// Returns ErrIndexOutOfBounds outside [0,Rows)×[0,Cols).
	// Complexity: O(1) (O(1) expected for Sparse).
	At(i, j int) (T, error)

	// Clone returns a deep, independent copy. Cloning a Transposed view
	// materializes it into a Dense matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix[T]
}
