// SPDX-License-Identifier: MIT

// Package vector: the public Vector contract.
// This file intentionally contains ONLY the interface; storage lives in
// dense.go / sparse.go and the kernels in impl_ops.go per the package
// conventions.
package vector

import "github.com/dscho/algebra/ring"

// Vector is a fixed-dimension ordered sequence of ring elements. The
// variant set in this package is closed — Dense and Sparse — and kernels
// dispatch on the concrete type for fast paths while falling back to this
// contract for anything else.
//
// Implementations are immutable after construction; all methods are safe
// for concurrent use.
type Vector[T ring.Element[T]] interface {
	// Dimension returns the fixed number of elements.
	// Complexity: O(1).
	Dimension() int

	// At retrieves the element at index i.
	// Returns ErrIndexOutOfBounds if i < 0 or i >= Dimension().
	// Complexity: O(1) for Dense, O(1) expected for Sparse.
	At(i int) (T, error)

	// Clone returns a deep, independent copy of the vector.
	// Complexity: O(dimension).
	Clone() Vector[T]
}
