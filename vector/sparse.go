// SPDX-License-Identifier: MIT

// Package vector: Sparse — index-map storage with an explicit zero.
//
// Purpose:
//   - Store only non-zero entries of a fixed-dimension vector in an
//     index→element map; absent indices read as the declared zero.
//   - Maintain the canonical-form invariant: no stored entry ever equals
//     the zero element, so NonZeroCount and equality stay meaningful.
//
// Notes:
//   - The zero must satisfy zero.Equal(zero.Opposite()); constructors
//     reject anything else with ErrBadConfiguration.
//   - Building from a dense vector without an explicit zero derives it as
//     x + (−x) of the first element.
package vector

import (
	"fmt"

	"github.com/dscho/algebra/ring"
)

// sparseErrorf wraps an underlying error with Sparse construction context.
func sparseErrorf(ctx string, err error) error {
	return fmt.Errorf("Sparse.%s: %w", ctx, err)
}

// Sparse is a fixed-dimension vector keeping only non-zero entries.
type Sparse[T ring.Element[T]] struct {
	dim  int       // declared dimension, immutable
	zero T         // value reported for absent indices
	data map[int]T // canonical: no stored value equals zero
}

// NewSparse creates a Sparse vector of the given dimension with an
// explicit zero and initial entries (copied; zero-equal values dropped).
// Stage 1 (Validate): dim > 0; zero is its own opposite; indices in range.
// Stage 2 (Prepare): copy entries, dropping any equal to zero.
// Complexity: O(len(entries)) time and memory.
func NewSparse[T ring.Element[T]](dim int, zero T, entries map[int]T) (*Sparse[T], error) {
	// Validate dimension
	if dim <= 0 {
		return nil, ErrInvalidDimensions
	}
	// A zero that is not self-opposite cannot absorb additions.
	if !zero.Equal(zero.Opposite()) {
		return nil, sparseErrorf("NewSparse", fmt.Errorf("zero is not its own opposite: %w", ErrBadConfiguration))
	}
	// Copy entries into canonical storage
	data := make(map[int]T, len(entries))
	for idx, val := range entries {
		if idx < 0 || idx >= dim {
			return nil, sparseErrorf("NewSparse", fmt.Errorf("entry index %d outside [0,%d): %w", idx, dim, ErrBadConfiguration))
		}
		if val.Equal(zero) {
			continue // keep canonical form: never store the zero
		}
		data[idx] = val
	}

	return &Sparse[T]{dim: dim, zero: zero, data: data}, nil
}

// SparseFromWithZero converts any vector to sparse storage under the given
// zero, confirming the zero is well-formed and dropping zero entries.
// Complexity: O(n).
func SparseFromWithZero[T ring.Element[T]](v Vector[T], zero T) (*Sparse[T], error) {
	// Guard nil input with the package sentinel.
	if v == nil {
		return nil, sparseErrorf("SparseFromWithZero", ErrNilVector)
	}
	// Collect non-zero entries in index order.
	entries := make(map[int]T)
	for i := 0; i < v.Dimension(); i++ {
		val, err := v.At(i)
		if err != nil {
			return nil, sparseErrorf("SparseFromWithZero", err)
		}
		entries[i] = val // NewSparse drops zero-equal values
	}

	return NewSparse(v.Dimension(), zero, entries)
}

// SparseFrom converts any vector to sparse storage, DISCOVERING the zero
// element as x + (−x) of the first element — the only way to obtain a
// zero when the element type has no literal for it.
// Complexity: O(n).
func SparseFrom[T ring.Element[T]](v Vector[T]) (*Sparse[T], error) {
	if v == nil {
		return nil, sparseErrorf("SparseFrom", ErrNilVector)
	}
	// An empty vector offers no element to derive the zero from.
	if v.Dimension() == 0 {
		return nil, sparseErrorf("SparseFrom", fmt.Errorf("no element to derive zero from: %w", ErrBadConfiguration))
	}
	first, err := v.At(0)
	if err != nil {
		return nil, sparseErrorf("SparseFrom", err)
	}

	// Derive the additive identity and delegate.
	return SparseFromWithZero(v, ring.Zero(first))
}

// Dimension returns the declared dimension. Complexity: O(1).
func (v *Sparse[T]) Dimension() int { return v.dim }

// Zero returns the element reported for absent indices. Complexity: O(1).
func (v *Sparse[T]) Zero() T { return v.zero }

// NonZeroCount returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (v *Sparse[T]) NonZeroCount() int { return len(v.data) }

// At retrieves the element at index i, reporting the declared zero for
// absent entries. Complexity: O(1) expected.
func (v *Sparse[T]) At(i int) (T, error) {
	if i < 0 || i >= v.dim {
		var zero T
		return zero, sparseErrorf(fmt.Sprintf("At(%d)", i), ErrIndexOutOfBounds)
	}
	if val, ok := v.data[i]; ok {
		return val, nil
	}

	// Absent index reads as the declared zero.
	return v.zero, nil
}

// Clone returns a deep copy sharing no map storage. Complexity: O(nnz).
func (v *Sparse[T]) Clone() Vector[T] {
	copyData := make(map[int]T, len(v.data))
	for idx, val := range v.data {
		copyData[idx] = val
	}

	return &Sparse[T]{dim: v.dim, zero: v.zero, data: copyData}
}
