// SPDX-License-Identifier: MIT

// Package matrix: Sparse — dictionary-of-keys storage with an explicit
// zero.
//
// Purpose:
//   - Store only non-zero entries of a fixed-shape matrix in an
//     (row,col)→element map; absent cells read as the declared zero.
//   - Maintain the canonical-form invariant: no stored entry ever equals
//     the zero element.
//
// Notes:
//   - The zero must satisfy zero.Equal(zero.Opposite()); constructors
//     reject anything else with ErrBadConfiguration.
package matrix

import (
	"fmt"

	"github.com/dscho/algebra/ring"
)

// Index addresses one cell of a sparse matrix.
type Index struct {
	Row, Col int
}

// sparseErrorf wraps an underlying error with Sparse method context.
func sparseErrorf(ctx string, err error) error {
	return fmt.Errorf("Sparse.%s: %w", ctx, err)
}

// Sparse is a fixed-shape matrix keeping only non-zero entries.
type Sparse[T ring.Element[T]] struct {
	r, c int         // declared shape, immutable
	zero T           // value reported for absent cells
	data map[Index]T // canonical: no stored value equals zero
}

// NewSparse creates an r×c Sparse matrix with an explicit zero and
// initial entries (copied; zero-equal values dropped).
// Stage 1 (Validate): shape positive; zero self-opposite; cells in range.
// Stage 2 (Prepare): copy entries, dropping any equal to zero.
// Complexity: O(len(entries)) time and memory.
func NewSparse[T ring.Element[T]](rows, cols int, zero T, entries map[Index]T) (*Sparse[T], error) {
	// Validate shape
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// A zero that is not self-opposite cannot absorb additions.
	if !zero.Equal(zero.Opposite()) {
		return nil, sparseErrorf("NewSparse", fmt.Errorf("zero is not its own opposite: %w", ErrBadConfiguration))
	}
	// Copy entries into canonical storage
	data := make(map[Index]T, len(entries))
	for idx, val := range entries {
		if idx.Row < 0 || idx.Row >= rows || idx.Col < 0 || idx.Col >= cols {
			return nil, sparseErrorf("NewSparse",
				fmt.Errorf("entry (%d,%d) outside %dx%d: %w", idx.Row, idx.Col, rows, cols, ErrBadConfiguration))
		}
		if val.Equal(zero) {
			continue // keep canonical form: never store the zero
		}
		data[idx] = val
	}

	return &Sparse[T]{r: rows, c: cols, zero: zero, data: data}, nil
}

// SparseFrom converts any matrix to sparse storage under the given zero,
// dropping zero-equal cells. Complexity: O(r*c).
func SparseFrom[T ring.Element[T]](m Matrix[T], zero T) (*Sparse[T], error) {
	if m == nil {
		return nil, sparseErrorf("SparseFrom", ErrNilMatrix)
	}
	entries := make(map[Index]T)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			val, err := m.At(i, j)
			if err != nil {
				return nil, sparseErrorf("SparseFrom", err)
			}
			entries[Index{Row: i, Col: j}] = val // NewSparse drops zeros
		}
	}

	return NewSparse(m.Rows(), m.Cols(), zero, entries)
}

// Rows returns the declared row count. Complexity: O(1).
func (m *Sparse[T]) Rows() int { return m.r }

// Cols returns the declared column count. Complexity: O(1).
func (m *Sparse[T]) Cols() int { return m.c }

// Zero returns the element reported for absent cells. Complexity: O(1).
func (m *Sparse[T]) Zero() T { return m.zero }

// NonZeroCount returns the number of stored (non-zero) entries.
// Complexity: O(1).
func (m *Sparse[T]) NonZeroCount() int { return len(m.data) }

// At retrieves the element at (row, col), reporting the declared zero for
// absent cells. Complexity: O(1) expected.
func (m *Sparse[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, sparseErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrIndexOutOfBounds)
	}
	if val, ok := m.data[Index{Row: row, Col: col}]; ok {
		return val, nil
	}

	// Absent cell reads as the declared zero.
	return m.zero, nil
}

// Clone returns a deep copy sharing no map storage. Complexity: O(nnz).
func (m *Sparse[T]) Clone() Matrix[T] {
	copyData := make(map[Index]T, len(m.data))
	for idx, val := range m.data {
		copyData[idx] = val
	}

	return &Sparse[T]{r: m.r, c: m.c, zero: m.zero, data: copyData}
}
