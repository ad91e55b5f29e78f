// SPDX-License-Identifier: MIT

// Package matrix: Table — a matrix backed by a table of row-vectors.
//
// Purpose:
//   - Offer the row-vector construction entry point without forcing an
//     immediate flatten: each row keeps its own vector.Vector storage, so
//     a table of sparse rows stays sparse row by row.
//   - Row extraction (RowAt) on a Table is O(1): the stored row is shared,
//     which is safe because vectors are immutable.
package matrix

import (
	"fmt"

	"github.com/dscho/algebra/ring"
	"github.com/dscho/algebra/vector"
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, err error) error {
	return fmt.Errorf("Table.%s: %w", method, err)
}

// Table is a matrix whose rows are vector values of one shared dimension.
type Table[T ring.Element[T]] struct {
	cols int                // shared row dimension
	rows []vector.Vector[T] // one immutable vector per row
}

// NewTable creates a matrix from row vectors. Every row must be non-nil
// and share one dimension. The slice is copied; the vectors themselves
// are shared (they are immutable).
// Complexity: O(r) — rows are referenced, not copied.
func NewTable[T ring.Element[T]](rows []vector.Vector[T]) (*Table[T], error) {
	// Validate shape before allocating.
	if len(rows) == 0 {
		return nil, ErrInvalidDimensions
	}
	if rows[0] == nil {
		return nil, tableErrorf("NewTable", ErrNilMatrix)
	}
	cols := rows[0].Dimension()
	for i, row := range rows {
		if row == nil {
			return nil, tableErrorf("NewTable", fmt.Errorf("row %d: %w", i, ErrNilMatrix))
		}
		if row.Dimension() != cols {
			return nil, tableErrorf("NewTable",
				fmt.Errorf("row %d has dimension %d, want %d: %w", i, row.Dimension(), cols, ErrDimensionMismatch))
		}
	}
	// Copy the row table so the caller's slice cannot alias it.
	table := make([]vector.Vector[T], len(rows))
	copy(table, rows)

	return &Table[T]{cols: cols, rows: table}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Table[T]) Rows() int { return len(m.rows) }

// Cols returns the shared row dimension. Complexity: O(1).
func (m *Table[T]) Cols() int { return m.cols }

// At retrieves the element at (row, col) by delegating to the row vector.
// Complexity: O(1) (O(1) expected when the row is sparse).
func (m *Table[T]) At(row, col int) (T, error) {
	if row < 0 || row >= len(m.rows) {
		var zero T
		return zero, tableErrorf(fmt.Sprintf("At(%d,%d)", row, col), ErrIndexOutOfBounds)
	}

	// Column bounds are enforced by the row vector itself.
	return m.rows[row].At(col)
}

// Row returns the stored row vector. Safe to share: vectors are
// immutable. Complexity: O(1).
func (m *Table[T]) Row(i int) (vector.Vector[T], error) {
	if i < 0 || i >= len(m.rows) {
		return nil, tableErrorf(fmt.Sprintf("Row(%d)", i), ErrIndexOutOfBounds)
	}

	return m.rows[i], nil
}

// Clone returns a deep copy (each row vector cloned).
// Complexity: O(r*c).
func (m *Table[T]) Clone() Matrix[T] {
	rows := make([]vector.Vector[T], len(m.rows))
	for i, row := range m.rows {
		rows[i] = row.Clone()
	}

	return &Table[T]{cols: m.cols, rows: rows}
}
