// Package matrix: Dense is the flat row-major implementation of the
// Matrix interface, storing elements contiguously for O(1) indexing and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/ring"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of ring elements.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[T ring.Element[T]] struct {
	r, c int // number of rows and columns
	data []T // flat backing storage, length == r*c, never mutated
}

// NewDense creates an r×c Dense matrix from a flat row-major element
// slice, copying it so the caller's slice cannot alias the matrix.
// Stage 1 (Validate): rows and cols > 0; element count matches the shape.
// Stage 2 (Prepare): copy into fresh backing storage.
// Complexity: O(r*c) time and memory.
func NewDense[T ring.Element[T]](rows, cols int, elems []T) (*Dense[T], error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate element count against the declared shape.
	if len(elems) != rows*cols {
		return nil, fmt.Errorf("NewDense: %d elements for %dx%d: %w", len(elems), rows, cols, ErrDimensionMismatch)
	}
	// Copy into private storage
	data := make([]T, len(elems))
	copy(data, elems)

	return &Dense[T]{r: rows, c: cols, data: data}, nil
}

// NewFromRows creates a Dense matrix from nested row slices. Every row
// must have the same, positive length.
// Complexity: O(r*c).
func NewFromRows[T ring.Element[T]](rows [][]T) (*Dense[T], error) {
	// Validate shape before allocating.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d elements, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}
	// Flatten row-major.
	data := make([]T, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Dense[T]{r: len(rows), c: cols, data: data}, nil
}

// NewReal creates a Dense matrix of Real elements from a flat row-major
// float64 slice — the numeric convenience constructor.
// Complexity: O(r*c).
func NewReal(rows, cols int, values []float64) (*Dense[element.Real], error) {
	// Lift once, then delegate to the strict constructor.
	return NewDense(rows, cols, element.Reals(values))
}

// NewRealRows creates a Dense matrix of Real elements from nested
// float64 rows. Complexity: O(r*c).
func NewRealRows(rows [][]float64) (*Dense[element.Real], error) {
	lifted := make([][]element.Real, len(rows))
	for i, row := range rows {
		lifted[i] = element.Reals(row)
	}

	return NewFromRows(lifted)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check. Stage 2 (Execute): flat read.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		var zero T
		return zero, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.c+col], nil
}

// Clone returns a deep copy of the Dense matrix. Complexity: O(r*c).
func (m *Dense[T]) Clone() Matrix[T] {
	copyData := make([]T, len(m.data))
	copy(copyData, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteString("[")
		for j := 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
