// Package vector: Dense is the contiguous, row-vector style implementation
// of the Vector interface, storing elements in a flat slice for O(1)
// indexing and cache friendliness.
package vector

import (
	"fmt"
	"strings"

	"github.com/dscho/algebra/ring"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, i int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, i, err)
}

// Dense is a fixed-dimension vector backed by a contiguous slice.
type Dense[T ring.Element[T]] struct {
	data []T // flat backing storage, length == dimension, never mutated
}

// NewDense creates a Dense vector from the given ordered elements,
// copying them so later changes to the input slice cannot leak in.
// Stage 1 (Validate): at least one element.
// Stage 2 (Prepare): copy into fresh backing storage.
// Complexity: O(n) time and memory.
func NewDense[T ring.Element[T]](elems []T) (*Dense[T], error) {
	// Validate dimension
	if len(elems) == 0 {
		return nil, ErrInvalidDimensions
	}
	// Copy into private storage
	data := make([]T, len(elems))
	copy(data, elems)

	// Return initialized Dense
	return &Dense[T]{data: data}, nil
}

// Dimension returns the number of elements. Complexity: O(1).
func (v *Dense[T]) Dimension() int {
	return len(v.data) // backing length is the dimension
}

// At retrieves the element at index i.
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): read from the backing slice.
// Complexity: O(1).
func (v *Dense[T]) At(i int) (T, error) {
	// Validate index
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, denseErrorf("At", i, ErrIndexOutOfBounds)
	}

	// Return stored value
	return v.data[i], nil
}

// Clone returns a deep copy of the vector. Complexity: O(n).
func (v *Dense[T]) Clone() Vector[T] {
	// Allocate and copy the backing slice
	copyData := make([]T, len(v.data))
	copy(copyData, v.data)

	return &Dense[T]{data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n) for string construction.
func (v *Dense[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i := range v.data { // iterate in index order
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v.data[i])
	}
	sb.WriteString("}")

	return sb.String()
}
