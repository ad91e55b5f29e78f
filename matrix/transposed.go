// SPDX-License-Identifier: MIT

// Package matrix: Transposed — the zero-copy row/column-swapped view.
//
// Purpose:
//   - Expose mᵀ in O(1): At(i,j) forwards to the source At(j,i); nothing
//     is copied and the view stays valid only while the source outlives
//     it (it is a back-reference, not a snapshot).
//   - Keep the involution law cheap: Transpose(Transpose(m)) unwraps back
//     to the original source rather than stacking views.
//
// Behavior highlights:
//   - Element-wise kernels (Add, Sub, Negate, Scale) answer on the view
//     WITHOUT copying, via the algebraic identities
//     (Aᵀ)+B = (A+Bᵀ)ᵀ and (Aᵀ)×k = (A×k)ᵀ — see impl_ops.go.
//   - Mul of TWO views answers through the transpose-product identity
//     xᵀ × yᵀ = (y × x)ᵀ without copying, so (A×B)ᵀ == Bᵀ×Aᵀ holds
//     exactly even over non-commutative elements. A single view operand
//     has no such identity and is densified first — that copy is the
//     documented performance cliff of this view: prefer materializing
//     once (Clone) when one view is multiplied repeatedly.
package matrix

import "github.com/dscho/algebra/ring"

// Transposed is a read-only view over src with rows and columns swapped.
type Transposed[T ring.Element[T]] struct {
	src Matrix[T] // back-reference; must outlive the view
}

// Transpose returns mᵀ as an O(1) view. Transposing a Transposed view
// unwraps to its source, so the involution holds structurally:
// Transpose(Transpose(m)) == m.
func Transpose[T ring.Element[T]](m Matrix[T]) (Matrix[T], error) {
	// Guard nil with the package sentinel.
	if m == nil {
		return nil, ErrNilMatrix
	}
	// Involution: unwrap an existing view instead of stacking another.
	if t, ok := m.(*Transposed[T]); ok {
		return t.src, nil
	}

	return &Transposed[T]{src: m}, nil
}

// Source returns the viewed matrix. Complexity: O(1).
func (m *Transposed[T]) Source() Matrix[T] { return m.src }

// Rows returns the source's column count. Complexity: O(1).
func (m *Transposed[T]) Rows() int { return m.src.Cols() }

// Cols returns the source's row count. Complexity: O(1).
func (m *Transposed[T]) Cols() int { return m.src.Rows() }

// At forwards to the source with indices swapped; bounds are enforced by
// the source. Complexity: the source's At.
func (m *Transposed[T]) At(row, col int) (T, error) {
	return m.src.At(col, row)
}

// Clone materializes the view into an independent Dense matrix — the
// escape hatch from back-reference semantics. Complexity: O(r*c).
func (m *Transposed[T]) Clone() Matrix[T] {
	rows, cols := m.Rows(), m.Cols()
	data := make([]T, rows*cols)
	for i := 0; i < rows; i++ { // deterministic i→j fill
		for j := 0; j < cols; j++ {
			// Source bounds are valid by construction of the view.
			val, _ := m.src.At(j, i)
			data[i*cols+j] = val
		}
	}

	return &Dense[T]{r: rows, c: cols, data: data}
}
