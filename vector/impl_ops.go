// SPDX-License-Identifier: MIT
// Package vector provides universal kernels on any Vector implementation:
// element-wise addition/subtraction, negation, scalar scaling, dot and
// cross products and sub-vector extraction. All kernels perform strict
// fail-fast validation, never mutate operands and preserve left-to-right
// multiplicative order for non-commutative element rings.

package vector

import (
	"fmt"

	"github.com/dscho/algebra/ring"
)

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opNegate    = "Negate"
	opScale     = "Scale"
	opDot       = "Dot"
	opCross     = "Cross"
	opSubVector = "SubVector"
)

// vectorErrorf wraps err with an operation tag, preserving the underlying
// sentinel via %w for errors.Is/As. Call only with err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a ± b for same-dimension operands.
// Internal helper for Add/Sub to share validation and fast paths.
//
// Implementation:
//   - Stage 1: ValidateBinarySameDimension(a, b).
//   - Stage 2: Sparse⊕Sparse fast path — merge the index maps and DROP any
//     result entry that became equal to the zero element, keeping the
//     canonical sparse form. Everything else falls back to a Dense result
//     with a fixed 0..n-1 loop.
//
// Behavior highlights:
//   - Deterministic: map merges touch disjoint indices, so iteration order
//     cannot change the result; dense loops are fixed-order.
//   - Single result allocation; operands remain immutable.
//
// Errors: ErrNilVector, ErrDimensionMismatch (wrapped with opAdd/opSub).
// Complexity: O(nnz_a + nnz_b) sparse path, O(n) otherwise.
func addSub[T ring.Element[T]](a, b Vector[T], negate bool, opTag string) (Vector[T], error) {
	// Validate dimensions match
	if err := ValidateBinarySameDimension(a, b); err != nil {
		return nil, vectorErrorf(opTag, err)
	}

	// Fast path: Sparse with Sparse → canonical sparse merge.
	if sa, okA := a.(*Sparse[T]); okA {
		if sb, okB := b.(*Sparse[T]); okB {
			merged := make(map[int]T, len(sa.data)+len(sb.data))
			for idx, val := range sa.data { // start from a's entries
				merged[idx] = val
			}
			for idx, val := range sb.data { // fold b's entries in
				if negate {
					val = val.Opposite()
				}
				if cur, ok := merged[idx]; ok {
					sum := cur.Plus(val)
					if sum.Equal(sa.zero) {
						delete(merged, idx) // canonical form: drop zeros
					} else {
						merged[idx] = sum
					}
				} else {
					merged[idx] = val // new index; zero-equal is impossible for canonical b
				}
			}

			return &Sparse[T]{dim: sa.dim, zero: sa.zero, data: merged}, nil
		}
	}

	// Fallback: Dense result with fixed 0..n-1 order.
	n := a.Dimension()
	data := make([]T, n)
	var av, bv T
	var err error
	for i := 0; i < n; i++ {
		if av, err = a.At(i); err != nil {
			return nil, vectorErrorf(opTag, err)
		}
		if bv, err = b.At(i); err != nil {
			return nil, vectorErrorf(opTag, err)
		}
		if negate {
			bv = bv.Opposite()
		}
		data[i] = av.Plus(bv)
	}

	return &Dense[T]{data: data}, nil
}

// Add computes the element-wise sum a + b.
// Returns a canonical Sparse when both operands are Sparse, a Dense
// otherwise. Errors: ErrNilVector, ErrDimensionMismatch.
// Complexity: O(n).
func Add[T ring.Element[T]](a, b Vector[T]) (Vector[T], error) {
	return addSub(a, b, false, opAdd)
}

// Sub computes the element-wise difference a − b, implemented as
// a + (−b) so only Plus/Opposite capabilities are required.
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Sub[T ring.Element[T]](a, b Vector[T]) (Vector[T], error) {
	return addSub(a, b, true, opSub)
}

// Negate returns −v element-wise, preserving the storage kind: a Sparse
// input yields a Sparse result (negation cannot create new zeros when the
// zero is self-opposite). Complexity: O(n) dense, O(nnz) sparse.
func Negate[T ring.Element[T]](v Vector[T]) (Vector[T], error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(opNegate, err)
	}

	// Sparse fast path: negate stored entries only.
	if sv, ok := v.(*Sparse[T]); ok {
		data := make(map[int]T, len(sv.data))
		for idx, val := range sv.data {
			data[idx] = val.Opposite()
		}

		return &Sparse[T]{dim: sv.dim, zero: sv.zero, data: data}, nil
	}

	// Generic path into a Dense result.
	n := v.Dimension()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		val, err := v.At(i)
		if err != nil {
			return nil, vectorErrorf(opNegate, err)
		}
		data[i] = val.Opposite()
	}

	return &Dense[T]{data: data}, nil
}

// Scale returns v scaled element-wise by k, each element RIGHT-multiplied:
// out[i] = v[i] × k. The order matters for non-commutative rings; callers
// needing k × v[i] should scale a transposed formulation instead.
//
// Sparse inputs yield sparse results; entries whose product becomes equal
// to the zero element are dropped to keep the canonical form (scaling by
// a zero divisor can create new zeros).
// Complexity: O(n) dense, O(nnz) sparse.
func Scale[T ring.Element[T]](v Vector[T], k T) (Vector[T], error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(opScale, err)
	}

	// Sparse fast path with canonical-form maintenance.
	if sv, ok := v.(*Sparse[T]); ok {
		data := make(map[int]T, len(sv.data))
		for idx, val := range sv.data {
			scaled := val.Times(k)
			if scaled.Equal(sv.zero) {
				continue // dropped: product collapsed to zero
			}
			data[idx] = scaled
		}

		return &Sparse[T]{dim: sv.dim, zero: sv.zero, data: data}, nil
	}

	// Generic path into a Dense result.
	n := v.Dimension()
	data := make([]T, n)
	for i := 0; i < n; i++ {
		val, err := v.At(i)
		if err != nil {
			return nil, vectorErrorf(opScale, err)
		}
		data[i] = val.Times(k)
	}

	return &Dense[T]{data: data}, nil
}

// Dot computes the dot product as the LEFT-TO-RIGHT accumulation of
// a[i] × b[i]:
//
//	sum = a[0]×b[0]; sum = sum + a[i]×b[i] for i = 1..n-1.
//
// Both the per-term operand order and the accumulation order are fixed —
// for non-commutative element rings a different order is a different
// (wrong) result.
//
// Errors: ErrNilVector, ErrDimensionMismatch. Complexity: O(n).
func Dot[T ring.Element[T]](a, b Vector[T]) (T, error) {
	var zero T
	if err := ValidateBinarySameDimension(a, b); err != nil {
		return zero, vectorErrorf(opDot, err)
	}

	// First term seeds the accumulator (dimension ≥ 1 by construction).
	av, err := a.At(0)
	if err != nil {
		return zero, vectorErrorf(opDot, err)
	}
	bv, err := b.At(0)
	if err != nil {
		return zero, vectorErrorf(opDot, err)
	}
	sum := av.Times(bv)

	// Remaining terms accumulate in index order.
	for i := 1; i < a.Dimension(); i++ {
		if av, err = a.At(i); err != nil {
			return zero, vectorErrorf(opDot, err)
		}
		if bv, err = b.At(i); err != nil {
			return zero, vectorErrorf(opDot, err)
		}
		sum = sum.Plus(av.Times(bv))
	}

	return sum, nil
}

// Cross computes the cross product of two dimension-3 vectors:
//
//	c[0] = a[1]×b[2] − a[2]×b[1]
//	c[1] = a[2]×b[0] − a[0]×b[2]
//	c[2] = a[0]×b[1] − a[1]×b[0]
//
// with every product in a-then-b order. Any other dimension fails with
// ErrDimensionMismatch. Complexity: O(1) (six products).
func Cross[T ring.Element[T]](a, b Vector[T]) (Vector[T], error) {
	if err := ValidateCrossOperands(a, b); err != nil {
		return nil, vectorErrorf(opCross, err)
	}

	// Materialize both operands once (dimension is exactly 3).
	var as, bs [crossDimension]T
	var err error
	for i := 0; i < crossDimension; i++ {
		if as[i], err = a.At(i); err != nil {
			return nil, vectorErrorf(opCross, err)
		}
		if bs[i], err = b.At(i); err != nil {
			return nil, vectorErrorf(opCross, err)
		}
	}

	// Each component: product minus product, a-then-b order throughout.
	data := []T{
		as[1].Times(bs[2]).Plus(as[2].Times(bs[1]).Opposite()),
		as[2].Times(bs[0]).Plus(as[0].Times(bs[2]).Opposite()),
		as[0].Times(bs[1]).Plus(as[1].Times(bs[0]).Opposite()),
	}

	return &Dense[T]{data: data}, nil
}

// SubVector builds a new dense vector of length len(indices) with
// out[k] = v[indices[k]]. Reordering and repetition are allowed; any index
// outside [0, dim) fails with ErrIndexOutOfBounds before anything is
// built. An empty index set is ErrInvalidDimensions.
// Complexity: O(len(indices)).
func SubVector[T ring.Element[T]](v Vector[T], indices []int) (Vector[T], error) {
	if err := ValidateNotNil(v); err != nil {
		return nil, vectorErrorf(opSubVector, err)
	}
	if len(indices) == 0 {
		return nil, vectorErrorf(opSubVector, ErrInvalidDimensions)
	}
	// Validate the whole selection before building (fail fast, no partial
	// result).
	for k, idx := range indices {
		if idx < 0 || idx >= v.Dimension() {
			return nil, vectorErrorf(opSubVector,
				fmt.Errorf("indices[%d]=%d outside [0,%d): %w", k, idx, v.Dimension(), ErrIndexOutOfBounds))
		}
	}

	// Gather in selection order.
	data := make([]T, len(indices))
	for k, idx := range indices {
		val, err := v.At(idx)
		if err != nil {
			return nil, vectorErrorf(opSubVector, err)
		}
		data[k] = val
	}

	return &Dense[T]{data: data}, nil
}

// Equal reports element-wise equality of two vectors. Vectors of unequal
// dimension are never equal; a nil operand equals nothing.
// Complexity: O(n).
func Equal[T ring.Element[T]](a, b Vector[T]) bool {
	if a == nil || b == nil || a.Dimension() != b.Dimension() {
		return false
	}
	for i := 0; i < a.Dimension(); i++ {
		av, errA := a.At(i)
		bv, errB := b.At(i)
		if errA != nil || errB != nil || !av.Equal(bv) {
			return false
		}
	}

	return true
}
