// SPDX-License-Identifier: MIT
// Package vector — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks.
//   - Avoid any logic duplication — each facade delegates to the canonical
//     kernel; loop orders and validation live there, never here.

package vector

import (
	"github.com/dscho/algebra/element"
	"github.com/dscho/algebra/ring"
)

// Sum is an alias for Add: element-wise a + b. Complexity: O(n).
func Sum[T ring.Element[T]](a, b Vector[T]) (Vector[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b. Complexity: O(n).
func Diff[T ring.Element[T]](a, b Vector[T]) (Vector[T], error) { return Sub(a, b) }

// Opposite is an alias for Negate: element-wise −v. Complexity: O(n).
func Opposite[T ring.Element[T]](v Vector[T]) (Vector[T], error) { return Negate(v) }

// ScaleBy is an alias for Scale: element-wise v[i] × k. Complexity: O(n).
func ScaleBy[T ring.Element[T]](v Vector[T], k T) (Vector[T], error) { return Scale(v, k) }

// NewReal lifts a native float64 slice into a dense Real vector — the
// numeric convenience constructor. Complexity: O(n).
func NewReal(values []float64) (*Dense[element.Real], error) {
	// Lift once, then delegate to the strict constructor.
	return NewDense(element.Reals(values))
}
