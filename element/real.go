// SPDX-License-Identifier: MIT

// Package element: Real — the float64 field.
// Real is the "numeric convenience type": it lifts native floating-point
// data into the ring.Element contract and exposes Magnitude so the default
// pivot comparator ranks it by absolute value.
package element

import (
	"math"
	"strconv"
)

// Real is a float64 field element. Equality is exact (bitwise on the
// float64 value); callers needing tolerance must compare outside the
// element contract.
type Real float64

// Plus returns x + y. O(1).
func (x Real) Plus(y Real) Real { return x + y }

// Opposite returns −x. O(1).
func (x Real) Opposite() Real { return -x }

// Times returns x × y. float64 multiplication commutes, but callers must
// still not rely on that when T is generic. O(1).
func (x Real) Times(y Real) Real { return x * y }

// Inverse returns (1/x, true), or ok=false for the additive identity.
// O(1).
func (x Real) Inverse() (Real, bool) {
	if x == 0 {
		return 0, false // zero has no multiplicative inverse
	}

	return 1 / x, true
}

// Equal reports exact equality. NaN never equals anything, matching
// float64 semantics. O(1).
func (x Real) Equal(y Real) bool { return x == y }

// Magnitude returns |x| for pivot ranking. O(1).
func (x Real) Magnitude() float64 { return math.Abs(float64(x)) }

// String implements fmt.Stringer for debugging output.
func (x Real) String() string { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Reals lifts a native float64 slice into Real elements, preserving order.
// Convenience for the construction entry points that accept raw
// floating-point arrays. O(n).
func Reals(values []float64) []Real {
	out := make([]Real, len(values)) // single allocation
	for i, v := range values {       // deterministic order
		out[i] = Real(v)
	}

	return out
}
