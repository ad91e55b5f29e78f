// SPDX-License-Identifier: MIT

// Package element: Complex — the complex128 field, ranked by modulus.
package element

import (
	"math/cmplx"
	"strconv"
)

// Complex is a complex128 field element with exact (bitwise) equality.
type Complex complex128

// Plus returns x + y. O(1).
func (x Complex) Plus(y Complex) Complex { return x + y }

// Opposite returns −x. O(1).
func (x Complex) Opposite() Complex { return -x }

// Times returns x × y. O(1).
func (x Complex) Times(y Complex) Complex { return x * y }

// Inverse returns (1/x, true), or ok=false for zero. O(1).
func (x Complex) Inverse() (Complex, bool) {
	if x == 0 {
		return 0, false
	}

	return 1 / x, true
}

// Equal reports exact equality of both components. O(1).
func (x Complex) Equal(y Complex) bool { return x == y }

// Magnitude returns the modulus |x| for pivot ranking. O(1).
func (x Complex) Magnitude() float64 { return cmplx.Abs(complex128(x)) }

// String implements fmt.Stringer.
func (x Complex) String() string {
	return strconv.FormatComplex(complex128(x), 'g', -1, 128)
}
