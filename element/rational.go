// SPDX-License-Identifier: MIT

// Package element: Rational — the exact rational field over math/big.
//
// Purpose:
//   - Give exact-arithmetic pipelines (LU over ℚ, exact solves) a field
//     element with no rounding anywhere.
//   - Keep value semantics on top of *big.Rat: every operation allocates a
//     fresh result and never mutates an operand, so Rational values are
//     freely shareable like the rest of the element types.
package element

import "math/big"

// panicZeroDenominator is the stable message for the one programmer error
// this type guards with a panic (mirroring option-constructor policy).
const panicZeroDenominator = "element: NewRational: zero denominator"

// Rational is an exact rational number. The zero value is usable and
// equals 0/1.
type Rational struct {
	r *big.Rat // nil means exact zero; never mutated after construction
}

// NewRational returns num/den in lowest terms. Panics on den == 0 — a
// zero denominator is a programmer error, not a runtime condition.
func NewRational(num, den int64) Rational {
	if den == 0 {
		panic(panicZeroDenominator)
	}

	return Rational{r: big.NewRat(num, den)}
}

// NewInteger returns n/1. O(1).
func NewInteger(n int64) Rational { return Rational{r: big.NewRat(n, 1)} }

// rat returns the backing value, substituting a shared-free fresh zero for
// the zero value. Internal; callers must treat the result as read-only.
func (x Rational) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat) // 0/1
	}

	return x.r
}

// Plus returns x + y as a fresh value. O(len) in the operand bit-length.
func (x Rational) Plus(y Rational) Rational {
	return Rational{r: new(big.Rat).Add(x.rat(), y.rat())}
}

// Opposite returns −x as a fresh value.
func (x Rational) Opposite() Rational {
	return Rational{r: new(big.Rat).Neg(x.rat())}
}

// Times returns x × y as a fresh value.
func (x Rational) Times(y Rational) Rational {
	return Rational{r: new(big.Rat).Mul(x.rat(), y.rat())}
}

// Inverse returns (x⁻¹, true), or ok=false for zero.
func (x Rational) Inverse() (Rational, bool) {
	if x.rat().Sign() == 0 {
		return Rational{}, false // zero has no inverse
	}

	return Rational{r: new(big.Rat).Inv(x.rat())}, true
}

// Equal reports exact equality (big.Rat keeps canonical lowest terms, so
// Cmp==0 is structural equality).
func (x Rational) Equal(y Rational) bool { return x.rat().Cmp(y.rat()) == 0 }

// Magnitude returns |x| as a float64 approximation, used ONLY for pivot
// ranking — arithmetic stays exact.
func (x Rational) Magnitude() float64 {
	f, _ := new(big.Rat).Abs(x.rat()).Float64()

	return f
}

// String implements fmt.Stringer ("num/den" in lowest terms).
func (x Rational) String() string { return x.rat().RatString() }
