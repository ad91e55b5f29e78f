// SPDX-License-Identifier: MIT

// Package ring: the Element capability contract and derived identities.
// This file intentionally contains ONLY the contract and the identity
// helpers; pivot ranking lives in pivot.go per the package conventions.
package ring

// Element is the capability set every vector/matrix element type must
// expose, parameterized over itself (T Element[T]).
//
// Laws (not enforceable by the compiler, validated by tests):
//   - Plus commutes and associates; Opposite is its inverse.
//   - Times associates and distributes over Plus; it need NOT commute.
//   - Equal is exact: no epsilon, no normalization beyond the type's own
//     canonical form.
//
// Complexity notes: all methods are expected O(1) for fixed-size scalars;
// composite elements (big rationals, nested matrices) may cost more.
type Element[T any] interface {
	// Plus returns x + y. Addition MUST be commutative.
	Plus(y T) T

	// Opposite returns −x, the additive inverse.
	Opposite() T

	// Times returns x × y in that order. Multiplication MAY be
	// non-commutative; callers must never swap operands.
	Times(y T) T

	// Inverse returns (x⁻¹, true) when the multiplicative inverse exists,
	// or (_, false) otherwise. The additive identity always reports false
	// in a field.
	Inverse() (T, bool)

	// Equal reports exact equality with y.
	Equal(y T) bool
}

// Zero derives the additive identity of T's ring from any sample element:
// x + (−x). Deterministic; O(one Plus + one Opposite).
func Zero[T Element[T]](sample T) T {
	// The sum of any element with its opposite is the ring's zero.
	return sample.Plus(sample.Opposite())
}

// One derives the multiplicative identity from an invertible sample:
// x × x⁻¹. The boolean reports whether the sample was invertible; when it
// is false the first return value is meaningless.
func One[T Element[T]](sample T) (T, bool) {
	inv, ok := sample.Inverse()
	if !ok {
		// No inverse ⇒ cannot derive the identity from this sample.
		return sample, false
	}

	// Left-to-right product keeps the derivation valid for
	// non-commutative rings (x·x⁻¹ is the identity on both sides).
	return sample.Times(inv), true
}

// IsZero reports whether x equals the additive identity derived from x
// itself. O(one Plus + one Opposite + one Equal).
func IsZero[T Element[T]](x T) bool {
	return x.Equal(Zero(x))
}
