// SPDX-License-Identifier: MIT

// Package element: Mod — residues modulo a prime p, the finite field GF(p).
//
// Purpose:
//   - Provide an exact finite field for erasure-coding-style pipelines and
//     for exercising the element contract where "magnitude" has no meaning
//     (Mod deliberately does NOT implement ring.Magnitude, so the default
//     pivot comparator falls back to its equal-rank heuristic).
//
// Notes:
//   - The modulus must be prime for Inverse to exist on every non-zero
//     residue; with a composite modulus, Inverse reports ok=false on
//     residues sharing a factor with the modulus (a ring, not a field).
//   - The modulus is capped below 2^32 so products fit in uint64 without a
//     wide-multiply.
package element

// Stable panic messages for programmer errors (mirrors option-constructor
// policy: panic only on nonsensical construction, never on data).
const (
	panicModulusInvalid = "element: NewModulus: modulus must be in [2, 2^32)"
	panicModulusMixed   = "element: Mod: mismatched moduli"
)

// maxModulus keeps v*w below 2^64 for v,w < modulus.
const maxModulus = 1 << 32

// Mod is a residue value ∈ [0, modulus). The zero value is unusable;
// build residues through NewModulus.
type Mod struct {
	value   uint64 // canonical residue, always < modulus
	modulus uint64 // shared by every operand of one computation
}

// Modulus is a factory binding residues to one modulus, so call sites
// never repeat the modulus on every literal.
type Modulus struct {
	m uint64
}

// NewModulus returns a residue factory for the given modulus.
// Panics when the modulus is < 2 or ≥ 2^32 (programmer error).
func NewModulus(m uint64) Modulus {
	if m < 2 || m >= maxModulus {
		panic(panicModulusInvalid)
	}

	return Modulus{m: m}
}

// New returns the canonical residue of v.
func (f Modulus) New(v uint64) Mod { return Mod{value: v % f.m, modulus: f.m} }

// NewInt returns the canonical residue of a possibly negative integer.
func (f Modulus) NewInt(v int64) Mod {
	r := v % int64(f.m)
	if r < 0 {
		r += int64(f.m)
	}

	return Mod{value: uint64(r), modulus: f.m}
}

// sameModulus guards binary operations; mixing moduli is a programmer
// error, not a data condition.
func (x Mod) sameModulus(y Mod) {
	if x.modulus != y.modulus {
		panic(panicModulusMixed)
	}
}

// Value returns the canonical residue in [0, modulus).
func (x Mod) Value() uint64 { return x.value }

// Plus returns (x + y) mod m. O(1).
func (x Mod) Plus(y Mod) Mod {
	x.sameModulus(y)

	return Mod{value: (x.value + y.value) % x.modulus, modulus: x.modulus}
}

// Opposite returns (−x) mod m. O(1).
func (x Mod) Opposite() Mod {
	return Mod{value: (x.modulus - x.value) % x.modulus, modulus: x.modulus}
}

// Times returns (x × y) mod m. The modulus cap guarantees the product
// fits in uint64. O(1).
func (x Mod) Times(y Mod) Mod {
	x.sameModulus(y)

	return Mod{value: (x.value * y.value) % x.modulus, modulus: x.modulus}
}

// Inverse returns the multiplicative inverse via the extended Euclidean
// algorithm, or ok=false when gcd(x, m) ≠ 1 (always the case for zero).
// O(log m).
func (x Mod) Inverse() (Mod, bool) {
	if x.value == 0 {
		return Mod{modulus: x.modulus}, false
	}

	// Extended Euclid on (value, modulus); coefficients tracked in t.
	var t, newT = int64(0), int64(1)
	var r, newR = int64(x.modulus), int64(x.value)
	for newR != 0 {
		q := r / newR
		t, newT = newT, t-q*newT
		r, newR = newR, r-q*newR
	}
	if r != 1 {
		// x shares a factor with the modulus: no inverse in this ring.
		return Mod{modulus: x.modulus}, false
	}
	if t < 0 {
		t += int64(x.modulus)
	}

	return Mod{value: uint64(t), modulus: x.modulus}, true
}

// Equal reports exact equality. Residues from different moduli are never
// equal.
func (x Mod) Equal(y Mod) bool {
	return x.modulus == y.modulus && x.value == y.value
}
