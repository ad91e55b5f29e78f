// Package element ships ready-made element types implementing the
// ring.Element contract, so callers can build vectors and matrices without
// writing their own scalar type first:
//
//   - Real     — float64 field; the numeric convenience type with native
//     []float64 lifting (Reals) and magnitude-ranked pivoting.
//   - Rational — exact arbitrary-size rational field over math/big, with
//     value semantics (operands are never mutated).
//   - Complex  — complex128 field ranked by modulus.
//   - Mod      — residues modulo a prime p: an exact finite field GF(p).
//
// All four are immutable values, safe to share across goroutines, and use
// exact equality (Real and Complex compare bit-for-bit — there is no
// epsilon anywhere in this package).
package element
