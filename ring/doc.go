// Package ring declares the algebraic capability contract shared by every
// vector and matrix element type in this module, plus the pivot-ranking
// helpers used by the LU decomposition engine.
//
// The contract is deliberately minimal — four closure operations and exact
// equality:
//
//   - Plus(y)     — addition; MUST commute (x+y == y+x)
//   - Opposite()  — additive inverse (−x)
//   - Times(y)    — multiplication; MAY be non-commutative
//   - Inverse()   — multiplicative inverse, reported as (value, ok); ok=false
//     means the element has no inverse (e.g. the additive identity)
//   - Equal(y)    — exact structural equality, never approximate
//
// A type implementing all of the above over itself (the self-referential
// generic pattern `T Element[T]`) can populate any Vector or Matrix in this
// module, including non-commutative rings such as matrices-of-matrices.
//
// Identities are derived, never hard-coded: Zero(x) = x + (−x) and
// One(x) = x·x⁻¹, so algorithms work for rings with no numeric "0"/"1"
// literal.
//
// Pivot ranking: LU partial pivoting needs to ask "which candidate is the
// largest?". Compare is the default heuristic — self-opposite elements rank
// lowest (they behave as zero), types exposing the optional Magnitude
// capability rank by absolute magnitude, and anything else ranks equal.
// It is a documented heuristic, not a total order; ties are broken
// first-wins by the caller so pivot choice stays deterministic.
package ring
