// Package vector offers fixed-dimension vectors over any ring.Element type.
//
// The vector package provides:
//
//   - Dense storage: a contiguous, O(1)-indexable element slice.
//   - Sparse storage: only non-zero entries in an index map with an explicit
//     zero element for absent indices, kept in canonical form (no stored
//     entry ever equals zero).
//   - Kernels: Add, Sub, Negate, Scale, Dot, Cross, SubVector — each
//     validating fail-fast and preserving left-to-right multiplicative
//     order for non-commutative element rings.
//
// Vectors are immutable values: construction copies its input, kernels
// allocate fresh results and operands are never mutated, so published
// vectors are freely shareable across goroutines without locking.
//
// Dense is best when most entries are meaningful; Sparse pays one map
// lookup per access but stores only what is non-zero.
package vector
