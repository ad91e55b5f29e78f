// Package matrix offers generic matrices over any ring.Element type,
// the LU decomposition engine and the algebra facade built on it.
//
// The matrix package provides:
//
//   - Storage variants (a closed set, dispatched by type switch in the
//     kernels): Dense (flat row-major slice), Table (a table of dense
//     row-vectors), Sparse (index-pair map with an explicit zero) and
//     Transposed (a zero-copy row/column-swapped view).
//   - Kernels: Add, Sub, Negate, Scale, Mul, MulVec, Tensor, Trace,
//     Diagonal, SubMatrix, Transpose — each validating fail-fast and
//     preserving left-to-right multiplicative order, so non-commutative
//     element rings (matrices of matrices) stay correct.
//   - LU engine: Doolittle factorization with partial pivoting behind a
//     pluggable comparator, backing Determinant, Inverse, Solve and
//     PseudoInverse.
//   - Algebra facade: Pow (binary exponentiation), Divide, Adjoint,
//     Cofactor, Vectorization.
//
// Matrices are immutable values: construction copies its input, kernels
// allocate fresh results, and published matrices are freely shareable
// across goroutines. The one deliberate exception to "copy" is the
// Transposed view — an O(1) adapter that forwards reads to its source and
// is valid only while the source outlives it.
//
// Large multiplications partition the output's column range into
// independent blocks and evaluate them fork-join style; the threshold and
// worker count are per-call options and the result is identical on both
// paths. There is no other concurrency and no global state anywhere in
// the package.
package matrix
