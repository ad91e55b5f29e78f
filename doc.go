// Package algebra is a generic linear-algebra toolkit over abstract
// algebraic structures — vectors and matrices whose elements can be any
// type closed under addition, negation, multiplication and inversion.
//
// 🚀 What is algebra?
//
//	A modern, deterministic library that brings together:
//		• Ring/Field element contract: one generic capability set for any element type
//		• Concrete elements: Real, Rational (exact), Complex, Mod (prime residue field)
//		• Vectors: dense and sparse storage, sub-vectors, dot & cross products
//		• Matrices: dense, row-table, sparse and zero-copy transposed views
//		• LU engine: Doolittle factorization with pluggable partial pivoting,
//		  backing determinant, inverse and linear-system solves
//		• Algebra facade: pow, tensor (Kronecker), adjoint, cofactor,
//		  pseudo-inverse, vectorization — correct for non-commutative rings
//
// ✨ Why choose algebra?
//
//   - Exact semantics – multiplicative order is fixed left-to-right everywhere,
//     so non-commutative element rings (e.g. matrices of matrices) stay correct
//   - Deterministic – no global state; the pivot comparator is an explicit
//     per-call option, ties resolve first-wins
//   - Fail-fast – unified sentinel errors (dimension mismatch, index out of
//     bounds, singular matrix, bad sparse configuration), matched via errors.Is
//   - Scales up – large multiplications fork independent column blocks and
//     join strictly; small ones stay sequential, results identical either way
//
// Everything is organized under four subpackages:
//
//	ring/    — the Element capability contract and pivot-ranking helpers
//	element/ — ready-made element types (Real, Rational, Complex, Mod)
//	vector/  — fixed-dimension vectors: dense & sparse kernels
//	matrix/  — matrices, the LU decomposition engine and the algebra facade
//
// See each package's doc.go for the full contract and usage examples.
package algebra
