// SPDX-License-Identifier: MIT

// Package ring: pivot-ranking helpers for partial pivoting.
//
// Purpose:
//   - Provide the PivotComparator contract consumed by the LU engine.
//   - Provide Compare, the default magnitude heuristic, in ONE place so the
//     decomposition kernels never embed ranking policy of their own.
//
// Determinism:
//   - Compare itself is pure; ties ("equal rank") are resolved first-wins by
//     the pivot scan, which keeps row choice deterministic for any input.
package ring

// PivotComparator ranks two pivot candidates: negative when a ranks below
// b, positive when a ranks above b, zero for equal rank. The LU engine
// picks the highest-ranked candidate at or below the current column.
type PivotComparator[T any] func(a, b T) int

// Magnitude is the optional ordering capability a numeric element type may
// expose to make the default comparator rank it by absolute size.
type Magnitude interface {
	// Magnitude returns a non-negative absolute size; larger is a better
	// pivot.
	Magnitude() float64
}

// Compare is the default pivot heuristic:
//
//	Stage 1: an element equal to its own opposite ranks lowest — for most
//	         rings that is exactly the additive identity, the one pivot
//	         that can never be inverted.
//	Stage 2: when both candidates expose Magnitude, rank by absolute
//	         magnitude.
//	Stage 3: otherwise the pair ranks equal.
//
// This is a heuristic, NOT a total order: stage 3 gives non-numeric rings
// no preference between non-zero candidates. Stage 1 in characteristic-2
// rings ranks every element as zero; such rings should supply their own
// comparator (or disable pivoting) instead.
//
// Complexity: O(1) plus the cost of Equal/Opposite on T.
func Compare[T Element[T]](a, b T) int {
	// Stage 1: self-opposite elements behave as zero and rank lowest.
	aZero := a.Equal(a.Opposite())
	bZero := b.Equal(b.Opposite())
	switch {
	case aZero && bZero:
		return 0
	case aZero:
		return -1
	case bZero:
		return 1
	}

	// Stage 2: magnitude ranking when both sides expose the capability.
	ma, okA := any(a).(Magnitude)
	mb, okB := any(b).(Magnitude)
	if okA && okB {
		switch va, vb := ma.Magnitude(), mb.Magnitude(); {
		case va < vb:
			return -1
		case va > vb:
			return 1
		default:
			return 0
		}
	}

	// Stage 3: no ordering capability ⇒ equal rank (first-wins upstream).
	return 0
}
