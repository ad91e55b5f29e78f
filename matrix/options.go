// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Define the functional-options surface shared by Decompose, Mul and
//     the solver facades.
//   - Options are collected in a plain struct so every kernel reads one
//     resolved configuration instead of re-walking the option list.

package matrix

import (
	"fmt"
	"runtime"

	"github.com/dscho/algebra/ring"
)

// DefaultParallelThreshold is the output cell count (rows × cols) above
// which Mul switches to block-parallel execution.
const DefaultParallelThreshold = 64 * 64

// Option mutates the resolved Options. Constructors below panic on
// nonsensical values so misconfiguration fails loudly at build time
// rather than deep inside a kernel.
type Option[T ring.Element[T]] func(*Options[T])

// Options is the complete resolved configuration for matrix kernels.
type Options[T ring.Element[T]] struct {
	// pivot compares candidate pivots during LU decomposition; a nil
	// comparator disables row exchanges entirely.
	pivot ring.PivotComparator[T]

	// pivotSet distinguishes "never configured" (use ring.Compare)
	// from "explicitly disabled" (nil comparator, no pivoting).
	pivotSet bool

	// parallelThreshold is the minimum number of output cells before
	// Mul parallelizes. Zero means never parallelize.
	parallelThreshold int

	// workers caps the number of concurrent goroutines; zero resolves
	// to runtime.GOMAXPROCS(0) at gather time.
	workers int
}

// Pivot returns the resolved pivot comparator. The default, when no
// pivot option was supplied, is ring.Compare; an explicitly configured
// nil comparator stays nil.
func (o Options[T]) Pivot() ring.PivotComparator[T] {
	if !o.pivotSet {
		return ring.Compare[T]
	}

	return o.pivot
}

// ParallelThreshold reports the resolved cell-count threshold.
func (o Options[T]) ParallelThreshold() int { return o.parallelThreshold }

// Workers reports the resolved worker count (always ≥ 1).
func (o Options[T]) Workers() int { return o.workers }

// WithPivotComparator selects the pivot comparison strategy for
// Decompose. Passing nil disables partial pivoting; singular leading
// minors then surface as ErrSingular even when row exchanges could
// have rescued the factorization.
func WithPivotComparator[T ring.Element[T]](cmp ring.PivotComparator[T]) Option[T] {
	return func(o *Options[T]) {
		o.pivot = cmp
		o.pivotSet = true
	}
}

// WithoutPivoting disables row exchanges during LU decomposition.
// Equivalent to WithPivotComparator(nil).
func WithoutPivoting[T ring.Element[T]]() Option[T] {
	return func(o *Options[T]) {
		o.pivot = nil
		o.pivotSet = true
	}
}

// WithParallelThreshold sets the output-cell threshold above which Mul
// runs in parallel. Zero disables parallelism. Panics if cells < 0.
func WithParallelThreshold[T ring.Element[T]](cells int) Option[T] {
	if cells < 0 {
		panic(fmt.Sprintf("matrix: WithParallelThreshold(%d): threshold must be non-negative", cells))
	}

	return func(o *Options[T]) { o.parallelThreshold = cells }
}

// WithWorkers caps the number of goroutines used by parallel kernels.
// Panics if n <= 0; use WithParallelThreshold(0) to disable parallelism.
func WithWorkers[T ring.Element[T]](n int) Option[T] {
	if n <= 0 {
		panic(fmt.Sprintf("matrix: WithWorkers(%d): worker count must be positive", n))
	}

	return func(o *Options[T]) { o.workers = n }
}

// gatherOptions folds the supplied options over the defaults and
// resolves lazy values.
func gatherOptions[T ring.Element[T]](opts ...Option[T]) Options[T] {
	o := Options[T]{
		parallelThreshold: DefaultParallelThreshold,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers == 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
