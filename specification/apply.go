package specification

import (
	"iter"

	"github.com/destel/rill"
	"github.com/go-leo/specification/query"
	"github.com/samber/lo"
)

// Apply lazily filters seq by spec, keeping the order of seq. The result can
// be ranged over again if seq can.
func Apply[T any](seq iter.Seq[T], spec Specification[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range seq {
			if spec.IsSatisfiedBy(t) && !yield(t) {
				return
			}
		}
	}
}

// ApplySlice returns the items satisfying spec in their original order. The
// result is never nil.
func ApplySlice[T any](items []T, spec Specification[T]) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return spec.IsSatisfiedBy(item)
	})
}

// ApplyQuery narrows q by the predicate of spec. Nothing is evaluated until
// the query runs.
func ApplyQuery[T any](q query.Queryable[T], spec Expressive[T]) query.Queryable[T] {
	return q.Where(spec.Expression())
}

// Count returns the number of items satisfying spec.
func Count[T any](items []T, spec Specification[T]) int {
	return lo.CountBy(items, spec.IsSatisfiedBy)
}

// Any reports whether at least one item satisfies spec.
func Any[T any](items []T, spec Specification[T]) bool {
	return lo.SomeBy(items, spec.IsSatisfiedBy)
}

// All reports whether every item satisfies spec. It is true for no items.
func All[T any](items []T, spec Specification[T]) bool {
	return lo.EveryBy(items, spec.IsSatisfiedBy)
}

// ApplyStream filters a rill stream with n concurrent evaluations, keeping
// the order of in. Evaluation errors of expression-backed specifications are
// sent down the stream instead of panicking; errors already in the stream
// pass through.
func ApplyStream[T any](in <-chan rill.Try[T], n int, spec Specification[T]) <-chan rill.Try[T] {
	return rill.OrderedFilter(in, n, func(t T) (bool, error) {
		if expressive, ok := spec.(Expressive[T]); ok {
			return expressive.Expression().Evaluate(t)
		}
		return spec.IsSatisfiedBy(t), nil
	})
}
