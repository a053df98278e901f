// Package query defines deferred query sources that are filtered by
// predicate expressions.
package query

import (
	"context"

	"github.com/go-leo/specification/expression"
)

// Queryable is a deferred source of T. Where narrows the source without
// running anything; All executes it.
type Queryable[T any] interface {
	// Where returns a source that also requires predicate. The receiver is
	// not changed.
	Where(predicate *expression.Predicate[T]) Queryable[T]

	// All runs the query and returns the matching values.
	All(ctx context.Context) ([]T, error)
}
