package query

import (
	"context"
	"fmt"

	"github.com/ahmetb/go-linq/v3"
	"github.com/go-leo/specification/expression"
	"golang.org/x/exp/slices"
)

type linqQuery[T any] struct {
	source     linq.Query
	predicates []*expression.Predicate[T]
}

// FromSlice returns an in-memory Queryable over items. Predicates are
// evaluated when All runs, so later changes to the elements of items are
// visible.
func FromSlice[T any](items []T) Queryable[T] {
	return FromLinq[T](linq.From(items))
}

// FromLinq returns a Queryable over a go-linq query whose elements are of
// type T. Elements of any other type fail All with ErrEvaluation.
func FromLinq[T any](source linq.Query) Queryable[T] {
	return &linqQuery[T]{source: source}
}

func (q *linqQuery[T]) Where(predicate *expression.Predicate[T]) Queryable[T] {
	predicates := slices.Clip(slices.Clone(q.predicates))
	return &linqQuery[T]{source: q.source, predicates: append(predicates, predicate)}
}

func (q *linqQuery[T]) All(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, predicate := range q.predicates {
		if predicate == nil {
			return nil, fmt.Errorf("%w: nil predicate", expression.ErrInvalidExpression)
		}
	}

	// the first failure stops every later Where from matching
	var err error
	filtered := q.source.Where(func(item any) bool {
		if err != nil {
			return false
		}
		if _, ok := item.(T); !ok {
			err = fmt.Errorf("%w: element %v is %T, want %T", expression.ErrEvaluation, item, item, *new(T))
			return false
		}
		err = ctx.Err()
		return err == nil
	})
	for _, predicate := range q.predicates {
		filtered = filtered.Where(func(item any) bool {
			if err != nil {
				return false
			}
			ok, evalErr := predicate.Evaluate(item.(T))
			if evalErr != nil {
				err = evalErr
				return false
			}
			return ok
		})
	}

	result := make([]T, 0)
	filtered.ToSlice(&result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
