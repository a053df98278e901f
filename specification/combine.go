package specification

import (
	"fmt"

	"github.com/go-leo/specification/expression"
)

type unwrapper[T any] interface {
	unwrap() *ExpressionSpecification[T]
}

// Combine joins two expression-backed specifications with AndAlso or OrElse
// following the rules of ExpressionSpecification.And and Or, but reports
// errors instead of panicking.
func Combine[T any](left, right Expressive[T], op expression.BinaryOperator) (*ExpressionSpecification[T], error) {
	l, err := asExpressionSpecification(left)
	if err != nil {
		return nil, err
	}
	if right == nil {
		return nil, fmt.Errorf("%w: nil specification", ErrInvalidExpression)
	}
	combined, err := l.combineExpression(right.Expression(), op)
	if err != nil {
		return nil, err
	}
	return l.result(combined), nil
}

// AndAlso is Combine with expression.OpAndAlso.
func AndAlso[T any](left, right Expressive[T]) (*ExpressionSpecification[T], error) {
	return Combine(left, right, expression.OpAndAlso)
}

// OrElse is Combine with expression.OpOrElse.
func OrElse[T any](left, right Expressive[T]) (*ExpressionSpecification[T], error) {
	return Combine(left, right, expression.OpOrElse)
}

// Negate is the error returning form of Not for expression-backed specifications.
func Negate[T any](spec Expressive[T]) (*ExpressionSpecification[T], error) {
	s, err := asExpressionSpecification(spec)
	if err != nil {
		return nil, err
	}
	negated, err := expression.Not(s.predicate)
	if err != nil {
		return nil, err
	}
	return s.derive(negated), nil
}

func asExpressionSpecification[T any](spec Expressive[T]) (*ExpressionSpecification[T], error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil specification", ErrInvalidExpression)
	}
	if u, ok := spec.(unwrapper[T]); ok {
		if s := u.unwrap(); s != nil && s.predicate != nil {
			return s, nil
		}
	}
	predicate := spec.Expression()
	if predicate == nil {
		return nil, fmt.Errorf("%w: nil predicate", ErrInvalidExpression)
	}
	return NewExpression(predicate), nil
}
