package specification

import "github.com/go-leo/specification/expression"

var (
	// ErrInvalidExpression a predicate is missing or malformed.
	ErrInvalidExpression = expression.ErrInvalidExpression

	// ErrInvalidOperator the operator is neither AndAlso nor OrElse.
	ErrInvalidOperator = expression.ErrInvalidOperator
)
