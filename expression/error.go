package expression

import "errors"

var (
	// ErrInvalidExpression an expression is malformed: a missing body or operand,
	// an unknown field, mismatched operand types or a wrong arity.
	ErrInvalidExpression = errors.New("expression: invalid expression")

	// ErrInvalidOperator the operator cannot combine two predicates.
	ErrInvalidOperator = errors.New("expression: invalid operator")

	// ErrEvaluation evaluating an expression failed, e.g. a nil pointer in a field path.
	ErrEvaluation = errors.New("expression: evaluation failed")
)
