package expression

import "fmt"

// Combine joins two predicates with AndAlso or OrElse into one predicate over
// a single fresh parameter. Each body has its own parameter replaced by the
// shared one, so predicates written independently can be merged safely. The
// inputs are left untouched.
func Combine[T any](left, right *Predicate[T], op BinaryOperator) (*Predicate[T], error) {
	if !op.IsLogical() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
	}
	if left == nil || left.lambda == nil {
		return nil, fmt.Errorf("%w: left predicate is nil", ErrInvalidExpression)
	}
	if right == nil || right.lambda == nil {
		return nil, fmt.Errorf("%w: right predicate is nil", ErrInvalidExpression)
	}
	lp := left.Parameter()
	p := Parameter(lp.Name(), lp.Type())
	l := Replace(left.Body(), lp, p)
	if isNil(l) {
		return nil, fmt.Errorf("%w: %s: replacing the parameter left no body", ErrInvalidExpression, left)
	}
	r := Replace(right.Body(), right.Parameter(), p)
	if isNil(r) {
		return nil, fmt.Errorf("%w: %s: replacing the parameter left no body", ErrInvalidExpression, right)
	}
	return NewPredicate[T](Lambda(MakeBinary(op, l, r), p))
}

// AndAlso is Combine with OpAndAlso.
func AndAlso[T any](left, right *Predicate[T]) (*Predicate[T], error) {
	return Combine(left, right, OpAndAlso)
}

// OrElse is Combine with OpOrElse.
func OrElse[T any](left, right *Predicate[T]) (*Predicate[T], error) {
	return Combine(left, right, OpOrElse)
}

// Not negates the body of p under the same parameter.
func Not[T any](p *Predicate[T]) (*Predicate[T], error) {
	if p == nil || p.lambda == nil {
		return nil, fmt.Errorf("%w: predicate is nil", ErrInvalidExpression)
	}
	return NewPredicate[T](Lambda(Negate(p.Body()), p.Parameter()))
}
