package specification

import (
	"fmt"

	"github.com/go-leo/specification/expression"
)

// Expressive is a specification whose predicate can be inspected, for
// example by a query source that translates it.
type Expressive[T any] interface {
	Specification[T]

	// Expression returns the predicate of the specification.
	Expression() *expression.Predicate[T]
}

// ExpressionSpecification is a specification backed by a predicate
// expression. Generated specifications embed it.
type ExpressionSpecification[T any] struct {
	predicate *expression.Predicate[T]
	options   *option
	self      Specification[T]
}

// NewExpression creates an expression-backed specification. It panics with
// ErrInvalidExpression if predicate is nil.
func NewExpression[T any](predicate *expression.Predicate[T], opts ...Option) *ExpressionSpecification[T] {
	if predicate == nil {
		panic(fmt.Errorf("%w: nil predicate", ErrInvalidExpression))
	}
	return &ExpressionSpecification[T]{predicate: predicate, options: newOption(opts...)}
}

// True returns a specification satisfied by every value.
func True[T any](opts ...Option) *ExpressionSpecification[T] {
	return constant[T](true, opts...)
}

// False returns a specification satisfied by no value.
func False[T any](opts ...Option) *ExpressionSpecification[T] {
	return constant[T](false, opts...)
}

func constant[T any](value bool, opts ...Option) *ExpressionSpecification[T] {
	predicate := expression.Must(expression.Where[T](func(*expression.ParameterExpression) expression.Expression {
		return expression.Constant(value)
	}))
	return NewExpression(predicate, opts...)
}

func (spec *ExpressionSpecification[T]) Expression() *expression.Predicate[T] {
	return spec.predicate
}

// IsSatisfiedBy evaluates the predicate against t. It panics if the
// evaluation fails, for example on a nil pointer in a field path.
func (spec *ExpressionSpecification[T]) IsSatisfiedBy(t T) bool {
	return spec.predicate.Compile()(t)
}

func (spec *ExpressionSpecification[T]) And(another Specification[T]) Specification[T] {
	return spec.combine(another, expression.OpAndAlso)
}

func (spec *ExpressionSpecification[T]) Or(another Specification[T]) Specification[T] {
	return spec.combine(another, expression.OpOrElse)
}

func (spec *ExpressionSpecification[T]) Not() Specification[T] {
	negated, err := expression.Not(spec.predicate)
	if err != nil {
		panic(err)
	}
	return spec.derive(negated)
}

func (spec *ExpressionSpecification[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction(append([]Specification[T]{spec.outer()}, others...)...)
}

func (spec *ExpressionSpecification[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction(append([]Specification[T]{spec.outer()}, others...)...)
}

// Bind records outer as the value embedding spec, so that combining outer
// with itself returns outer. Generated constructors call it.
func (spec *ExpressionSpecification[T]) Bind(outer Specification[T]) {
	spec.self = outer
}

func (spec *ExpressionSpecification[T]) outer() Specification[T] {
	if spec.self != nil {
		return spec.self
	}
	return spec
}

// Strategy returns the combination strategy.
func (spec *ExpressionSpecification[T]) Strategy() Strategy {
	return spec.options.Strategy
}

func (spec *ExpressionSpecification[T]) String() string {
	if spec.options.Name != "" {
		return spec.options.Name
	}
	return spec.predicate.String()
}

// unwrap gives access to the embedded specification of generated types.
func (spec *ExpressionSpecification[T]) unwrap() *ExpressionSpecification[T] {
	return spec
}

func (spec *ExpressionSpecification[T]) combine(another Specification[T], op expression.BinaryOperator) Specification[T] {
	if another == nil {
		panic(fmt.Errorf("%w: nil specification", ErrInvalidExpression))
	}
	if outer := spec.outer(); identical(outer, another) {
		return outer
	}
	expressive, ok := another.(Expressive[T])
	if !ok {
		if op == expression.OpAndAlso {
			return newAnd[T](spec.outer(), another)
		}
		return newOr[T](spec.outer(), another)
	}
	combined, err := spec.combineExpression(expressive.Expression(), op)
	if err != nil {
		panic(err)
	}
	return spec.result(combined)
}

// combineExpression joins the predicates. The same predicate yields the
// receiver's own; a shared parameter joins the bodies directly; otherwise the
// strategy decides.
func (spec *ExpressionSpecification[T]) combineExpression(other *expression.Predicate[T], op expression.BinaryOperator) (*expression.Predicate[T], error) {
	if !op.IsLogical() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOperator, op)
	}
	if other == nil {
		return nil, fmt.Errorf("%w: nil predicate", ErrInvalidExpression)
	}
	if other == spec.predicate {
		return spec.predicate, nil
	}
	param := spec.predicate.Parameter()
	if other.Parameter() == param {
		return expression.NewPredicate[T](expression.Lambda(expression.MakeBinary(op, spec.predicate.Body(), other.Body()), param))
	}
	if spec.options.Strategy == Unify {
		return expression.Combine(spec.predicate, other, op)
	}
	invoked := expression.Invoke(other.Lambda(), param)
	return expression.NewPredicate[T](expression.Lambda(expression.MakeBinary(op, spec.predicate.Body(), invoked), param))
}

func (spec *ExpressionSpecification[T]) result(predicate *expression.Predicate[T]) *ExpressionSpecification[T] {
	if predicate == spec.predicate {
		return spec
	}
	return spec.derive(predicate)
}

func (spec *ExpressionSpecification[T]) derive(predicate *expression.Predicate[T]) *ExpressionSpecification[T] {
	return &ExpressionSpecification[T]{predicate: predicate, options: spec.options.derive()}
}
