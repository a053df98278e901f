package expression

import (
	"fmt"
	"reflect"
	"sync"
)

// Predicate is a validated lambda with a single parameter of type T and a
// bool body. It is immutable and safe for concurrent use.
type Predicate[T any] struct {
	lambda   *LambdaExpression
	once     sync.Once
	compiled func(T) bool
}

// NewPredicate checks that lambda takes exactly one parameter of type T,
// returns bool, passes Validate and refers to no parameter it does not bind.
func NewPredicate[T any](lambda *LambdaExpression) (*Predicate[T], error) {
	if lambda == nil {
		return nil, fmt.Errorf("%w: nil lambda", ErrInvalidExpression)
	}
	if len(lambda.params) != 1 || lambda.params[0] == nil {
		return nil, fmt.Errorf("%w: %s: want exactly one parameter, got %d", ErrInvalidExpression, lambda, len(lambda.params))
	}
	want := reflect.TypeFor[T]()
	if got := lambda.params[0].Type(); got != want {
		return nil, fmt.Errorf("%w: %s: parameter is %v, want %s", ErrInvalidExpression, lambda, got, want)
	}
	if isNil(lambda.body) {
		return nil, fmt.Errorf("%w: %s: missing body", ErrInvalidExpression, lambda)
	}
	if !isBool(lambda.body.Type()) {
		return nil, fmt.Errorf("%w: %s: body is %v, not bool", ErrInvalidExpression, lambda, lambda.body.Type())
	}
	if err := Validate(lambda); err != nil {
		return nil, err
	}
	if free := FreeParameters(lambda); len(free) > 0 {
		return nil, fmt.Errorf("%w: %s: parameter %s is not bound", ErrInvalidExpression, lambda, free[0])
	}
	return &Predicate[T]{lambda: lambda}, nil
}

// Where builds a predicate from a body over a fresh parameter named "e".
//
//	adult, err := expression.Where[Person](func(e *expression.ParameterExpression) expression.Expression {
//		return expression.GreaterThan(expression.Field(e, "Age"), expression.Constant(18))
//	})
func Where[T any](build func(e *ParameterExpression) Expression) (*Predicate[T], error) {
	e := ParameterOf[T]("e")
	return NewPredicate[T](Lambda(build(e), e))
}

// Must returns p and panics if err is not nil. It is meant for package-level
// predicate variables.
func Must[T any](p *Predicate[T], err error) *Predicate[T] {
	if err != nil {
		panic(err)
	}
	return p
}

// Lambda returns the underlying lambda.
func (p *Predicate[T]) Lambda() *LambdaExpression { return p.lambda }

// Parameter returns the entity parameter.
func (p *Predicate[T]) Parameter() *ParameterExpression { return p.lambda.params[0] }

// Body returns the bool body.
func (p *Predicate[T]) Body() Expression { return p.lambda.body }

func (p *Predicate[T]) String() string { return p.lambda.String() }

// Evaluate runs the predicate against t.
func (p *Predicate[T]) Evaluate(t T) (bool, error) {
	v, err := Evaluate(p.lambda.body, Bindings{p.Parameter(): reflect.ValueOf(&t).Elem()})
	if err != nil {
		return false, err
	}
	return v.Bool(), nil
}

// Compile returns the predicate as a Go function. The function is built once
// and panics if evaluation fails, for example on a nil pointer in a field path.
func (p *Predicate[T]) Compile() func(T) bool {
	p.once.Do(func() {
		p.compiled = func(t T) bool {
			ok, err := p.Evaluate(t)
			if err != nil {
				panic(err)
			}
			return ok
		}
	})
	return p.compiled
}
