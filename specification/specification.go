// Package specification implements the specification pattern over
// inspectable predicates.
//
// A specification is either expression-backed (ExpressionSpecification),
// which exposes its predicate through Expressive and can be translated by a
// query source, or function-backed (New), which can only be evaluated in
// memory. Both compose with And, Or, Not, Conjunction and Disjunction;
// combining two expression-backed specifications yields an expression-backed
// one.
package specification

import "reflect"

// Specification interface.
// Use New or NewExpression to create specifications.
type Specification[T any] interface {

	// IsSatisfiedBy check if t is satisfied by the specification.
	IsSatisfiedBy(t T) bool

	// And create a new specification that is the AND operation of the current specification and
	// another specification.
	And(another Specification[T]) Specification[T]

	// Or create a new specification that is the OR operation of the current specification and
	// another specification.
	Or(another Specification[T]) Specification[T]

	// Not create a new specification that is the NOT operation of the current specification.
	Not() Specification[T]

	// Conjunction create a new specification that is satisfied when the current specification and
	// all others are.
	Conjunction(others ...Specification[T]) Specification[T]

	// Disjunction create a new specification that is satisfied when the current specification or
	// any of the others is.
	Disjunction(others ...Specification[T]) Specification[T]
}

func And[T any](left Specification[T], right Specification[T]) Specification[T] {
	return left.And(right)
}

func Or[T any](left Specification[T], right Specification[T]) Specification[T] {
	return left.Or(right)
}

func Not[T any](spec Specification[T]) Specification[T] {
	return spec.Not()
}

// Conjunction folds specs with And. An empty conjunction is True. If every
// spec is expression-backed the result is too.
func Conjunction[T any](specs ...Specification[T]) Specification[T] {
	switch len(specs) {
	case 0:
		return True[T]()
	case 1:
		return specs[0]
	}
	if !allExpressive(specs) {
		return newConjunction(specs)
	}
	result := specs[0]
	for _, spec := range specs[1:] {
		result = result.And(spec)
	}
	return result
}

// Disjunction folds specs with Or. An empty disjunction is False. If every
// spec is expression-backed the result is too.
func Disjunction[T any](specs ...Specification[T]) Specification[T] {
	switch len(specs) {
	case 0:
		return False[T]()
	case 1:
		return specs[0]
	}
	if !allExpressive(specs) {
		return newDisjunction(specs)
	}
	result := specs[0]
	for _, spec := range specs[1:] {
		result = result.Or(spec)
	}
	return result
}

func allExpressive[T any](specs []Specification[T]) bool {
	for _, spec := range specs {
		if _, ok := spec.(Expressive[T]); !ok {
			return false
		}
	}
	return true
}

// identical reports whether a and b are the same specification instance.
func identical[T any](a, b Specification[T]) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	return ta == reflect.TypeOf(b) && ta.Comparable() && a == b
}
