package specification

// base implements the combinators of the function-backed nodes. self is the
// node that embeds it, so that combining does not lose the outer node.
type base[T any] struct {
	self Specification[T]
}

func (spec *base[T]) And(another Specification[T]) Specification[T] {
	if identical(spec.self, another) {
		return spec.self
	}
	return newAnd(spec.self, another)
}

func (spec *base[T]) Or(another Specification[T]) Specification[T] {
	if identical(spec.self, another) {
		return spec.self
	}
	return newOr(spec.self, another)
}

func (spec *base[T]) Not() Specification[T] {
	return newNot(spec.self)
}

func (spec *base[T]) Conjunction(others ...Specification[T]) Specification[T] {
	return Conjunction(append([]Specification[T]{spec.self}, others...)...)
}

func (spec *base[T]) Disjunction(others ...Specification[T]) Specification[T] {
	return Disjunction(append([]Specification[T]{spec.self}, others...)...)
}

type funcSpecification[T any] struct {
	base[T]
	predicate func(t T) bool
}

// New creates a function-backed specification. It can be evaluated and
// combined but has no expression, so query sources cannot translate it.
func New[T any](predicate func(t T) bool) Specification[T] {
	spec := &funcSpecification[T]{predicate: predicate}
	spec.self = spec
	return spec
}

func (spec *funcSpecification[T]) IsSatisfiedBy(t T) bool {
	return spec.predicate(t)
}
