package specification

import "golang.org/x/exp/slices"

// disjunction is satisfied when any of Specs is.
type disjunction[T any] struct {
	base[T]
	Specs []Specification[T]
}

func newDisjunction[T any](specs []Specification[T]) Specification[T] {
	spec := &disjunction[T]{Specs: slices.Clone(specs)}
	spec.self = spec
	return spec
}

func (spec *disjunction[T]) IsSatisfiedBy(t T) bool {
	for _, spec := range spec.Specs {
		if spec.IsSatisfiedBy(t) {
			return true
		}
	}
	return false
}
