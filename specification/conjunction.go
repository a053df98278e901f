package specification

import "golang.org/x/exp/slices"

// conjunction is satisfied when all Specs are.
type conjunction[T any] struct {
	base[T]
	Specs []Specification[T]
}

func newConjunction[T any](specs []Specification[T]) Specification[T] {
	spec := &conjunction[T]{Specs: slices.Clone(specs)}
	spec.self = spec
	return spec
}

func (spec *conjunction[T]) IsSatisfiedBy(t T) bool {
	for _, spec := range spec.Specs {
		if !spec.IsSatisfiedBy(t) {
			return false
		}
	}
	return true
}
