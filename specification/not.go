package specification

// not is the inverse of Spec.
type not[T any] struct {
	base[T]
	Spec Specification[T]
}

func newNot[T any](spec Specification[T]) Specification[T] {
	n := &not[T]{Spec: spec}
	n.self = n
	return n
}

func (spec *not[T]) IsSatisfiedBy(t T) bool {
	return !spec.Spec.IsSatisfiedBy(t)
}

// Not of a not gives the original specification back.
func (spec *not[T]) Not() Specification[T] {
	return spec.Spec
}
