package specification

// and is satisfied when both Left and Right are.
type and[T any] struct {
	base[T]
	Left  Specification[T]
	Right Specification[T]
}

func newAnd[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &and[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

func (spec *and[T]) IsSatisfiedBy(t T) bool {
	return spec.Left.IsSatisfiedBy(t) && spec.Right.IsSatisfiedBy(t)
}
