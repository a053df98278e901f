package specification

// or is satisfied when Left or Right is.
type or[T any] struct {
	base[T]
	Left  Specification[T]
	Right Specification[T]
}

func newOr[T any](left Specification[T], right Specification[T]) Specification[T] {
	spec := &or[T]{Left: left, Right: right}
	spec.self = spec
	return spec
}

func (spec *or[T]) IsSatisfiedBy(t T) bool {
	return spec.Left.IsSatisfiedBy(t) || spec.Right.IsSatisfiedBy(t)
}
