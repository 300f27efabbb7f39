package specification

// AndSpecification is satisfied when every child is satisfied.
// Children are evaluated in insertion order and evaluation stops at the
// first child that is not satisfied. With no children it is never satisfied.
type AndSpecification[T any] struct {
	Composite[T]
}

// NewAnd creates a conjunction over the given children
func NewAnd[T any](children ...Specification[T]) *AndSpecification[T] {
	return &AndSpecification[T]{Composite: newComposite(children)}
}

// Operator returns the combinator name
func (s *AndSpecification[T]) Operator() string {
	return "AND"
}

// IsSatisfiedBy implements Specification
func (s *AndSpecification[T]) IsSatisfiedBy(candidate T) bool {
	if len(s.children) == 0 {
		return false
	}

	for _, child := range s.children {
		if !child.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}
