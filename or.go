package specification

// OrSpecification is satisfied when at least one child is satisfied.
// Children are evaluated in insertion order and evaluation stops at the
// first satisfied child. With no children it is never satisfied.
type OrSpecification[T any] struct {
	Composite[T]
}

// NewOr creates a disjunction over the given children
func NewOr[T any](children ...Specification[T]) *OrSpecification[T] {
	return &OrSpecification[T]{Composite: newComposite(children)}
}

// Operator returns the combinator name
func (s *OrSpecification[T]) Operator() string {
	return "OR"
}

// IsSatisfiedBy implements Specification
func (s *OrSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, child := range s.children {
		if child.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}
