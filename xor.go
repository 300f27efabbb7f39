package specification

// XorSpecification is satisfied when exactly one child is satisfied.
// It is not a pairwise XOR chain: three satisfied children yield false.
// Evaluation stops as soon as a second satisfied child is found. With no
// children it is never satisfied.
type XorSpecification[T any] struct {
	Composite[T]
}

// NewXor creates an exactly-one combinator over the given children
func NewXor[T any](children ...Specification[T]) *XorSpecification[T] {
	return &XorSpecification[T]{Composite: newComposite(children)}
}

// Operator returns the combinator name
func (s *XorSpecification[T]) Operator() string {
	return "XOR"
}

// IsSatisfiedBy implements Specification
func (s *XorSpecification[T]) IsSatisfiedBy(candidate T) bool {
	found := false
	for _, child := range s.children {
		if !child.IsSatisfiedBy(candidate) {
			continue
		}
		if found {
			return false
		}
		found = true
	}
	return found
}
