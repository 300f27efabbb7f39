// Package specification implements the Specification pattern: business rules
// expressed as predicates over a candidate and combined with AND, OR and XOR
// into a predicate tree.
package specification

// Specification is a business rule evaluated against a candidate
type Specification[T any] interface {
	// IsSatisfiedBy reports whether the candidate satisfies the rule
	IsSatisfiedBy(candidate T) bool
}

// Func adapts an ordinary function to a Specification
type Func[T any] func(candidate T) bool

// IsSatisfiedBy implements Specification
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}
