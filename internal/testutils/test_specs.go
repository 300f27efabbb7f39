package testutils

import (
	"fmt"

	"github.com/effectus/specification"
)

// Constant is a leaf specification that always returns the same verdict
type Constant[T any] struct {
	Verdict bool
}

// True returns a leaf that is satisfied by every candidate
func True[T any]() *Constant[T] {
	return &Constant[T]{Verdict: true}
}

// False returns a leaf that is satisfied by no candidate
func False[T any]() *Constant[T] {
	return &Constant[T]{Verdict: false}
}

// IsSatisfiedBy implements specification.Specification
func (c *Constant[T]) IsSatisfiedBy(T) bool {
	return c.Verdict
}

// String renders the verdict as T or F
func (c *Constant[T]) String() string {
	if c.Verdict {
		return "T"
	}
	return "F"
}

// Counting wraps a specification and records how many times it was evaluated
type Counting[T any] struct {
	Inner specification.Specification[T]
	Calls int
}

// Count wraps inner in a Counting specification
func Count[T any](inner specification.Specification[T]) *Counting[T] {
	return &Counting[T]{Inner: inner}
}

// IsSatisfiedBy implements specification.Specification
func (c *Counting[T]) IsSatisfiedBy(candidate T) bool {
	c.Calls++
	return c.Inner.IsSatisfiedBy(candidate)
}

// String renders the wrapped specification
func (c *Counting[T]) String() string {
	return fmt.Sprintf("count(%v)", c.Inner)
}

// Leaves converts a verdict list into constant leaves, preserving order
func Leaves[T any](verdicts ...bool) []specification.Specification[T] {
	leaves := make([]specification.Specification[T], len(verdicts))
	for i, v := range verdicts {
		leaves[i] = &Constant[T]{Verdict: v}
	}
	return leaves
}
