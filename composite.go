package specification

import "slices"

// Composite holds the ordered children of a combinator.
//
// Children are append-only: once attached they are never removed, replaced
// or reordered. A child should be attached to exactly one parent and never
// beneath itself; the tree is not checked for cycles.
type Composite[T any] struct {
	children []Specification[T]
}

// AddChild appends a child specification. Nil children are ignored.
func (c *Composite[T]) AddChild(child Specification[T]) {
	if child == nil {
		return
	}
	c.children = append(c.children, child)
}

// Children returns the attached children in insertion order.
// The returned slice is a copy.
func (c *Composite[T]) Children() []Specification[T] {
	return slices.Clone(c.children)
}

// Len returns the number of attached children
func (c *Composite[T]) Len() int {
	return len(c.children)
}

func newComposite[T any](children []Specification[T]) Composite[T] {
	var c Composite[T]
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}
