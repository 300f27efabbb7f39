package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/effectus/specification"
)

// combinator is implemented by the And, Or and Xor specifications
type combinator[T any] interface {
	Operator() string
	Children() []specification.Specification[T]
}

// TreeDumper dumps specification trees to a writer
type TreeDumper[T any] struct {
	writer io.Writer
	indent string
}

// NewTreeDumper creates a new tree dumper that writes to the given writer
func NewTreeDumper[T any](writer io.Writer) *TreeDumper[T] {
	return &TreeDumper[T]{
		writer: writer,
		indent: "  ",
	}
}

// NewStdoutTreeDumper creates a new tree dumper that writes to stdout
func NewStdoutTreeDumper[T any]() *TreeDumper[T] {
	return NewTreeDumper[T](os.Stdout)
}

// Dump writes the tree rooted at spec, one node per line.
// Combinators print their operator and child count, leaves print their
// String() form or, failing that, their Go type.
func (d *TreeDumper[T]) Dump(spec specification.Specification[T]) {
	d.dumpNode(spec, "")
}

func (d *TreeDumper[T]) dumpNode(spec specification.Specification[T], prefix string) {
	if c, ok := spec.(combinator[T]); ok {
		children := c.Children()
		fmt.Fprintf(d.writer, "%s%s (%d)\n", prefix, c.Operator(), len(children))
		for _, child := range children {
			d.dumpNode(child, prefix+d.indent)
		}
		return
	}

	if s, ok := spec.(fmt.Stringer); ok {
		fmt.Fprintf(d.writer, "%s%s\n", prefix, s.String())
		return
	}
	fmt.Fprintf(d.writer, "%s%T\n", prefix, spec)
}

// DumpString renders the tree rooted at spec as a string
func DumpString[T any](spec specification.Specification[T]) string {
	var sb strings.Builder
	NewTreeDumper[T](&sb).Dump(spec)
	return sb.String()
}
