package pathutil

import (
	"fmt"
	"strings"
)

// Path is a string using gjson path syntax
// Examples:
//   - "customer.name"
//   - "orders[0].total"
//   - "order.items.2.sku"
type Path string

// Namespace returns the first segment of the path (before first dot)
func (p Path) Namespace() string {
	str := string(p)
	idx := strings.IndexAny(str, ".[")
	if idx == -1 {
		return str
	}
	return str[:idx]
}

// String returns the path as a string
func (p Path) String() string {
	return string(p)
}

// Child returns a new path by appending a child segment
func (p Path) Child(segment string) Path {
	if p == "" {
		return Path(segment)
	}
	return Path(fmt.Sprintf("%s.%s", p, segment))
}

// Segments splits the path into its parts, treating [n] as a segment
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(p.dotted(), ".")
}

// dotted rewrites bracket indices to the dotted form gjson expects
func (p Path) dotted() string {
	s := strings.ReplaceAll(string(p), "[", ".")
	return strings.ReplaceAll(s, "]", "")
}
