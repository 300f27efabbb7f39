package eval

import (
	"errors"
	"fmt"

	"github.com/effectus/specification"
	"github.com/effectus/specification/pathutil"
)

var (
	// ErrEmptyPath is returned when a fact predicate has no path
	ErrEmptyPath = errors.New("empty fact path")
	// ErrUnknownOperator is returned for an operator CompareFact does not support
	ErrUnknownOperator = errors.New("unknown operator")
)

var _ specification.Specification[pathutil.Facts] = (*FactPredicate)(nil)

// FactPredicate is a leaf rule comparing the fact at Path with Lit.
// A fact that cannot be resolved never satisfies the predicate.
type FactPredicate struct {
	Path pathutil.Path // The fact path to get the value from
	Op   Op            // The comparison operator
	Lit  interface{}   // The literal value to compare against
}

// NewFactPredicate creates a predicate, rejecting empty paths and unknown operators
func NewFactPredicate(path pathutil.Path, op Op, lit interface{}) (*FactPredicate, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if !op.Valid() {
		return nil, fmt.Errorf("predicate on %s: %w: %q", path, ErrUnknownOperator, op)
	}
	return &FactPredicate{Path: path, Op: op, Lit: lit}, nil
}

// IsSatisfiedBy implements specification.Specification
func (p *FactPredicate) IsSatisfiedBy(facts pathutil.Facts) bool {
	if facts == nil {
		return false
	}

	value, exists := facts.Get(p.Path)
	if !exists {
		return false
	}
	return CompareFact(value, p.Op, p.Lit)
}

func (p *FactPredicate) String() string {
	if s, ok := p.Lit.(string); ok {
		return fmt.Sprintf("%s %s %q", p.Path, p.Op, s)
	}
	return fmt.Sprintf("%s %s %v", p.Path, p.Op, p.Lit)
}
