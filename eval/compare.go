package eval

import (
	"reflect"
	"strings"
)

// Op is a comparison operator between a fact value and a literal
type Op string

const (
	OpEqual        Op = "=="
	OpNotEqual     Op = "!="
	OpLess         Op = "<"
	OpLessEqual    Op = "<="
	OpGreater      Op = ">"
	OpGreaterEqual Op = ">="
	OpIn           Op = "in"
	OpContains     Op = "contains"
)

// Valid reports whether op is a known operator
func (op Op) Valid() bool {
	switch op {
	case OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpIn, OpContains:
		return true
	}
	return false
}

// CompareFact compares a fact value to a literal using the given operator.
// Unknown operators never match.
func CompareFact(factValue interface{}, op Op, literal interface{}) bool {
	switch op {
	case OpEqual:
		return Equal(factValue, literal)
	case OpNotEqual:
		return !Equal(factValue, literal)
	case OpLess:
		return LessThan(factValue, literal)
	case OpLessEqual:
		return LessThan(factValue, literal) || Equal(factValue, literal)
	case OpGreater:
		return GreaterThan(factValue, literal)
	case OpGreaterEqual:
		return GreaterThan(factValue, literal) || Equal(factValue, literal)
	case OpIn:
		return Contains(literal, factValue)
	case OpContains:
		return Contains(factValue, literal)
	default:
		return false
	}
}

// Equal compares two values for equality.
// Numbers of different kinds are compared by value.
func Equal(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af == bf
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// LessThan checks if a is less than b.
// Only numbers and strings are ordered.
func LessThan(a, b interface{}) bool {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return af < bf
		}
		return false
	}

	as, aOk := a.(string)
	bs, bOk := b.(string)
	return aOk && bOk && as < bs
}

// GreaterThan checks if a is greater than b
func GreaterThan(a, b interface{}) bool {
	return LessThan(b, a)
}

// Contains checks if container contains item
func Contains(container, item interface{}) bool {
	switch c := container.(type) {
	case []interface{}:
		for _, v := range c {
			if Equal(v, item) {
				return true
			}
		}
	case []string:
		for _, v := range c {
			if Equal(v, item) {
				return true
			}
		}
	case string:
		if s, ok := item.(string); ok {
			return strings.Contains(c, s)
		}
	case map[string]interface{}:
		if key, ok := item.(string); ok {
			_, exists := c[key]
			return exists
		}
	}
	return false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
