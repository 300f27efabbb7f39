package eval

import "testing"

func TestCompareFact(t *testing.T) {
	tests := []struct {
		name         string
		factValue    interface{}
		op           Op
		literalValue interface{}
		expected     bool
	}{
		// Equality tests
		{name: "string equality - true", factValue: "test", op: OpEqual, literalValue: "test", expected: true},
		{name: "string equality - false", factValue: "test", op: OpEqual, literalValue: "other", expected: false},
		{name: "int equality - true", factValue: 42, op: OpEqual, literalValue: 42, expected: true},
		{name: "int equality - false", factValue: 42, op: OpEqual, literalValue: 43, expected: false},
		{name: "float equality - true", factValue: 3.14, op: OpEqual, literalValue: 3.14, expected: true},
		{name: "int64 vs int equality", factValue: int64(30), op: OpEqual, literalValue: 30, expected: true},
		{name: "bool equality - true", factValue: true, op: OpEqual, literalValue: true, expected: true},
		{name: "bool equality - false", factValue: true, op: OpEqual, literalValue: false, expected: false},
		{name: "string vs number never equal", factValue: "5", op: OpEqual, literalValue: 5, expected: false},

		// Inequality tests
		{name: "string inequality - true", factValue: "test", op: OpNotEqual, literalValue: "other", expected: true},
		{name: "int inequality - false", factValue: 42, op: OpNotEqual, literalValue: 42, expected: false},

		// Ordering tests
		{name: "int less than - true", factValue: 10, op: OpLess, literalValue: 20, expected: true},
		{name: "int less than - false", factValue: 20, op: OpLess, literalValue: 10, expected: false},
		{name: "mixed numeric less than - true", factValue: 5, op: OpLess, literalValue: 5.5, expected: true},
		{name: "string less than", factValue: "apple", op: OpLess, literalValue: "banana", expected: true},
		{name: "bool is not ordered", factValue: false, op: OpLess, literalValue: true, expected: false},
		{name: "float greater than - true", factValue: 3.15, op: OpGreater, literalValue: 3.14, expected: true},
		{name: "int greater than - false", factValue: 10, op: OpGreater, literalValue: 20, expected: false},
		{name: "less than or equal (equal)", factValue: 10, op: OpLessEqual, literalValue: 10, expected: true},
		{name: "less than or equal - false", factValue: 20, op: OpLessEqual, literalValue: 10, expected: false},
		{name: "greater than or equal (greater)", factValue: int64(20), op: OpGreaterEqual, literalValue: 10, expected: true},
		{name: "greater than or equal - false", factValue: 10, op: OpGreaterEqual, literalValue: 20, expected: false},

		// Membership tests
		{name: "string contains", factValue: "premium customer", op: OpContains, literalValue: "premium", expected: true},
		{name: "array contains", factValue: []interface{}{"a", "b", "c"}, op: OpContains, literalValue: "b", expected: true},
		{name: "array does not contain", factValue: []interface{}{"a", "b"}, op: OpContains, literalValue: "z", expected: false},
		{name: "map contains key", factValue: map[string]interface{}{"admin": true}, op: OpContains, literalValue: "admin", expected: true},
		{name: "in list", factValue: "b", op: OpIn, literalValue: []string{"a", "b", "c"}, expected: true},
		{name: "number in list", factValue: int64(2), op: OpIn, literalValue: []interface{}{1, 2, 3}, expected: true},
		{name: "not in list", factValue: "x", op: OpIn, literalValue: []string{"a"}, expected: false},

		// Unknown operator
		{name: "unknown operator", factValue: "test", op: "unknown", literalValue: "test", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompareFact(tt.factValue, tt.op, tt.literalValue)
			if result != tt.expected {
				t.Errorf("CompareFact(%v, %s, %v) = %v, want %v",
					tt.factValue, tt.op, tt.literalValue, result, tt.expected)
			}
		})
	}
}

func TestOpValid(t *testing.T) {
	for _, op := range []Op{OpEqual, OpNotEqual, OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpIn, OpContains} {
		if !op.Valid() {
			t.Errorf("%q should be valid", op)
		}
	}
	if Op("=~").Valid() {
		t.Errorf("=~ should not be valid")
	}
}
