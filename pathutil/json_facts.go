package pathutil

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// JSONFacts is a Facts implementation backed by gjson
type JSONFacts struct {
	rawJSON string
}

// NewJSONFacts creates facts from a raw JSON document
func NewJSONFacts(rawJSON string) (*JSONFacts, error) {
	if !gjson.Valid(rawJSON) {
		return nil, fmt.Errorf("loading facts: %w", ErrInvalidJSON)
	}
	return &JSONFacts{rawJSON: rawJSON}, nil
}

// Get implements Facts
func (f *JSONFacts) Get(path Path) (interface{}, bool) {
	if path == "" {
		return nil, false
	}

	result := gjson.Get(f.rawJSON, path.dotted())
	if !result.Exists() {
		return nil, false
	}
	return resultToInterface(result), true
}

// Raw returns the underlying JSON document
func (f *JSONFacts) Raw() string {
	return f.rawJSON
}

// resultToInterface converts a gjson result to plain Go values.
// Integral numbers become int64, other numbers float64.
func resultToInterface(result gjson.Result) interface{} {
	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		if result.Float() == float64(result.Int()) {
			return result.Int()
		}
		return result.Float()
	case gjson.String:
		return result.String()
	case gjson.JSON:
		if result.IsArray() {
			arr := result.Array()
			values := make([]interface{}, len(arr))
			for i, v := range arr {
				values[i] = resultToInterface(v)
			}
			return values
		}
		m := result.Map()
		values := make(map[string]interface{}, len(m))
		for k, v := range m {
			values[k] = resultToInterface(v)
		}
		return values
	default:
		return nil
	}
}
