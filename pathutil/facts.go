package pathutil

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidJSON is returned when raw fact data is not valid JSON
	ErrInvalidJSON = errors.New("invalid JSON facts")
	// ErrNilMessage is returned when a nil proto message is loaded
	ErrNilMessage = errors.New("nil proto message")
)

// Facts is the structured input that leaf rules read from
type Facts interface {
	// Get returns the value at the given path, or false if not found
	Get(path Path) (interface{}, bool)
}

// MapFacts serves facts from nested maps and slices, as produced by
// encoding/json or built by hand
type MapFacts map[string]interface{}

// Get implements Facts
func (m MapFacts) Get(path Path) (interface{}, bool) {
	segments := path.Segments()
	if len(segments) == 0 {
		return nil, false
	}

	var current interface{} = map[string]interface{}(m)
	for _, seg := range segments {
		switch node := current.(type) {
		case map[string]interface{}:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = next
		case MapFacts:
			next, ok := node[seg]
			if !ok {
				return nil, false
			}
			current = next
		case []interface{}:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}
