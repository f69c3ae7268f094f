// Package rank selects the top-scoring key of a score map and carries the
// outcome as an explicit tagged variant: no winner, a single winner, or a
// lexicographically sorted tie set. Callers switch on Kind instead of
// type-checking a value that is sometimes a string and sometimes a list.
package rank

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind tags the three shapes a top selection can take.
type Kind int

const (
	// None: no key scored above zero.
	None Kind = iota
	// Single: exactly one key holds the maximum positive score.
	Single
	// Tied: two or more keys share the maximum positive score.
	Tied
)

// Top is the selection result. The zero value is None.
type Top struct {
	kind  Kind
	names []string
}

// NewSingle builds a Single selection.
func NewSingle(name string) Top { return Top{kind: Single, names: []string{name}} }

// NewTied builds a Tied selection; names are sorted defensively.
func NewTied(names []string) Top {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return Top{kind: Tied, names: sorted}
}

// Kind returns the variant tag.
func (t Top) Kind() Kind { return t.kind }

// Names returns the selected names: empty for None, one element for Single,
// the sorted tie set for Tied.
func (t Top) Names() []string { return t.names }

// MarshalJSON emits the wire shape the original tool produced:
// null for None, a bare string for Single, a sorted array for Tied.
func (t Top) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case Single:
		return json.Marshal(t.names[0])
	case Tied:
		return json.Marshal(t.names)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON accepts the same three shapes.
func (t *Top) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = Top{}
	case string:
		*t = NewSingle(v)
	case []any:
		names := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return fmt.Errorf("rank: tie set element %v is not a string", e)
			}
			names = append(names, s)
		}
		*t = NewTied(names)
	default:
		return fmt.Errorf("rank: cannot decode %T as top selection", v)
	}
	return nil
}

// Select computes the maximum positive score in scores and returns the
// tagged selection. Zero and negative scores never win; an all-zero (or
// empty) map yields None.
func Select(scores map[string]int) Top {
	max := 0
	for _, s := range scores {
		if s > max {
			max = s
		}
	}
	if max == 0 {
		return Top{}
	}

	var winners []string
	for name, s := range scores {
		if s == max {
			winners = append(winners, name)
		}
	}
	sort.Strings(winners)
	if len(winners) == 1 {
		return NewSingle(winners[0])
	}
	return Top{kind: Tied, names: winners}
}
