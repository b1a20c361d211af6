package value

import (
	"slices"
	"strings"
)

// MapEntry is a single key/value pair of a Map.
type MapEntry struct {
	Key, Value Value
}

// Map is an insertion-ordered mapping between values. Keys are compared
// with Equals, so 1in and 96px are the same key.
type Map struct {
	entries []MapEntry
}

var emptyMap = &Map{}

func EmptyMap() *Map { return emptyMap }

// NewMap returns a map holding entries in order. Duplicate keys are
// rejected.
func NewMap(entries ...MapEntry) (*Map, error) {
	for i, e := range entries {
		for _, prev := range entries[:i] {
			if prev.Key.Equals(e.Key) {
				return nil, newError("Duplicate key %s.", e.Key)
			}
		}
	}
	return &Map{entries: slices.Clone(entries)}, nil
}

func (m *Map) Len() int { return len(m.entries) }

// Get returns the value stored under key.
func (m *Map) Get(key Value) (Value, bool) {
	for _, e := range m.entries {
		if e.Key.Equals(key) {
			return e.Value, true
		}
	}
	return nil, false
}

func (m *Map) Keys() []Value {
	keys := make([]Value, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

func (m *Map) Values() []Value {
	values := make([]Value, len(m.entries))
	for i, e := range m.entries {
		values[i] = e.Value
	}
	return values
}

func (m *Map) Entries() []MapEntry { return slices.Clone(m.entries) }

func (m *Map) IsTruthy() bool        { return true }
func (m *Map) HasBrackets() bool     { return false }
func (m *Map) IsBlank() bool         { return false }
func (m *Map) IsSpecialNumber() bool { return false }
func (m *Map) IsVar() bool           { return false }
func (m *Map) TryMap() *Map          { return m }

func (m *Map) Separator() ListSeparator {
	if len(m.entries) == 0 {
		return ListSeparatorUndecided
	}
	return ListSeparatorComma
}

// AsList returns one space-separated key/value list per entry.
func (m *Map) AsList() []Value {
	out := make([]Value, len(m.entries))
	for i, e := range m.entries {
		out[i] = &List{contents: []Value{e.Key, e.Value}, separator: ListSeparatorSpace}
	}
	return out
}

// Equals ignores entry order.
func (m *Map) Equals(other Value) bool {
	switch o := other.(type) {
	case *List:
		return len(m.entries) == 0 && o.Len() == 0
	case *Map:
		if m == o {
			return true
		}
		if len(m.entries) != len(o.entries) {
			return false
		}
		for _, e := range m.entries {
			v, ok := o.Get(e.Key)
			if !ok || !e.Value.Equals(v) {
				return false
			}
		}
		return true
	}
	return false
}

func (m *Map) CSSString() (string, error) {
	return "", newError("%s is not a valid CSS value.", m)
}

func (m *Map) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(mapElement(e.Key))
		sb.WriteString(": ")
		sb.WriteString(mapElement(e.Value))
	}
	sb.WriteByte(')')
	return sb.String()
}

func mapElement(v Value) string {
	if l, ok := v.(*List); ok && l.separator == ListSeparatorComma && !l.brackets {
		return "(" + l.String() + ")"
	}
	return v.String()
}
