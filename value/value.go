// Package value implements the runtime values of SassScript: numbers with
// units, colors, strings, booleans, null, lists, maps and function
// references, together with the operators the language defines on them.
//
// All values are immutable. Operations that "modify" a value return a new
// one, so values may be shared freely between goroutines.
package value

// Value is implemented by every SassScript value.
//
// Every value can be used as a list: maps count as lists of key/value pairs
// and all other non-list values count as single-element lists.
type Value interface {
	// IsTruthy reports whether the value counts as true in conditions. Only
	// null and false are falsy.
	IsTruthy() bool
	// Separator is the separator of the value viewed as a list.
	Separator() ListSeparator
	// HasBrackets reports whether the value viewed as a list has brackets.
	HasBrackets() bool
	// AsList returns the value viewed as a list.
	AsList() []Value
	// IsBlank reports whether the value is omitted from CSS output.
	IsBlank() bool
	// IsSpecialNumber reports whether the value is an opaque CSS function
	// (calc(), var(), ...) that numeric functions must pass through.
	IsSpecialNumber() bool
	// IsVar reports whether the value is a var() call.
	IsVar() bool
	// TryMap returns the value as a map, or nil.
	TryMap() *Map
	Equals(other Value) bool
	// CSSString serializes the value as plain CSS. It fails for values that
	// have no CSS representation.
	CSSString() (string, error)
	// String returns the debug representation.
	String() string
}

// ListSeparator is the separator used when a value is viewed as a list.
type ListSeparator int

const (
	// ListSeparatorUndecided is only valid for lists with fewer than two
	// elements.
	ListSeparatorUndecided ListSeparator = iota
	ListSeparatorSpace
	ListSeparatorComma
	ListSeparatorSlash
)

func (s ListSeparator) String() string {
	switch s {
	case ListSeparatorSpace:
		return "space"
	case ListSeparatorComma:
		return "comma"
	case ListSeparatorSlash:
		return "slash"
	default:
		return "undecided"
	}
}

// token returns the text placed between list elements.
func (s ListSeparator) token() string {
	switch s {
	case ListSeparatorSpace:
		return " "
	case ListSeparatorSlash:
		return "/"
	default:
		return ", "
	}
}

// scalar provides the list-view and predicate defaults shared by all
// non-collection values.
type scalar struct{}

func (scalar) IsTruthy() bool           { return true }
func (scalar) Separator() ListSeparator { return ListSeparatorUndecided }
func (scalar) HasBrackets() bool        { return false }
func (scalar) IsBlank() bool            { return false }
func (scalar) IsSpecialNumber() bool    { return false }
func (scalar) IsVar() bool              { return false }
func (scalar) TryMap() *Map             { return nil }

// AssertBoolean returns v as a boolean. name is the argument v came from,
// if any, and is used for error reporting.
func AssertBoolean(v Value, name string) (*Boolean, error) {
	if b, ok := v.(*Boolean); ok {
		return b, nil
	}
	return nil, argumentError(name, "%s is not a boolean.", v)
}

func AssertColor(v Value, name string) (*Color, error) {
	if c, ok := v.(*Color); ok {
		return c, nil
	}
	return nil, argumentError(name, "%s is not a color.", v)
}

func AssertFunction(v Value, name string) (*Function, error) {
	if f, ok := v.(*Function); ok {
		return f, nil
	}
	return nil, argumentError(name, "%s is not a function.", v)
}

// AssertMap returns v as a map. Empty lists are accepted as empty maps.
func AssertMap(v Value, name string) (*Map, error) {
	if m := v.TryMap(); m != nil {
		return m, nil
	}
	return nil, argumentError(name, "%s is not a map.", v)
}

func AssertNumber(v Value, name string) (*Number, error) {
	if n, ok := v.(*Number); ok {
		return n, nil
	}
	return nil, argumentError(name, "%s is not a number.", v)
}

func AssertString(v Value, name string) (*String, error) {
	if s, ok := v.(*String); ok {
		return s, nil
	}
	return nil, argumentError(name, "%s is not a string.", v)
}

// WithoutSlash drops the slash-separated display form of a number. Other
// values are returned unchanged.
func WithoutSlash(v Value) Value {
	if n, ok := v.(*Number); ok {
		return n.WithoutSlash()
	}
	return v
}
