package value

type null struct {
	scalar
}

// Null is the only null value. It is falsy and omitted from CSS output.
var Null Value = &null{}

func (*null) IsTruthy() bool { return false }
func (*null) IsBlank() bool  { return true }

func (*null) Equals(other Value) bool {
	_, ok := other.(*null)
	return ok
}

func (n *null) AsList() []Value          { return []Value{n} }
func (*null) CSSString() (string, error) { return "", nil }
func (*null) String() string             { return "null" }
