package value

// Boolean is a SassScript boolean. Only the True and False singletons exist.
type Boolean struct {
	scalar

	value bool
}

var (
	True  = &Boolean{value: true}
	False = &Boolean{value: false}
)

// Bool returns the singleton for b.
func Bool(b bool) *Boolean {
	if b {
		return True
	}
	return False
}

func (b *Boolean) Value() bool    { return b.value }
func (b *Boolean) IsTruthy() bool { return b.value }

func (b *Boolean) Equals(other Value) bool {
	o, ok := other.(*Boolean)
	return ok && b.value == o.value
}

func (b *Boolean) AsList() []Value            { return []Value{b} }
func (b *Boolean) CSSString() (string, error) { return b.String(), nil }

func (b *Boolean) String() string {
	if b.value {
		return "true"
	}
	return "false"
}
