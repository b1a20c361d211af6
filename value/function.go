package value

import "fmt"

// Function is a first-class reference to a callable, identified by name.
type Function struct {
	scalar

	name string
}

func NewFunction(name string) *Function {
	return &Function{name: name}
}

func (f *Function) Name() string { return f.name }

func (f *Function) Equals(other Value) bool {
	o, ok := other.(*Function)
	return ok && f.name == o.name
}

func (f *Function) AsList() []Value { return []Value{f} }

func (f *Function) CSSString() (string, error) {
	return "", newError("%s is not a valid CSS value.", f)
}

func (f *Function) String() string {
	return fmt.Sprintf("get-function(%s)", SerializeQuotedString(f.name))
}
