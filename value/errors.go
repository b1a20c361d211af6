package value

import (
	"errors"
	"fmt"

	"sassval/numeric"
)

// ScriptError is the single failure kind produced by the value model. When
// the failing value came from a function argument, Argument holds its name
// (without the leading "$") so callers can point at the right source span.
type ScriptError struct {
	Message  string
	Argument string
}

func (e *ScriptError) Error() string {
	if e.Argument == "" {
		return e.Message
	}
	return "$" + e.Argument + ": " + e.Message
}

func newError(format string, args ...any) *ScriptError {
	return &ScriptError{Message: fmt.Sprintf(format, args...)}
}

func argumentError(name, format string, args ...any) *ScriptError {
	return &ScriptError{Message: fmt.Sprintf(format, args...), Argument: name}
}

// rangeError converts a numeric range failure into a ScriptError naming the
// offending channel.
func rangeError(err error) error {
	var re *numeric.RangeError
	if errors.As(err, &re) {
		return &ScriptError{Message: re.Error(), Argument: re.Name}
	}
	return err
}

func undefinedOperation(left Value, op string, right Value) *ScriptError {
	return newError("Undefined operation \"%s %s %s\".", left, op, right)
}
