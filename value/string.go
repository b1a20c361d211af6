package value

import (
	"strings"
	"unicode/utf8"
)

// String is a quoted or unquoted SassScript string.
type String struct {
	scalar

	text   string
	quoted bool
}

// EmptyUnquotedString is the blank string.
var EmptyUnquotedString = &String{}

func NewString(text string, quoted bool) *String {
	return &String{text: text, quoted: quoted}
}

// Text returns the string contents without quotes or escapes.
func (s *String) Text() string    { return s.text }
func (s *String) HasQuotes() bool { return s.quoted }

// Length returns the number of code points in the text.
func (s *String) Length() int { return utf8.RuneCountInString(s.text) }

func (s *String) IsBlank() bool { return !s.quoted && s.text == "" }

var specialFunctions = []string{"calc(", "clamp(", "var(", "env(", "max(", "min("}

// IsSpecialNumber reports whether s is an unquoted call to one of the CSS
// functions that may stand in for a number.
func (s *String) IsSpecialNumber() bool {
	if s.quoted || len(s.text) < len("min(_)") {
		return false
	}
	for _, prefix := range specialFunctions {
		if hasPrefixFold(s.text, prefix) {
			return true
		}
	}
	return false
}

func (s *String) IsVar() bool {
	if s.quoted || len(s.text) < len("var(--_)") {
		return false
	}
	return hasPrefixFold(s.text, "var(")
}

// hasPrefixFold matches an ASCII prefix case-insensitively.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// Equals compares text only. Quoted and unquoted strings with the same
// contents are equal.
func (s *String) Equals(other Value) bool {
	o, ok := other.(*String)
	return ok && s.text == o.text
}

func (s *String) AsList() []Value { return []Value{s} }

func (s *String) CSSString() (string, error) {
	if s.quoted {
		return SerializeQuotedString(s.text), nil
	}
	return SerializeUnquotedString(s.text), nil
}

// UnquotedCSSString serializes s without quotes regardless of how it was
// written.
func (s *String) UnquotedCSSString() string {
	return SerializeUnquotedString(s.text)
}

func (s *String) String() string {
	css, _ := s.CSSString()
	return css
}

// operate implements string concatenation. The result keeps the quotes of
// the left operand.
func (s *String) operate(op BinaryOperator, other Value) (Value, bool, error) {
	if op != OpPlus {
		return nil, false, nil
	}
	if o, ok := other.(*String); ok {
		return NewString(s.text+o.text, s.quoted), true, nil
	}
	css, err := other.CSSString()
	if err != nil {
		return nil, true, err
	}
	return NewString(s.text+css, s.quoted), true, nil
}
