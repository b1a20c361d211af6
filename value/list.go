package value

import (
	"slices"
	"strings"
)

// List is an ordered sequence of values with a separator and an optional
// pair of square brackets.
type List struct {
	contents  []Value
	separator ListSeparator
	brackets  bool
}

// NewList returns a list of contents. A list with more than one element
// must have a decided separator.
func NewList(contents []Value, separator ListSeparator, brackets bool) (*List, error) {
	if separator == ListSeparatorUndecided && len(contents) > 1 {
		return nil, newError("A list with more than one element must have an explicit separator.")
	}
	return &List{contents: slices.Clone(contents), separator: separator, brackets: brackets}, nil
}

// EmptyList returns a list with no elements.
func EmptyList(separator ListSeparator, brackets bool) *List {
	return &List{separator: separator, brackets: brackets}
}

func (l *List) IsTruthy() bool           { return true }
func (l *List) Separator() ListSeparator { return l.separator }
func (l *List) HasBrackets() bool        { return l.brackets }
func (l *List) IsSpecialNumber() bool    { return false }
func (l *List) IsVar() bool              { return false }

// AsList returns a copy of the elements.
func (l *List) AsList() []Value { return slices.Clone(l.contents) }

func (l *List) Len() int { return len(l.contents) }

// At returns the element at index i.
func (l *List) At(i int) Value { return l.contents[i] }

// IsBlank reports whether every element is blank. Bracketed lists are
// never blank since their brackets are written out.
func (l *List) IsBlank() bool {
	if l.brackets {
		return false
	}
	for _, v := range l.contents {
		if !v.IsBlank() {
			return false
		}
	}
	return true
}

// TryMap returns the empty map for an empty list.
func (l *List) TryMap() *Map {
	if len(l.contents) == 0 {
		return EmptyMap()
	}
	return nil
}

func (l *List) Equals(other Value) bool {
	switch o := other.(type) {
	case *Map:
		return len(l.contents) == 0 && o.Len() == 0
	case *List:
		if l.separator != o.separator || l.brackets != o.brackets {
			return false
		}
		return slices.EqualFunc(l.contents, o.contents, func(a, b Value) bool {
			return a.Equals(b)
		})
	}
	return false
}

func (l *List) CSSString() (string, error) {
	if !l.brackets && len(l.contents) == 0 {
		return "", newError("() is not a valid CSS value.")
	}

	parts := make([]string, 0, len(l.contents))
	for _, v := range l.contents {
		if v.IsBlank() {
			continue
		}
		css, err := v.CSSString()
		if err != nil {
			return "", err
		}
		parts = append(parts, css)
	}

	out := strings.Join(parts, l.separator.token())
	if l.brackets {
		out = "[" + out + "]"
	}
	return out, nil
}

func (l *List) String() string {
	if !l.brackets && len(l.contents) == 0 {
		return "()"
	}

	var sb strings.Builder
	singleton := len(l.contents) == 1 && l.separator == ListSeparatorComma
	switch {
	case l.brackets:
		sb.WriteByte('[')
	case singleton:
		sb.WriteByte('(')
	}

	for i, v := range l.contents {
		if i > 0 {
			sb.WriteString(l.separator.token())
		}
		if elementNeedsParens(l.separator, v) {
			sb.WriteString("(" + v.String() + ")")
		} else {
			sb.WriteString(v.String())
		}
	}

	if singleton {
		sb.WriteByte(',')
	}
	switch {
	case l.brackets:
		sb.WriteByte(']')
	case singleton:
		sb.WriteByte(')')
	}
	return sb.String()
}

// elementNeedsParens reports whether v must be parenthesized inside a list
// separated by sep to keep its own structure readable.
func elementNeedsParens(sep ListSeparator, v Value) bool {
	inner, ok := v.(*List)
	if !ok || len(inner.contents) < 2 || inner.brackets {
		return false
	}
	if sep == ListSeparatorComma {
		return inner.separator == ListSeparatorComma
	}
	return inner.separator != ListSeparatorUndecided
}
