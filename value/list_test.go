package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sassval/value"
)

func mustList(t *testing.T, sep value.ListSeparator, brackets bool, items ...value.Value) *value.List {
	t.Helper()
	l, err := value.NewList(items, sep, brackets)
	require.NoError(t, err)
	return l
}

func ident(s string) *value.String { return value.NewString(s, false) }

func num(v float64) *value.Number { return value.NewNumber(v) }

func TestNewListUndecidedSeparator(t *testing.T) {
	_, err := value.NewList([]value.Value{num(1), num(2)}, value.ListSeparatorUndecided, false)
	require.EqualError(t, err, "A list with more than one element must have an explicit separator.")

	l, err := value.NewList([]value.Value{num(1)}, value.ListSeparatorUndecided, false)
	require.NoError(t, err)
	require.Equal(t, 1, l.Len())
}

func TestListString(t *testing.T) {
	space := mustList(t, value.ListSeparatorSpace, false, num(1), num(2))
	comma := mustList(t, value.ListSeparatorComma, false, num(1), num(2))
	slash := mustList(t, value.ListSeparatorSlash, false, num(1), num(2))

	tests := []struct {
		name string
		l    *value.List
		want string
	}{
		{"empty", value.EmptyList(value.ListSeparatorUndecided, false), "()"},
		{"empty bracketed", value.EmptyList(value.ListSeparatorComma, true), "[]"},
		{"space", space, "1 2"},
		{"comma", comma, "1, 2"},
		{"slash", slash, "1/2"},
		{"bracketed", mustList(t, value.ListSeparatorSpace, true, num(1), num(2)), "[1 2]"},
		{"singleton comma", mustList(t, value.ListSeparatorComma, false, num(1)), "(1,)"},
		{"singleton comma bracketed", mustList(t, value.ListSeparatorComma, true, num(1)), "[1,]"},
		{"singleton space", mustList(t, value.ListSeparatorSpace, false, num(1)), "1"},
		{"space in comma", mustList(t, value.ListSeparatorComma, false, space, num(3)), "1 2, 3"},
		{"comma in comma", mustList(t, value.ListSeparatorComma, false, comma, num(3)), "(1, 2), 3"},
		{"comma in space", mustList(t, value.ListSeparatorSpace, false, comma, num(3)), "(1, 2) 3"},
		{"space in space", mustList(t, value.ListSeparatorSpace, false, space, num(3)), "(1 2) 3"},
		{"slash in space", mustList(t, value.ListSeparatorSpace, false, slash, num(3)), "(1/2) 3"},
		{"bracketed inner", mustList(t, value.ListSeparatorSpace, false, mustList(t, value.ListSeparatorComma, true, num(1), num(2)), num(3)), "[1, 2] 3"},
		{"quoted element", mustList(t, value.ListSeparatorSpace, false, value.NewString("a", true), ident("b")), `"a" b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.l.String())
		})
	}
}

func TestListCSSString(t *testing.T) {
	l := mustList(t, value.ListSeparatorSpace, false, ident("a"), ident(""), value.Null, ident("b"))
	css, err := l.CSSString()
	require.NoError(t, err)
	require.Equal(t, "a b", css)

	l = mustList(t, value.ListSeparatorComma, true, value.NewNumberWithUnit(1, "px"), value.NewString("x", true))
	css, err = l.CSSString()
	require.NoError(t, err)
	require.Equal(t, `[1px, "x"]`, css)

	css, err = value.EmptyList(value.ListSeparatorSpace, true).CSSString()
	require.NoError(t, err)
	require.Equal(t, "[]", css)

	_, err = value.EmptyList(value.ListSeparatorSpace, false).CSSString()
	require.EqualError(t, err, "() is not a valid CSS value.")

	l = mustList(t, value.ListSeparatorSpace, false, num(1), value.NewFunction("f"))
	_, err = l.CSSString()
	require.EqualError(t, err, `get-function("f") is not a valid CSS value.`)
}

func TestListPredicates(t *testing.T) {
	blank := mustList(t, value.ListSeparatorSpace, false, ident(""), value.Null)
	require.True(t, blank.IsBlank())
	require.False(t, mustList(t, value.ListSeparatorSpace, true, ident("")).IsBlank())
	require.True(t, value.EmptyList(value.ListSeparatorUndecided, false).IsTruthy())

	l := mustList(t, value.ListSeparatorComma, true, num(1), num(2))
	require.Equal(t, value.ListSeparatorComma, l.Separator())
	require.True(t, l.HasBrackets())
	require.Equal(t, []value.Value{num(1), num(2)}, l.AsList())
	require.Equal(t, num(2), l.At(1))

	// scalars view as single-element lists
	require.Equal(t, []value.Value{num(3)}, num(3).AsList())
}

func TestListEquality(t *testing.T) {
	a := mustList(t, value.ListSeparatorSpace, false, value.NewNumberWithUnit(1, "in"), ident("x"))
	b := mustList(t, value.ListSeparatorSpace, false, value.NewNumberWithUnit(96, "px"), value.NewString("x", true))
	require.True(t, a.Equals(b))

	require.False(t, a.Equals(mustList(t, value.ListSeparatorComma, false, value.NewNumberWithUnit(1, "in"), ident("x"))))
	require.False(t, a.Equals(mustList(t, value.ListSeparatorSpace, true, value.NewNumberWithUnit(1, "in"), ident("x"))))
	require.False(t, a.Equals(mustList(t, value.ListSeparatorSpace, false, value.NewNumberWithUnit(1, "in"))))
}

func TestListMapInterplay(t *testing.T) {
	empty := value.EmptyList(value.ListSeparatorUndecided, false)
	require.True(t, value.EmptyMap().Equals(empty))
	require.True(t, empty.Equals(value.EmptyMap()))
	require.True(t, value.EmptyList(value.ListSeparatorComma, true).Equals(value.EmptyMap()))

	m, err := value.NewMap(value.MapEntry{Key: ident("a"), Value: num(1)})
	require.NoError(t, err)
	pair := mustList(t, value.ListSeparatorSpace, false, ident("a"), num(1))
	require.False(t, m.Equals(pair))
	require.False(t, pair.Equals(m))
	require.False(t, m.Equals(empty))
	require.False(t, empty.Equals(m))

	got, err := value.AssertMap(empty, "")
	require.NoError(t, err)
	require.Equal(t, 0, got.Len())
	require.NotNil(t, empty.TryMap())

	require.Nil(t, pair.TryMap())
	_, err = value.AssertMap(pair, "map")
	require.EqualError(t, err, "$map: a 1 is not a map.")
}
