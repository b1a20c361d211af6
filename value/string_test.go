package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sassval/value"
)

func TestSerializeQuotedString(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "foo", `"foo"`},
		{"single quote", "fo'o", `"fo'o"`},
		{"double quote", `fo"o`, `'fo"o'`},
		{"both quotes", `f"o'o`, `"f\"o'o"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\a b"`},
		{"newline before letter", "a\nz", `"a\az"`},
		{"newline before space", "a\n b", `"a\a  b"`},
		{"trailing control", "a\x01", `"a\1"`},
		{"tab kept", "a\tb", "\"a\tb\""},
		{"unicode kept", "héllo", `"héllo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, value.SerializeQuotedString(tt.in))
		})
	}
}

func TestSerializeUnquotedString(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", "foo bar", "foo bar"},
		{"newline", "foo\nbar", "foo bar"},
		{"indented continuation", "foo\n    bar", "foo bar"},
		{"spaces before newline kept", "foo  \nbar", "foo   bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, value.SerializeUnquotedString(tt.in))
		})
	}
}

func TestStringPredicates(t *testing.T) {
	tests := []struct {
		text    string
		quoted  bool
		special bool
		isVar   bool
	}{
		{"calc(1px + 2%)", false, true, false},
		{"CALC(1px)", false, true, false},
		{"Clamp(1px, 2px, 3px)", false, true, false},
		{"var(--gap)", false, true, true},
		{"VAR(--gap)", false, true, true},
		{"var(x)", false, true, false},
		{"env(safe-area)", false, true, false},
		{"max(1px, 2px)", false, true, false},
		{"min(1)", false, true, false},
		{"min()", false, false, false},
		{"calc(1px)", true, false, false},
		{"var(--gap)", true, false, false},
		{"calculate(1)", false, false, false},
		{"mix(1, 2)", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			s := value.NewString(tt.text, tt.quoted)
			require.Equal(t, tt.special, s.IsSpecialNumber())
			require.Equal(t, tt.isVar, s.IsVar())
		})
	}
}

func TestStringBasics(t *testing.T) {
	require.True(t, value.NewString("", false).IsBlank())
	require.False(t, value.NewString("", true).IsBlank())
	require.True(t, value.EmptyUnquotedString.IsBlank())
	require.True(t, value.NewString("", true).IsTruthy())

	require.Equal(t, 5, value.NewString("héllo", true).Length())
	require.True(t, value.NewString("a", true).Equals(value.NewString("a", false)))
	require.False(t, value.NewString("a", true).Equals(value.NewString("b", true)))

	s := value.NewString("a b", true)
	require.Equal(t, `"a b"`, s.String())
	require.Equal(t, "a b", s.UnquotedCSSString())
	require.Equal(t, []value.Value{s}, s.AsList())
	require.Equal(t, value.ListSeparatorUndecided, s.Separator())
}

func TestStringPlus(t *testing.T) {
	tests := []struct {
		name string
		l, r value.Value
		want string
	}{
		{"quoted keeps quotes", value.NewString("a", true), value.NewString("b", false), `"ab"`},
		{"unquoted stays unquoted", value.NewString("a", false), value.NewString("b", true), "ab"},
		{"number appended", value.NewString("a", false), value.NewNumberWithUnit(1, "px"), "a1px"},
		{"null appended", value.NewString("a", true), value.Null, `"a"`},
		{"number then quoted string", value.NewNumber(1), value.NewString("a", true), `"1a"`},
		{"number then unquoted string", value.NewNumber(1), value.NewString("a", false), "1a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := value.Plus(tt.l, tt.r)
			require.NoError(t, err)
			require.Equal(t, tt.want, v.String())
		})
	}

	_, err := value.Plus(value.NewString("a", false), value.EmptyMap())
	require.EqualError(t, err, "() is not a valid CSS value.")
}
