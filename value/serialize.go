package value

import (
	"math"
	"strconv"
	"strings"

	"sassval/numeric"
)

// SerializeNumber formats n the way CSS output expects it: integers have no
// decimal point, other numbers keep at most numeric.Precision fractional
// digits with trailing zeros removed.
func SerializeNumber(n float64) string {
	switch {
	case math.IsNaN(n):
		return "NaN"
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	}
	if numeric.FuzzyIsInt(n) {
		r := math.Round(n)
		if r == 0 {
			// avoid "-0"
			return "0"
		}
		return strconv.FormatFloat(r, 'f', 0, 64)
	}
	out := strconv.FormatFloat(n, 'f', numeric.Precision, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if out == "-0" {
		return "0"
	}
	return out
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// SerializeQuotedString renders s as a CSS string literal. Double quotes are
// preferred; single quotes are used when s contains only double quotes.
// Control characters other than tab are written as hex escapes.
func SerializeQuotedString(s string) string {
	hasDouble := strings.IndexByte(s, '"') >= 0
	hasSingle := strings.IndexByte(s, '\'') >= 0
	forceDouble := hasDouble && hasSingle

	quote := byte('"')
	if hasDouble && !forceDouble {
		quote = '\''
	}

	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"' && forceDouble:
			b.WriteString(`\"`)
		case c < 0x20 && c != '\t':
			b.WriteByte('\\')
			b.WriteString(strconv.FormatInt(int64(c), 16))
			if i+1 < len(s) {
				// the escape would otherwise swallow the next character
				if next := s[i+1]; next == ' ' || next == '\t' || isHexDigit(next) {
					b.WriteByte(' ')
				}
			}
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// SerializeUnquotedString renders s as a bare CSS token. Newlines become a
// single space and spaces directly following a newline are dropped.
func SerializeUnquotedString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	afterNewline := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			b.WriteByte(' ')
			afterNewline = true
		case ' ':
			if !afterNewline {
				b.WriteByte(' ')
			}
		default:
			b.WriteByte(c)
			afterNewline = false
		}
	}
	return b.String()
}
