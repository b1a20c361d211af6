package css

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

type token struct {
	typ    css.TokenType
	data   string
	offset int
}

func (t token) String() string {
	if t.typ == css.ErrorToken {
		return "end of input"
	}
	return fmt.Sprintf("%q at offset %d", t.data, t.offset)
}

// tokenize runs the CSS lexer over text. Comments are dropped, whitespace
// is kept so function arguments can be reproduced verbatim.
func tokenize(text string) ([]token, error) {
	lexer := css.NewLexer(parse.NewInputString(text))

	var (
		tokens []token
		offset int
	)
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unable to tokenize: %w", err)
			}
			tokens = append(tokens, token{typ: css.ErrorToken, offset: offset})
			return tokens, nil
		}
		if tt != css.CommentToken {
			tokens = append(tokens, token{typ: tt, data: string(data), offset: offset})
		}
		offset += len(data)
	}
}

// splitDimension separates the numeric part of a dimension token from its
// unit. Units keep their case since Hz and kHz are case sensitive.
func splitDimension(s string) (float64, string, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		i++
	}
	// exponent, only when followed by digits so that "1em" keeps its unit
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}

	n, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, "", fmt.Errorf("bad number %q: %w", s, err)
	}
	return n, s[i:], nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

// unquoteString strips the quotes of a string token and resolves CSS
// escapes: hex code points (optionally followed by one whitespace), escaped
// newlines as line continuations, and any other escaped character as
// itself.
func unquoteString(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch {
		case s[i] == '\n':
		case isHex(s[i]):
			j := i
			for j < len(s) && j-i < 6 && isHex(s[j]) {
				j++
			}
			cp, _ := strconv.ParseUint(s[i:j], 16, 32)
			r := rune(cp)
			if r == 0 || !utf8.ValidRune(r) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
			if j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n') {
				j++
			}
			i = j - 1
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
