// Package css reads SassScript values from their CSS literal text, e.g.
// "1px solid red", "(a: 1, b: 2)" or "rgb(0 0 255 / 50%)".
package css

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassval/value"
)

// Reader turns literal text into values.
type Reader struct {
	log *zap.Logger
}

// NewReader creates a new literal reader.
func NewReader(log *zap.Logger) *Reader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reader{log: log.Named("css-reader")}
}

// Read parses a single literal.
func (r *Reader) Read(text string) (value.Value, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty literal")
	}

	tokens, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	v, _, err := p.parseComma()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.typ != css.ErrorToken {
		return nil, fmt.Errorf("unexpected %s", t)
	}

	r.log.Debug("Read literal", zap.String("text", text), zap.Stringer("value", v))
	return v, nil
}

// ReadAll parses every literal. Failures do not stop the remaining
// literals from being read; they are combined into the returned error and
// the corresponding result is nil.
func (r *Reader) ReadAll(texts []string) ([]value.Value, error) {
	var (
		out = make([]value.Value, len(texts))
		err error
	)
	for i, text := range texts {
		v, rerr := r.Read(text)
		if rerr != nil {
			err = multierr.Append(err, fmt.Errorf("literal %d (%q): %w", i+1, text, rerr))
			continue
		}
		out[i] = v
	}
	return out, err
}

type parser struct {
	tokens []token
	pos    int
}

// peek returns the next significant token without consuming it.
func (p *parser) peek() token {
	for p.tokens[p.pos].typ == css.WhitespaceToken {
		p.pos++
	}
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.peek()
	if t.typ != css.ErrorToken {
		p.pos++
	}
	return t
}

func (p *parser) expect(tt css.TokenType, what string) error {
	if t := p.next(); t.typ != tt {
		return fmt.Errorf("expected %s, got %s", what, t)
	}
	return nil
}

func (p *parser) atSlash() bool {
	t := p.peek()
	return t.typ == css.DelimToken && t.data == "/"
}

// startsValue reports whether t can begin a list element.
func startsValue(t token) bool {
	switch t.typ {
	case css.NumberToken, css.PercentageToken, css.DimensionToken,
		css.HashToken, css.IdentToken, css.CustomPropertyNameToken,
		css.StringToken, css.FunctionToken,
		css.LeftBracketToken, css.LeftParenthesisToken:
		return true
	}
	return false
}

// The parse functions return the value together with a flag telling
// whether it is a list built directly by separators at this level, as
// opposed to a parenthesized or single value. Brackets adopt the former and
// wrap the latter.

func (p *parser) parseComma() (value.Value, bool, error) {
	first, bare, err := p.parseSlash()
	if err != nil {
		return nil, false, err
	}
	if p.peek().typ != css.CommaToken {
		return first, bare, nil
	}
	l, err := p.parseCommaRest(first)
	return l, true, err
}

// parseCommaRest continues a comma list whose first element is already
// read. A trailing comma is allowed.
func (p *parser) parseCommaRest(first value.Value) (value.Value, error) {
	items := []value.Value{first}
	for p.peek().typ == css.CommaToken {
		p.next()
		if !startsValue(p.peek()) {
			break
		}
		v, _, err := p.parseSlash()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return value.NewList(items, value.ListSeparatorComma, false)
}

// parseSlash reads slash-separated elements. Exactly two numbers form a
// division that remembers how it was written.
func (p *parser) parseSlash() (value.Value, bool, error) {
	first, bare, err := p.parseSpace()
	if err != nil {
		return nil, false, err
	}
	if !p.atSlash() {
		return first, bare, nil
	}

	items := []value.Value{first}
	for p.atSlash() {
		p.next()
		v, _, err := p.parseSpace()
		if err != nil {
			return nil, false, err
		}
		items = append(items, v)
	}

	if len(items) == 2 {
		num, okNum := items[0].(*value.Number)
		den, okDen := items[1].(*value.Number)
		if okNum && okDen {
			q, err := value.DividedBy(num, den)
			if err != nil {
				return nil, false, err
			}
			return q.(*value.Number).WithSlash(num, den), false, nil
		}
	}
	l, err := value.NewList(items, value.ListSeparatorSlash, false)
	return l, true, err
}

func (p *parser) parseSpace() (value.Value, bool, error) {
	var items []value.Value
	for {
		v, err := p.parsePrimary()
		if err != nil {
			return nil, false, err
		}
		items = append(items, v)
		if !startsValue(p.peek()) {
			break
		}
	}
	if len(items) == 1 {
		return items[0], false, nil
	}
	l, err := value.NewList(items, value.ListSeparatorSpace, false)
	return l, true, err
}

func (p *parser) parsePrimary() (value.Value, error) {
	t := p.next()
	switch t.typ {
	case css.NumberToken:
		n, err := strconv.ParseFloat(t.data, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %s: %w", t, err)
		}
		return value.NewNumber(n), nil

	case css.PercentageToken:
		n, err := strconv.ParseFloat(strings.TrimSuffix(t.data, "%"), 64)
		if err != nil {
			return nil, fmt.Errorf("bad percentage %s: %w", t, err)
		}
		return value.NewNumberWithUnit(n, "%"), nil

	case css.DimensionToken:
		n, unit, err := splitDimension(t.data)
		if err != nil {
			return nil, err
		}
		return value.NewNumberWithUnit(n, unit), nil

	case css.HashToken:
		if c, ok := hexColor(t.data[1:]); ok {
			return c, nil
		}
		return value.NewString(t.data, false), nil

	case css.IdentToken, css.CustomPropertyNameToken:
		return readIdent(t.data), nil

	case css.StringToken:
		return value.NewString(unquoteString(t.data), true), nil

	case css.FunctionToken:
		return p.parseFunction(t)

	case css.LeftBracketToken:
		return p.parseBracketed()

	case css.LeftParenthesisToken:
		return p.parseParenthesized()
	}
	return nil, fmt.Errorf("unexpected %s", t)
}

func readIdent(name string) value.Value {
	switch name {
	case "true":
		return value.True
	case "false":
		return value.False
	case "null":
		return value.Null
	}
	if c, ok := value.LookupNamedColor(name); ok {
		return c
	}
	return value.NewString(name, false)
}

func (p *parser) parseBracketed() (value.Value, error) {
	if p.peek().typ == css.RightBracketToken {
		p.next()
		return value.EmptyList(value.ListSeparatorUndecided, true), nil
	}

	v, bare, err := p.parseComma()
	if err != nil {
		return nil, err
	}
	if err := p.expect(css.RightBracketToken, `"]"`); err != nil {
		return nil, err
	}
	if bare {
		return value.NewList(v.AsList(), v.Separator(), true)
	}
	return value.NewList([]value.Value{v}, value.ListSeparatorUndecided, true)
}

// parseParenthesized reads "()", a parenthesized expression or a map.
func (p *parser) parseParenthesized() (value.Value, error) {
	if p.peek().typ == css.RightParenthesisToken {
		p.next()
		return value.EmptyList(value.ListSeparatorUndecided, false), nil
	}

	first, _, err := p.parseSlash()
	if err != nil {
		return nil, err
	}

	var v value.Value
	switch p.peek().typ {
	case css.ColonToken:
		v, err = p.parseMapRest(first)
	case css.CommaToken:
		v, err = p.parseCommaRest(first)
	default:
		v = first
	}
	if err != nil {
		return nil, err
	}
	if err := p.expect(css.RightParenthesisToken, `")"`); err != nil {
		return nil, err
	}
	return v, nil
}

func (p *parser) parseMapRest(key value.Value) (value.Value, error) {
	var entries []value.MapEntry
	for {
		if err := p.expect(css.ColonToken, `":"`); err != nil {
			return nil, err
		}
		v, _, err := p.parseSlash()
		if err != nil {
			return nil, err
		}
		entries = append(entries, value.MapEntry{Key: key, Value: v})

		if p.peek().typ != css.CommaToken {
			break
		}
		p.next()
		if !startsValue(p.peek()) {
			break
		}
		if key, _, err = p.parseSlash(); err != nil {
			return nil, err
		}
	}
	return value.NewMap(entries...)
}

func (p *parser) parseFunction(t token) (value.Value, error) {
	name := strings.TrimSuffix(t.data, "(")
	lower := strings.ToLower(name)

	switch {
	case colorFunctions[lower]:
		args, _, err := p.parseComma()
		if err != nil {
			return nil, fmt.Errorf("%s(): %w", lower, err)
		}
		if err := p.expect(css.RightParenthesisToken, `")"`); err != nil {
			return nil, err
		}
		c, err := readColor(lower, args)
		if err != nil {
			return nil, fmt.Errorf("%s(): %w", lower, err)
		}
		return c, nil

	case lower == "get-function":
		arg := p.next()
		if arg.typ != css.StringToken && arg.typ != css.IdentToken {
			return nil, fmt.Errorf("get-function(): expected function name, got %s", arg)
		}
		if err := p.expect(css.RightParenthesisToken, `")"`); err != nil {
			return nil, err
		}
		return value.NewFunction(unquoteString(arg.data)), nil
	}

	raw, err := p.rawArguments()
	if err != nil {
		return nil, err
	}
	return value.NewString(t.data+raw, false), nil
}

// rawArguments consumes tokens up to and including the closing parenthesis
// of the current function and returns their text unchanged.
func (p *parser) rawArguments() (string, error) {
	var sb strings.Builder
	depth := 1
	for {
		t := p.tokens[p.pos]
		switch t.typ {
		case css.ErrorToken:
			return "", fmt.Errorf("unterminated function call at %s", t)
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		}
		p.pos++
		sb.WriteString(t.data)
		if depth == 0 {
			return sb.String(), nil
		}
	}
}
