package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassval/value"
)

// Declaration is a single property of a stylesheet rule with its value.
type Declaration struct {
	Selectors []string // rule selectors or at-rule name for @font-face and friends
	Property  string
	Raw       string
	Important bool
	Value     value.Value // nil when Raw could not be read
}

// groupingAtRules only wrap other rules.
var groupingAtRules = map[string]bool{
	"@media":     true,
	"@supports":  true,
	"@layer":     true,
	"@container": true,
	"@document":  true,
}

// ReadSheet reads the value of every declaration in a stylesheet, including
// rules nested in grouping at-rules. Custom properties are skipped. Values
// which could not be read are reported together in returned error, their
// declarations are still returned.
func (r *Reader) ReadSheet(data []byte, source string) ([]Declaration, error) {
	r.log.Debug("Reading stylesheet", zap.String("source", source), zap.Int("bytes", len(data)))

	parser := css.NewParser(parse.NewInput(bytes.NewReader(data)), false)

	var (
		decls     []Declaration
		selectors []string
		errs      error
	)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", source, err))
			}
			r.log.Debug("Stylesheet read", zap.String("source", source), zap.Int("declarations", len(decls)))
			return decls, errs

		case css.BeginAtRuleGrammar:
			name := strings.ToLower(string(data))
			if !groupingAtRules[name] {
				selectors = []string{name}
			}

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			selectors = nil

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			selectors = splitSelectors(data, parser.Values())

		case css.DeclarationGrammar:
			d := Declaration{Selectors: selectors, Property: string(data)}
			d.Raw, d.Important = declarationValue(parser.Values())
			if len(d.Raw) == 0 {
				continue
			}
			v, err := r.Read(d.Raw)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: %s %s: %w", source, strings.Join(selectors, ", "), d.Property, err))
			}
			d.Value = v
			decls = append(decls, d)

		case css.CustomPropertyGrammar:
			// arbitrary token soup, not a value
			continue
		}
	}
}

// splitSelectors builds selector list from prelude tokens.
func splitSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// declarationValue restores value text from declaration tokens, runs of
// whitespace become single space and trailing !important is removed.
func declarationValue(tokens []css.Token) (string, bool) {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.Write(t.Data)
	}
	raw := strings.TrimSpace(sb.String())

	const important = "important"
	if len(raw) < len(important) || !strings.EqualFold(raw[len(raw)-len(important):], important) {
		return raw, false
	}
	head := strings.TrimSpace(raw[:len(raw)-len(important)])
	if rest, ok := strings.CutSuffix(head, "!"); ok {
		return strings.TrimSpace(rest), true
	}
	return raw, false
}
