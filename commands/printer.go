// Package commands implements program subcommands.
package commands

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"sassval/config"
	"sassval/value"
)

// line is what output line template sees.
type line struct {
	Index   int
	Literal string
	Result  string
}

type printer struct {
	w     io.Writer
	out   config.OutputConfig
	tmpl  *template.Template
	count int
}

func newPrinter(w io.Writer, out config.OutputConfig) (*printer, error) {
	tmpl, err := template.New(string(config.LineTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(out.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("unable to parse line template: %w", err)
	}
	return &printer{w: w, out: out, tmpl: tmpl}, nil
}

// render produces text for v according to output mode.
func render(v value.Value, out config.OutputConfig) (string, error) {
	if out.Mode != "css" {
		return v.String(), nil
	}
	if s, ok := v.(*value.String); ok && !out.Quote {
		return s.UnquotedCSSString(), nil
	}
	return v.CSSString()
}

func (p *printer) print(literal string, v value.Value) error {
	result, err := render(v, p.out)
	if err != nil {
		return err
	}

	p.count++
	var b strings.Builder
	if err := p.tmpl.Execute(&b, line{Index: p.count, Literal: literal, Result: result}); err != nil {
		return fmt.Errorf("unable to execute line template: %w", err)
	}
	b.WriteByte('\n')
	if p.out.Tree {
		b.WriteString(value.Dump(v))
	}
	if _, err := io.WriteString(p.w, b.String()); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	return nil
}
