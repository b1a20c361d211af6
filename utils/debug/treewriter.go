// Package debug holds helpers for human-readable dumps of nested values.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented, line-oriented rendering of a tree.
// Each depth level indents by two spaces.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

func (tw *TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

// Node writes a node header: its kind followed by optional key=value
// attributes in the given order.
func (tw *TreeWriter) Node(depth int, kind string, attrs ...Attr) {
	tw.indent(depth)
	tw.w.WriteString(kind)
	for _, a := range attrs {
		tw.w.WriteByte(' ')
		tw.w.WriteString(a.Key)
		tw.w.WriteByte('=')
		tw.w.WriteString(a.Value)
	}
	tw.w.WriteByte('\n')
}

// Line writes a free-form formatted line.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Text writes a labelled string, Go-quoted so that whitespace and control
// characters stay visible.
func (tw *TreeWriter) Text(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Attr is a node attribute.
type Attr struct {
	Key, Value string
}

func A(key string, value any) Attr {
	return Attr{Key: key, Value: fmt.Sprint(value)}
}

func encodeText(raw string) string {
	return strconv.Quote(raw)
}
