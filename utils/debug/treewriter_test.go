package debug

import (
	"strings"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}
}

func TestTreeWriter_Node(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		kind  string
		attrs []Attr
		want  string
	}{
		{
			name: "bare",
			kind: "null",
			want: "null\n",
		},
		{
			name:  "indented",
			depth: 2,
			kind:  "boolean",
			attrs: []Attr{A("value", true)},
			want:  "    boolean value=true\n",
		},
		{
			name:  "attribute order kept",
			depth: 1,
			kind:  "list",
			attrs: []Attr{A("separator", "comma"), A("brackets", false), A("len", 3)},
			want:  "  list separator=comma brackets=false len=3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Node(tt.depth, tt.kind, tt.attrs...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Node() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{
			name:   "no depth",
			format: "entry",
			want:   "entry\n",
		},
		{
			name:   "with formatting",
			depth:  1,
			format: "rgb %d %d %d",
			args:   []any{255, 0, 128},
			want:   "  rgb 255 0 128\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Text(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{
			name:  "empty value",
			label: "text",
			want:  "text: \"\"\n",
		},
		{
			name:  "indented",
			depth: 1,
			label: "text",
			value: "hello world",
			want:  "  text: \"hello world\"\n",
		},
		{
			name:  "quotes and newline",
			label: "text",
			value: "say \"hi\"\n",
			want:  "text: \"say \\\"hi\\\"\\n\"\n",
		},
		{
			name:  "backslash",
			label: "text",
			value: `a\b`,
			want:  "text: \"a\\\\b\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Text(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Nested(t *testing.T) {
	tw := NewTreeWriter()
	tw.Node(0, "map", A("len", 1))
	tw.Line(1, "entry")
	tw.Node(2, "string", A("quoted", true))
	tw.Text(3, "text", "key")
	tw.Node(2, "number", A("value", 1))

	want := "map len=1\n  entry\n    string quoted=true\n      text: \"key\"\n    number value=1\n"
	if got := tw.String(); got != want {
		t.Errorf("nested dump:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if !strings.HasSuffix(tw.String(), "\n") {
		t.Error("dump must end with a newline")
	}
}
