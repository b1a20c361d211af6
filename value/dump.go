package value

import (
	"sassval/utils/debug"
)

// Dump renders v as an indented tree that exposes structure the debug
// string hides: quoting, separators, brackets, unit lists and both color
// representations.
func Dump(v Value) string {
	tw := debug.NewTreeWriter()
	dump(tw, 0, v)
	return tw.String()
}

func dump(tw *debug.TreeWriter, depth int, v Value) {
	switch x := v.(type) {
	case *Number:
		attrs := []debug.Attr{debug.A("value", SerializeNumber(x.value))}
		if x.HasUnits() {
			attrs = append(attrs, debug.A("units", x.UnitString()))
		}
		tw.Node(depth, "number", attrs...)
		if x.slash != nil {
			tw.Line(depth+1, "slash")
			dump(tw, depth+2, x.slash.numerator)
			dump(tw, depth+2, x.slash.denominator)
		}
	case *Color:
		tw.Node(depth, "color", debug.A("css", x.String()))
		tw.Line(depth+1, "rgb %d %d %d", x.red, x.green, x.blue)
		tw.Line(depth+1, "hsl %s %s %s",
			SerializeNumber(x.hue), SerializeNumber(x.saturation), SerializeNumber(x.lightness))
		tw.Line(depth+1, "alpha %s", SerializeNumber(x.alpha))
	case *String:
		tw.Node(depth, "string", debug.A("quoted", x.quoted))
		tw.Text(depth+1, "text", x.text)
	case *Boolean:
		tw.Node(depth, "boolean", debug.A("value", x.value))
	case *Function:
		tw.Node(depth, "function")
		tw.Text(depth+1, "name", x.name)
	case *List:
		tw.Node(depth, "list",
			debug.A("separator", x.separator),
			debug.A("brackets", x.brackets),
			debug.A("len", len(x.contents)))
		for _, e := range x.contents {
			dump(tw, depth+1, e)
		}
	case *Map:
		tw.Node(depth, "map", debug.A("len", len(x.entries)))
		for _, e := range x.entries {
			tw.Line(depth+1, "entry")
			dump(tw, depth+2, e.Key)
			dump(tw, depth+2, e.Value)
		}
	default:
		tw.Node(depth, v.String())
	}
}
