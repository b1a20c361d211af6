package value

import (
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// cssColor4Names holds the CSS Color Module Level 4 keywords missing from
// the SVG 1.1 table.
var cssColor4Names = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
	"transparent":   {},
}

// colorNames maps an RGB triple to its CSS name. Where several names share
// a triple the alphabetically first one is kept, so aqua wins over cyan and
// gray over grey.
var colorNames = func() map[[3]uint8]string {
	m := make(map[[3]uint8]string, len(colornames.Names))
	for _, name := range colornames.Names {
		c := colornames.Map[name]
		key := [3]uint8{c.R, c.G, c.B}
		if _, ok := m[key]; !ok {
			m[key] = name
		}
	}
	rp := cssColor4Names["rebeccapurple"]
	m[[3]uint8{rp.R, rp.G, rp.B}] = "rebeccapurple"
	return m
}()

// LookupNamedColor returns the color with the given CSS name. Names are
// matched case-insensitively. Only transparent has an alpha other than 1.
func LookupNamedColor(name string) (*Color, bool) {
	name = strings.ToLower(name)
	c, ok := colornames.Map[name]
	if !ok {
		if c, ok = cssColor4Names[name]; !ok {
			return nil, false
		}
	}
	col, err := RGBA(int(c.R), int(c.G), int(c.B), float64(c.A)/0xff)
	if err != nil {
		return nil, false
	}
	return col, true
}

func colorName(red, green, blue int) (string, bool) {
	name, ok := colorNames[[3]uint8{uint8(red), uint8(green), uint8(blue)}]
	return name, ok
}
