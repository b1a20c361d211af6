package value

import (
	"fmt"
	"math"

	"sassval/numeric"
)

// Color is an sRGB color with an alpha channel. Both the RGB and the HSL
// representations are computed at construction, so colors are plain
// immutable data.
type Color struct {
	scalar

	red, green, blue           int
	hue, saturation, lightness float64
	alpha                      float64
}

// RGBChannels selects the channels to replace in ChangeRGB. Nil fields keep
// the current value.
type RGBChannels struct {
	Red, Green, Blue *int
	Alpha            *float64
}

type HSLChannels struct {
	Hue, Saturation, Lightness *float64
	Alpha                      *float64
}

type HWBChannels struct {
	Hue, Whiteness, Blackness *float64
	Alpha                     *float64
}

// RGB returns an opaque color. Channels must be in [0, 255].
func RGB(red, green, blue int) (*Color, error) {
	return RGBA(red, green, blue, 1)
}

// RGBA returns a color with the given channels. alpha must be fuzzily
// within [0, 1] and is clamped to it.
func RGBA(red, green, blue int, alpha float64) (*Color, error) {
	a, err := numeric.FuzzyAssertRange(alpha, 0, 1, "alpha")
	if err != nil {
		return nil, rangeError(err)
	}
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", red}, {"green", green}, {"blue", blue}} {
		if err := numeric.CheckIntRange(ch.value, 0, 255, ch.name); err != nil {
			return nil, rangeError(err)
		}
	}

	c := &Color{red: red, green: green, blue: blue, alpha: a}
	c.hue, c.saturation, c.lightness = rgbToHSL(red, green, blue)
	return c, nil
}

func HSL(hue, saturation, lightness float64) (*Color, error) {
	return HSLA(hue, saturation, lightness, 1)
}

// HSLA returns a color from hue in degrees and saturation and lightness as
// percentages in [0, 100].
func HSLA(hue, saturation, lightness, alpha float64) (*Color, error) {
	a, err := numeric.FuzzyAssertRange(alpha, 0, 1, "alpha")
	if err != nil {
		return nil, rangeError(err)
	}
	s, err := numeric.FuzzyAssertRange(saturation, 0, 100, "saturation")
	if err != nil {
		return nil, rangeError(err)
	}
	l, err := numeric.FuzzyAssertRange(lightness, 0, 100, "lightness")
	if err != nil {
		return nil, rangeError(err)
	}

	c := &Color{hue: math.Mod(hue, 360), saturation: s, lightness: l, alpha: a}
	c.red, c.green, c.blue = hslToRGB(c.hue, s, l)
	return c, nil
}

func HWB(hue, whiteness, blackness float64) (*Color, error) {
	return HWBA(hue, whiteness, blackness, 1)
}

// HWBA returns a color from hue, whiteness and blackness. When whiteness
// and blackness add up to more than 100 they are scaled down
// proportionally.
func HWBA(hue, whiteness, blackness, alpha float64) (*Color, error) {
	w, err := numeric.FuzzyAssertRange(whiteness, 0, 100, "whiteness")
	if err != nil {
		return nil, rangeError(err)
	}
	b, err := numeric.FuzzyAssertRange(blackness, 0, 100, "blackness")
	if err != nil {
		return nil, rangeError(err)
	}

	scaledHue := math.Mod(hue, 360) / 360
	w, b = w/100, b/100
	if sum := w + b; sum > 1 {
		w /= sum
		b /= sum
	}
	factor := 1 - w - b
	channel := func(h float64) int {
		return numeric.FuzzyRound((hueToRGB(0, 1, h)*factor + w) * 255)
	}
	return RGBA(channel(scaledHue+1.0/3), channel(scaledHue), channel(scaledHue-1.0/3), alpha)
}

func (c *Color) Red() int   { return c.red }
func (c *Color) Green() int { return c.green }
func (c *Color) Blue() int  { return c.blue }

// Hue returns the hue in degrees. Hues given to HSL or HWB keep their sign.
func (c *Color) Hue() float64        { return c.hue }
func (c *Color) Saturation() float64 { return c.saturation }
func (c *Color) Lightness() float64  { return c.lightness }

func (c *Color) Whiteness() float64 {
	return float64(min(c.red, c.green, c.blue)) / 255 * 100
}

func (c *Color) Blackness() float64 {
	return 100 - float64(max(c.red, c.green, c.blue))/255*100
}

func (c *Color) Alpha() float64 { return c.alpha }

// ChangeRGB returns a color with the given RGB channels replaced.
func (c *Color) ChangeRGB(ch RGBChannels) (*Color, error) {
	return RGBA(
		valueOr(ch.Red, c.red),
		valueOr(ch.Green, c.green),
		valueOr(ch.Blue, c.blue),
		valueOr(ch.Alpha, c.alpha),
	)
}

func (c *Color) ChangeHSL(ch HSLChannels) (*Color, error) {
	return HSLA(
		valueOr(ch.Hue, c.hue),
		valueOr(ch.Saturation, c.saturation),
		valueOr(ch.Lightness, c.lightness),
		valueOr(ch.Alpha, c.alpha),
	)
}

func (c *Color) ChangeHWB(ch HWBChannels) (*Color, error) {
	return HWBA(
		valueOr(ch.Hue, c.hue),
		valueOr(ch.Whiteness, c.Whiteness()),
		valueOr(ch.Blackness, c.Blackness()),
		valueOr(ch.Alpha, c.alpha),
	)
}

// ChangeAlpha returns c with a different alpha channel.
func (c *Color) ChangeAlpha(alpha float64) (*Color, error) {
	a, err := numeric.FuzzyAssertRange(alpha, 0, 1, "alpha")
	if err != nil {
		return nil, rangeError(err)
	}
	cc := *c
	cc.alpha = a
	return &cc, nil
}

func valueOr[T any](p *T, def T) T {
	if p != nil {
		return *p
	}
	return def
}

// operate rejects color arithmetic with numbers and other colors. Other
// operands fall through to the generic string concatenation.
func (c *Color) operate(op BinaryOperator, other Value) (Value, bool, error) {
	switch op {
	case OpPlus, OpMinus, OpDividedBy, OpModulo:
		switch other.(type) {
		case *Number, *Color:
			return nil, true, undefinedOperation(c, op.String(), other)
		}
	}
	return nil, false, nil
}

// Equals compares RGB channels and alpha. Colors built through different
// color spaces are equal when they end up at the same RGB triple.
func (c *Color) Equals(other Value) bool {
	o, ok := other.(*Color)
	if !ok {
		return false
	}
	return c.red == o.red && c.green == o.green && c.blue == o.blue &&
		numeric.FuzzyEquals(c.alpha, o.alpha)
}

func (c *Color) AsList() []Value { return []Value{c} }

func (c *Color) CSSString() (string, error) { return c.String(), nil }

func (c *Color) String() string {
	if numeric.FuzzyEquals(c.alpha, 1) {
		if name, ok := colorName(c.red, c.green, c.blue); ok {
			return name
		}
		return fmt.Sprintf("#%02x%02x%02x", c.red, c.green, c.blue)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.red, c.green, c.blue, SerializeNumber(c.alpha))
}

func rgbToHSL(red, green, blue int) (hue, saturation, lightness float64) {
	r, g, b := float64(red)/255, float64(green)/255, float64(blue)/255
	hi, lo := max(r, g, b), min(r, g, b)
	delta := hi - lo

	switch {
	case delta == 0:
		hue = 0
	case hi == r:
		hue = 60 * (g - b) / delta
	case hi == g:
		hue = 120 + 60*(b-r)/delta
	default:
		hue = 240 + 60*(r-g)/delta
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}

	lightness = 50 * (hi + lo)
	switch {
	case delta == 0:
		saturation = 0
	case lightness < 50:
		saturation = 100 * delta / (hi + lo)
	default:
		saturation = 100 * delta / (2 - hi - lo)
	}
	return hue, saturation, lightness
}

func hslToRGB(hue, saturation, lightness float64) (red, green, blue int) {
	h, s, l := hue/360, saturation/100, lightness/100

	var m2 float64
	if l <= 0.5 {
		m2 = l * (s + 1)
	} else {
		m2 = l + s - l*s
	}
	m1 := l*2 - m2

	return numeric.FuzzyRound(hueToRGB(m1, m2, h+1.0/3) * 255),
		numeric.FuzzyRound(hueToRGB(m1, m2, h) * 255),
		numeric.FuzzyRound(hueToRGB(m1, m2, h-1.0/3) * 255)
}

// hueToRGB returns a channel in [0, 1] for a hue expressed in turns. The
// hue may lie outside [0, 1], including negative values.
func hueToRGB(m1, m2, h float64) float64 {
	for h < 0 {
		h++
	}
	for h > 1 {
		h--
	}

	switch {
	case h < 1.0/6:
		return m1 + (m2-m1)*h*6
	case h < 1.0/2:
		return m2
	case h < 2.0/3:
		return m1 + (m2-m1)*(2.0/3-h)*6
	}
	return m1
}
