package css

import (
	"fmt"

	"sassval/numeric"
	"sassval/value"
)

var colorFunctions = map[string]bool{
	"rgb":  true,
	"rgba": true,
	"hsl":  true,
	"hsla": true,
	"hwb":  true,
}

// colorChannels unpacks the arguments of a color function. Both the legacy
// comma syntax and the space syntax with an optional "/ alpha" are accepted.
func colorChannels(args value.Value) ([]*value.Number, *value.Number, error) {
	var channels, alpha []value.Value
	switch {
	case args.Separator() == value.ListSeparatorComma:
		channels = args.AsList()
		if len(channels) == 4 {
			alpha = channels[3:]
			channels = channels[:3]
		}
	case args.Separator() == value.ListSeparatorSlash && len(args.AsList()) == 2:
		parts := args.AsList()
		channels = parts[0].AsList()
		alpha = parts[1:]
	default:
		channels = args.AsList()
	}
	if len(channels) != 3 {
		return nil, nil, fmt.Errorf("expected 3 channels, got %d in %s", len(channels), args)
	}

	out := make([]*value.Number, 3)
	for i, ch := range channels {
		n, err := value.AssertNumber(ch, "")
		if err != nil {
			return nil, nil, err
		}
		out[i] = n
	}
	if len(alpha) == 0 {
		return out, nil, nil
	}
	a, err := value.AssertNumber(alpha[0], "alpha")
	if err != nil {
		return nil, nil, err
	}
	return out, a, nil
}

// percentOr returns n scaled from a percentage to scale, or n itself when it
// has no units.
func percentOr(n *value.Number, scale float64, name string) (float64, error) {
	if n.HasUnit("%") {
		return n.Value() * scale / 100, nil
	}
	if err := n.AssertNoUnits(name); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

// percentage accepts both "50%" and "50".
func percentage(n *value.Number, name string) (float64, error) {
	if n.HasUnit("%") {
		return n.Value(), nil
	}
	if err := n.AssertNoUnits(name); err != nil {
		return 0, err
	}
	return n.Value(), nil
}

func readColor(name string, args value.Value) (*value.Color, error) {
	channels, alphaArg, err := colorChannels(args)
	if err != nil {
		return nil, err
	}

	alpha := 1.0
	if alphaArg != nil {
		if alpha, err = percentOr(alphaArg, 1, "alpha"); err != nil {
			return nil, err
		}
	}

	switch name {
	case "rgb", "rgba":
		var rgb [3]int
		for i, ch := range channels {
			v, err := percentOr(ch, 255, [3]string{"red", "green", "blue"}[i])
			if err != nil {
				return nil, err
			}
			rgb[i] = numeric.FuzzyRound(v)
		}
		return value.RGBA(rgb[0], rgb[1], rgb[2], alpha)
	}

	hue, err := channels[0].CoerceValueToUnit("deg", "hue")
	if err != nil {
		return nil, err
	}
	if name == "hwb" {
		w, err := percentage(channels[1], "whiteness")
		if err != nil {
			return nil, err
		}
		b, err := percentage(channels[2], "blackness")
		if err != nil {
			return nil, err
		}
		return value.HWBA(hue, w, b, alpha)
	}
	s, err := percentage(channels[1], "saturation")
	if err != nil {
		return nil, err
	}
	l, err := percentage(channels[2], "lightness")
	if err != nil {
		return nil, err
	}
	return value.HSLA(hue, s, l, alpha)
}

// hexColor decodes #rgb, #rgba, #rrggbb and #rrggbbaa.
func hexColor(hex string) (*value.Color, bool) {
	for i := 0; i < len(hex); i++ {
		if !isHex(hex[i]) {
			return nil, false
		}
	}

	var digits [4]int
	switch len(hex) {
	case 3, 4:
		for i := range len(hex) {
			d := hexValue(hex[i])
			digits[i] = d<<4 | d
		}
	case 6, 8:
		for i := range len(hex) / 2 {
			digits[i] = hexValue(hex[2*i])<<4 | hexValue(hex[2*i+1])
		}
	default:
		return nil, false
	}

	alpha := 1.0
	if len(hex) == 4 || len(hex) == 8 {
		alpha = float64(digits[3]) / 255
	}
	c, err := value.RGBA(digits[0], digits[1], digits[2], alpha)
	if err != nil {
		return nil, false
	}
	return c, true
}

func hexValue(c byte) int {
	switch {
	case isDigit(c):
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return int(c-'A') + 10
}
