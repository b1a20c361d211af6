package value

import (
	"slices"
	"strings"
)

// unitFamily groups interconvertible units. perReference holds how many of
// each unit make up one reference quantity (one inch, one turn, ...), and
// units lists members with the canonical unit first.
type unitFamily struct {
	name         string
	units        []string
	perReference map[string]float64
}

var unitFamilies = []*unitFamily{
	{
		name:  "length",
		units: []string{"in", "cm", "pc", "mm", "q", "pt", "px"},
		perReference: map[string]float64{
			"in": 1,
			"pc": 6,
			"pt": 72,
			"px": 96,
			"cm": 2.54,
			"mm": 25.4,
			"q":  101.6,
		},
	},
	{
		name:  "angle",
		units: []string{"deg", "grad", "rad", "turn"},
		perReference: map[string]float64{
			"deg":  360,
			"grad": 400,
			"rad":  6.28318530717958647692528676,
			"turn": 1,
		},
	},
	{
		name:         "time",
		units:        []string{"s", "ms"},
		perReference: map[string]float64{"s": 1, "ms": 1000},
	},
	{
		name:         "frequency",
		units:        []string{"Hz", "kHz"},
		perReference: map[string]float64{"Hz": 1, "kHz": 0.001},
	},
	{
		name:  "pixel density",
		units: []string{"dpi", "dpcm", "dppx"},
		perReference: map[string]float64{
			"dpi":  1,
			"dpcm": 1 / 2.54,
			"dppx": 1.0 / 96,
		},
	},
}

var familyByUnit = func() map[string]*unitFamily {
	m := make(map[string]*unitFamily)
	for _, f := range unitFamilies {
		for _, u := range f.units {
			m[u] = f
		}
	}
	return m
}()

// conversionFactor returns the number of target units in one source unit.
func conversionFactor(target, source string) (float64, bool) {
	if target == source {
		return 1, true
	}
	f, ok := familyByUnit[target]
	if !ok || familyByUnit[source] != f {
		return 0, false
	}
	return f.perReference[target] / f.perReference[source], true
}

// canonicalMultiplier returns the value of one unit expressed in its family's
// canonical unit. Unknown units are their own canonical unit.
func canonicalMultiplier(unit string) float64 {
	f, ok := familyByUnit[unit]
	if !ok {
		return 1
	}
	return f.perReference[f.units[0]] / f.perReference[unit]
}

func canonicalMultiplierOf(units []string) float64 {
	m := 1.0
	for _, u := range units {
		m *= canonicalMultiplier(u)
	}
	return m
}

// canonicalizeUnits replaces every unit with its canonical unit and sorts
// the result so lists can be compared as multisets.
func canonicalizeUnits(units []string) []string {
	if len(units) == 0 {
		return nil
	}
	out := make([]string, len(units))
	for i, u := range units {
		if f, ok := familyByUnit[u]; ok {
			out[i] = f.units[0]
		} else {
			out[i] = u
		}
	}
	slices.Sort(out)
	return out
}

// unitString renders a unit combination for messages and debug output,
// e.g. "px*em/s", "px^-1" or "(px*em)^-1".
func unitString(numerators, denominators []string) string {
	switch {
	case len(numerators) == 0 && len(denominators) == 0:
		return "no units"
	case len(numerators) == 0 && len(denominators) == 1:
		return denominators[0] + "^-1"
	case len(numerators) == 0:
		return "(" + strings.Join(denominators, "*") + ")^-1"
	case len(denominators) == 0:
		return strings.Join(numerators, "*")
	}
	return strings.Join(numerators, "*") + "/" + strings.Join(denominators, "*")
}
