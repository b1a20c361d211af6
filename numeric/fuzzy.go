// Package numeric holds the tolerant floating point helpers shared by the
// value model. Repeated unit conversions accumulate drift, so equality,
// ordering and rounding all go through the same epsilon.
package numeric

import (
	"fmt"
	"math"
	"strconv"
)

// Precision is the number of fractional digits kept when numbers are
// serialized.
const Precision = 10

// Epsilon is the absolute tolerance used by all fuzzy comparisons.
const Epsilon = 1e-11

const inverseEpsilon = 1 / Epsilon

// FuzzyEquals reports whether a and b are equal within Epsilon.
func FuzzyEquals(a, b float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) <= Epsilon && math.Round(a*inverseEpsilon) == math.Round(b*inverseEpsilon)
}

func FuzzyLessThan(a, b float64) bool {
	return a < b && !FuzzyEquals(a, b)
}

func FuzzyLessThanOrEquals(a, b float64) bool {
	return a < b || FuzzyEquals(a, b)
}

func FuzzyGreaterThan(a, b float64) bool {
	return a > b && !FuzzyEquals(a, b)
}

func FuzzyGreaterThanOrEquals(a, b float64) bool {
	return a > b || FuzzyEquals(a, b)
}

// FuzzyIsInt reports whether n is within Epsilon of an integer.
func FuzzyIsInt(n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return FuzzyEquals(n, math.Round(n))
}

// FuzzyAsInt returns the integer n is fuzzily equal to.
func FuzzyAsInt(n float64) (int, bool) {
	if !FuzzyIsInt(n) {
		return 0, false
	}
	r := math.Round(n)
	if r >= 1<<63 || r < -1<<63 {
		return 0, false
	}
	return int(r), true
}

// FuzzyRound rounds n to the nearest integer. Values within Epsilon of x.5
// round away from zero for positive numbers and towards zero for negative
// ones, matching the reference rounding.
func FuzzyRound(n float64) int {
	frac := n - math.Floor(n)
	if n > 0 {
		if FuzzyLessThan(frac, 0.5) {
			return int(math.Floor(n))
		}
		return int(math.Ceil(n))
	}
	if FuzzyLessThanOrEquals(frac, 0.5) {
		return int(math.Floor(n))
	}
	return int(math.Ceil(n))
}

// RangeError is returned by FuzzyAssertRange.
type RangeError struct {
	Name     string
	Min, Max float64
	Value    float64
}

func (e *RangeError) Error() string {
	name := ""
	if e.Name != "" {
		name = " " + e.Name
	}
	return fmt.Sprintf("Invalid value:%s must be between %s and %s: %s.", name,
		formatPlain(e.Min), formatPlain(e.Max), formatPlain(e.Value))
}

// FuzzyAssertRange returns n clamped to [lo, hi] if it is within Epsilon of
// either bound, n itself if it is strictly inside, and an error otherwise.
func FuzzyAssertRange(n, lo, hi float64, name string) (float64, error) {
	if FuzzyEquals(n, lo) {
		return lo, nil
	}
	if FuzzyEquals(n, hi) {
		return hi, nil
	}
	if n > lo && n < hi {
		return n, nil
	}
	return 0, &RangeError{Name: name, Min: lo, Max: hi, Value: n}
}

// CheckIntRange fails unless lo <= n <= hi.
func CheckIntRange(n, lo, hi int, name string) error {
	if n < lo || n > hi {
		return &RangeError{Name: name, Min: float64(lo), Max: float64(hi), Value: float64(n)}
	}
	return nil
}

// ModuloLikeSass returns a % b where the sign of a non-zero result follows
// the divisor.
func ModuloLikeSass(a, b float64) float64 {
	if math.IsInf(a, 0) {
		return math.NaN()
	}
	if math.IsInf(b, 0) {
		if math.Signbit(a) == math.Signbit(b) {
			return a
		}
		return b
	}
	if b == 0 {
		return math.NaN()
	}
	r := math.Mod(a, b)
	if r < 0 {
		r += math.Abs(b)
	}
	if b > 0 {
		return r
	}
	if r == 0 {
		return 0
	}
	return r + b
}

func formatPlain(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
