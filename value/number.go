package value

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"sassval/numeric"
)

// unitShape selects one of the three number representations. Unitless and
// single-unit numbers, by far the most common, never allocate unit slices.
type unitShape int

const (
	shapeUnitless unitShape = iota
	shapeSingle
	shapeComplex
)

// Number is a SassScript number: a float64 magnitude with ordered numerator
// and denominator units.
type Number struct {
	scalar

	value        float64
	shape        unitShape
	unit         string
	numerators   []string
	denominators []string

	// slash remembers the operands of a slash-separated division such as
	// "16px/1.5" for display only.
	slash *slashPair
}

type slashPair struct {
	numerator, denominator *Number
}

// NewNumber returns a unitless number.
func NewNumber(v float64) *Number {
	return &Number{value: v}
}

// NewNumberWithUnit returns a number with a single numerator unit, or a
// unitless number if unit is empty.
func NewNumberWithUnit(v float64, unit string) *Number {
	if unit == "" {
		return NewNumber(v)
	}
	return &Number{value: v, shape: shapeSingle, unit: unit}
}

// NewNumberWithUnits returns a number with arbitrary units. Order and
// duplicates are significant.
func NewNumberWithUnits(v float64, numerators, denominators []string) *Number {
	switch {
	case len(numerators) == 0 && len(denominators) == 0:
		return NewNumber(v)
	case len(numerators) == 1 && len(denominators) == 0:
		return NewNumberWithUnit(v, numerators[0])
	}
	return &Number{
		value:        v,
		shape:        shapeComplex,
		numerators:   slices.Clone(numerators),
		denominators: slices.Clone(denominators),
	}
}

func (n *Number) Value() float64 { return n.value }

func (n *Number) units() (numerators, denominators []string) {
	switch n.shape {
	case shapeSingle:
		return []string{n.unit}, nil
	case shapeComplex:
		return n.numerators, n.denominators
	}
	return nil, nil
}

// NumeratorUnits returns a copy of the numerator units.
func (n *Number) NumeratorUnits() []string {
	num, _ := n.units()
	return slices.Clone(num)
}

// DenominatorUnits returns a copy of the denominator units.
func (n *Number) DenominatorUnits() []string {
	_, den := n.units()
	return slices.Clone(den)
}

func (n *Number) HasUnits() bool { return n.shape != shapeUnitless }

// HasUnit reports whether n has exactly the single numerator unit unit.
func (n *Number) HasUnit(unit string) bool {
	return n.shape == shapeSingle && n.unit == unit
}

// CompatibleWithUnit reports whether n can be converted to unit.
func (n *Number) CompatibleWithUnit(unit string) bool {
	switch n.shape {
	case shapeUnitless:
		return true
	case shapeSingle:
		_, ok := conversionFactor(n.unit, unit)
		return ok
	}
	return false
}

// UnitString renders the units of n, or an empty string for unitless numbers.
func (n *Number) UnitString() string {
	if !n.HasUnits() {
		return ""
	}
	num, den := n.units()
	return unitString(num, den)
}

func (n *Number) IsInt() bool { return numeric.FuzzyIsInt(n.value) }

// AssertInt returns n as an integer if it is fuzzily one.
func (n *Number) AssertInt(name string) (int, error) {
	if i, ok := numeric.FuzzyAsInt(n.value); ok {
		return i, nil
	}
	return 0, argumentError(name, "%s is not an int.", n)
}

func (n *Number) AssertNoUnits(name string) error {
	if !n.HasUnits() {
		return nil
	}
	return argumentError(name, "Expected %s to have no units.", n)
}

func (n *Number) AssertUnit(unit, name string) error {
	if n.HasUnit(unit) {
		return nil
	}
	return argumentError(name, "Expected %s to have unit \"%s\".", n, unit)
}

// AsSlash returns the original operands if n was produced by a
// slash-separated division that is still displayed as such.
func (n *Number) AsSlash() (numerator, denominator *Number, ok bool) {
	if n.slash == nil {
		return nil, nil, false
	}
	return n.slash.numerator, n.slash.denominator, true
}

// WithSlash returns a copy of n displayed as numerator/denominator.
func (n *Number) WithSlash(numerator, denominator *Number) *Number {
	c := *n
	c.slash = &slashPair{numerator: numerator, denominator: denominator}
	return &c
}

func (n *Number) WithoutSlash() *Number {
	if n.slash == nil {
		return n
	}
	return n.withValue(n.value)
}

// withValue returns a number with n's units and magnitude v.
func (n *Number) withValue(v float64) *Number {
	c := *n
	c.value = v
	c.slash = nil
	return &c
}

// Coerce returns n converted to the given units. Unitless numbers and
// conversions to no units always succeed.
func (n *Number) Coerce(numerators, denominators []string, name string) (*Number, error) {
	v, err := n.CoerceValue(numerators, denominators, name)
	if err != nil {
		return nil, err
	}
	return NewNumberWithUnits(v, numerators, denominators), nil
}

func (n *Number) CoerceValue(numerators, denominators []string, name string) (float64, error) {
	return n.convertOrCoerceValue(numerators, denominators, true, name, nil, "")
}

func (n *Number) CoerceValueToUnit(unit, name string) (float64, error) {
	return n.CoerceValue([]string{unit}, nil, name)
}

// ConvertValue is like CoerceValue but treats unitless numbers as
// incompatible with numbers that have units.
func (n *Number) ConvertValue(numerators, denominators []string, name string) (float64, error) {
	return n.convertOrCoerceValue(numerators, denominators, false, name, nil, "")
}

// CoerceToMatch returns n converted to the units of other.
func (n *Number) CoerceToMatch(other *Number, name, otherName string) (*Number, error) {
	v, err := n.CoerceValueToMatch(other, name, otherName)
	if err != nil {
		return nil, err
	}
	num, den := other.units()
	return NewNumberWithUnits(v, num, den), nil
}

func (n *Number) CoerceValueToMatch(other *Number, name, otherName string) (float64, error) {
	num, den := other.units()
	return n.convertOrCoerceValue(num, den, true, name, other, otherName)
}

func (n *Number) ConvertToMatch(other *Number, name, otherName string) (*Number, error) {
	v, err := n.ConvertValueToMatch(other, name, otherName)
	if err != nil {
		return nil, err
	}
	num, den := other.units()
	return NewNumberWithUnits(v, num, den), nil
}

func (n *Number) ConvertValueToMatch(other *Number, name, otherName string) (float64, error) {
	num, den := other.units()
	return n.convertOrCoerceValue(num, den, false, name, other, otherName)
}

// IsComparableTo reports whether n and other can be compared or added.
func (n *Number) IsComparableTo(other *Number) bool {
	if !n.HasUnits() || !other.HasUnits() {
		return true
	}
	_, err := other.CoerceValueToMatch(n, "", "")
	return err == nil
}

// firstConvertible finds the first unit in candidates that converts to
// unit, scanning left to right. The first match wins even if a later one
// would be exact.
func firstConvertible(unit string, candidates []string) (int, float64) {
	for i, c := range candidates {
		if f, ok := conversionFactor(unit, c); ok {
			return i, f
		}
	}
	return -1, 0
}

func (n *Number) convertOrCoerceValue(newNum, newDen []string, coerceUnitless bool, name string, other *Number, otherName string) (float64, error) {
	num, den := n.units()
	if slices.Equal(num, newNum) && slices.Equal(den, newDen) {
		return n.value, nil
	}

	otherHasUnits := len(newNum) > 0 || len(newDen) > 0
	if coerceUnitless && (!otherHasUnits || !n.HasUnits()) {
		return n.value, nil
	}

	if n.shape == shapeSingle && len(newNum) == 1 && len(newDen) == 0 {
		if f, ok := conversionFactor(newNum[0], n.unit); ok {
			return n.value * f, nil
		}
		return 0, n.compatibilityError(otherHasUnits, newNum, newDen, name, other, otherName)
	}

	v := n.value
	oldNum := slices.Clone(num)
	for _, u := range newNum {
		i, f := firstConvertible(u, oldNum)
		if i < 0 {
			return 0, n.compatibilityError(otherHasUnits, newNum, newDen, name, other, otherName)
		}
		v *= f
		oldNum = slices.Delete(oldNum, i, i+1)
	}

	oldDen := slices.Clone(den)
	for _, u := range newDen {
		i, f := firstConvertible(u, oldDen)
		if i < 0 {
			return 0, n.compatibilityError(otherHasUnits, newNum, newDen, name, other, otherName)
		}
		v /= f
		oldDen = slices.Delete(oldDen, i, i+1)
	}

	if len(oldNum) > 0 || len(oldDen) > 0 {
		return 0, n.compatibilityError(otherHasUnits, newNum, newDen, name, other, otherName)
	}
	return v, nil
}

func (n *Number) compatibilityError(otherHasUnits bool, newNum, newDen []string, name string, other *Number, otherName string) error {
	if other != nil {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%s and", n)
		if otherName != "" {
			sb.WriteString(" $" + otherName + ":")
		}
		fmt.Fprintf(&sb, " %s have incompatible units", other)
		if !n.HasUnits() || !otherHasUnits {
			sb.WriteString(" (one has units and the other doesn't)")
		}
		return argumentError(name, "%s.", sb.String())
	}

	if !otherHasUnits {
		return argumentError(name, "Expected %s to have no units.", n)
	}

	if len(newNum) == 1 && len(newDen) == 0 {
		if f, ok := familyByUnit[newNum[0]]; ok {
			article := "a"
			if strings.ContainsRune("aeiou", rune(f.name[0])) {
				article = "an"
			}
			return argumentError(name, "Expected %s to have %s %s unit (%s).", n, article, f.name, strings.Join(f.units, ", "))
		}
	}

	plural := "s"
	if len(newNum)+len(newDen) == 1 {
		plural = ""
	}
	return argumentError(name, "Expected %s to have unit%s %s.", n, plural, unitString(newNum, newDen))
}

// coerceUnits converts other to n's units and applies op. On failure the
// conversion is repeated in the other direction so the message names n
// first.
func (n *Number) coerceUnits(other *Number, op func(a, b float64) float64) (float64, error) {
	v, err := other.CoerceValueToMatch(n, "", "")
	if err != nil {
		if _, err2 := n.CoerceValueToMatch(other, "", ""); err2 != nil {
			return 0, err2
		}
		return 0, err
	}
	return op(n.value, v), nil
}

// multiplyUnits builds the product of n's units with the given ones,
// cancelling convertible pairs left to right.
func (n *Number) multiplyUnits(v float64, otherNum, otherDen []string) *Number {
	num, den := n.units()

	remainingOtherDen := slices.Clone(otherDen)
	var newNum []string
	for _, u := range num {
		if i, f := firstConvertible(u, remainingOtherDen); i >= 0 {
			v /= f
			remainingOtherDen = slices.Delete(remainingOtherDen, i, i+1)
			continue
		}
		newNum = append(newNum, u)
	}

	remainingDen := slices.Clone(den)
	for _, u := range otherNum {
		if i, f := firstConvertible(u, remainingDen); i >= 0 {
			v /= f
			remainingDen = slices.Delete(remainingDen, i, i+1)
			continue
		}
		newNum = append(newNum, u)
	}

	return NewNumberWithUnits(v, newNum, append(remainingDen, remainingOtherDen...))
}

func plus(a, b float64) float64  { return a + b }
func minus(a, b float64) float64 { return a - b }

func (n *Number) operate(op BinaryOperator, other Value) (Value, bool, error) {
	o, ok := other.(*Number)
	if !ok {
		switch op {
		case OpPlus, OpMinus:
			if _, isColor := other.(*Color); isColor {
				return nil, true, undefinedOperation(n, op.String(), other)
			}
		}
		return nil, false, nil
	}

	switch op {
	case OpGreaterThan:
		return n.compare(o, numeric.FuzzyGreaterThan)
	case OpGreaterThanOrEquals:
		return n.compare(o, numeric.FuzzyGreaterThanOrEquals)
	case OpLessThan:
		return n.compare(o, numeric.FuzzyLessThan)
	case OpLessThanOrEquals:
		return n.compare(o, numeric.FuzzyLessThanOrEquals)
	case OpPlus:
		return n.arithmetic(o, plus)
	case OpMinus:
		return n.arithmetic(o, minus)
	case OpModulo:
		return n.arithmetic(o, numeric.ModuloLikeSass)
	case OpTimes:
		if !o.HasUnits() {
			return n.withValue(n.value * o.value), true, nil
		}
		return n.multiplyUnits(n.value*o.value, o.numeratorsView(), o.denominatorsView()), true, nil
	case OpDividedBy:
		// float division already yields signed infinities and NaN
		v := n.value / o.value
		if !o.HasUnits() {
			return n.withValue(v), true, nil
		}
		return n.multiplyUnits(v, o.denominatorsView(), o.numeratorsView()), true, nil
	}
	return nil, false, nil
}

func (n *Number) numeratorsView() []string {
	num, _ := n.units()
	return num
}

func (n *Number) denominatorsView() []string {
	_, den := n.units()
	return den
}

func (n *Number) compare(o *Number, cmp func(a, b float64) bool) (Value, bool, error) {
	v, err := n.coerceUnits(o, func(a, b float64) float64 {
		if cmp(a, b) {
			return 1
		}
		return 0
	})
	if err != nil {
		return nil, true, err
	}
	return Bool(v == 1), true, nil
}

// arithmetic applies an additive operator. A unitless left operand takes
// the units of the right one.
func (n *Number) arithmetic(o *Number, op func(a, b float64) float64) (Value, bool, error) {
	if !n.HasUnits() {
		return o.withValue(op(n.value, o.value)), true, nil
	}
	v, err := n.coerceUnits(o, op)
	if err != nil {
		return nil, true, err
	}
	return n.withValue(v), true, nil
}

func (n *Number) operateUnary(op UnaryOperator) (Value, bool, error) {
	switch op {
	case OpUnaryPlus:
		return n, true, nil
	case OpUnaryMinus:
		return n.withValue(-n.value), true, nil
	}
	return nil, false, nil
}

func isSpecialFloat(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Equals compares numbers after converting both to canonical units. NaN and
// infinities are never equal, not even to themselves.
func (n *Number) Equals(other Value) bool {
	o, ok := other.(*Number)
	if !ok {
		return false
	}
	if isSpecialFloat(n.value) || isSpecialFloat(o.value) {
		return false
	}

	num, den := n.units()
	oNum, oDen := o.units()
	if len(num) != len(oNum) || len(den) != len(oDen) {
		return false
	}
	if !n.HasUnits() {
		return numeric.FuzzyEquals(n.value, o.value)
	}
	if !slices.Equal(canonicalizeUnits(num), canonicalizeUnits(oNum)) ||
		!slices.Equal(canonicalizeUnits(den), canonicalizeUnits(oDen)) {
		return false
	}
	return numeric.FuzzyEquals(
		n.value*canonicalMultiplierOf(num)/canonicalMultiplierOf(den),
		o.value*canonicalMultiplierOf(oNum)/canonicalMultiplierOf(oDen),
	)
}

func (n *Number) AsList() []Value { return []Value{n} }

func (n *Number) CSSString() (string, error) {
	if n.slash != nil {
		num, err := n.slash.numerator.CSSString()
		if err != nil {
			return "", err
		}
		den, err := n.slash.denominator.CSSString()
		if err != nil {
			return "", err
		}
		return num + "/" + den, nil
	}
	switch n.shape {
	case shapeUnitless:
		return SerializeNumber(n.value), nil
	case shapeSingle:
		return SerializeNumber(n.value) + n.unit, nil
	}
	return "", newError("%s is not a valid CSS value.", n)
}

func (n *Number) String() string {
	if n.slash != nil {
		return n.slash.numerator.String() + "/" + n.slash.denominator.String()
	}
	return SerializeNumber(n.value) + n.UnitString()
}
