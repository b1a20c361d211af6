package value

// BinaryOperator is a SassScript infix operator.
type BinaryOperator int

const (
	OpSingleEquals BinaryOperator = iota
	OpEquals
	OpNotEquals
	OpGreaterThan
	OpGreaterThanOrEquals
	OpLessThan
	OpLessThanOrEquals
	OpTimes
	OpModulo
	OpPlus
	OpMinus
	OpDividedBy
)

var binarySymbols = map[BinaryOperator]string{
	OpSingleEquals:        "=",
	OpEquals:              "==",
	OpNotEquals:           "!=",
	OpGreaterThan:         ">",
	OpGreaterThanOrEquals: ">=",
	OpLessThan:            "<",
	OpLessThanOrEquals:    "<=",
	OpTimes:               "*",
	OpModulo:              "%",
	OpPlus:                "+",
	OpMinus:               "-",
	OpDividedBy:           "/",
}

func (op BinaryOperator) String() string {
	return binarySymbols[op]
}

// ParseBinaryOperator maps an operator symbol to its BinaryOperator.
func ParseBinaryOperator(symbol string) (BinaryOperator, bool) {
	for op, s := range binarySymbols {
		if s == symbol {
			return op, true
		}
	}
	return 0, false
}

// UnaryOperator is a SassScript prefix operator.
type UnaryOperator int

const (
	OpUnaryPlus UnaryOperator = iota
	OpUnaryMinus
	OpUnaryDivide
	OpNot
)

func (op UnaryOperator) String() string {
	switch op {
	case OpUnaryPlus:
		return "+"
	case OpUnaryMinus:
		return "-"
	case OpUnaryDivide:
		return "/"
	default:
		return "not"
	}
}

func ParseUnaryOperator(symbol string) (UnaryOperator, bool) {
	switch symbol {
	case "+":
		return OpUnaryPlus, true
	case "-":
		return OpUnaryMinus, true
	case "/":
		return OpUnaryDivide, true
	case "not":
		return OpNot, true
	}
	return 0, false
}

// operand is implemented by values that override some binary operators.
// handled is false when the default behavior applies.
type operand interface {
	operate(op BinaryOperator, other Value) (result Value, handled bool, err error)
}

type unaryOperand interface {
	operateUnary(op UnaryOperator) (result Value, handled bool, err error)
}

// Apply evaluates left op right.
func Apply(op BinaryOperator, left, right Value) (Value, error) {
	switch op {
	case OpEquals:
		return Bool(left.Equals(right)), nil
	case OpNotEquals:
		return Bool(!left.Equals(right)), nil
	}
	if o, ok := left.(operand); ok {
		if v, handled, err := o.operate(op, right); handled {
			return v, err
		}
	}
	return fallback(op, left, right)
}

// ApplyUnary evaluates op v.
func ApplyUnary(op UnaryOperator, v Value) (Value, error) {
	if op == OpNot {
		return Not(v), nil
	}
	if o, ok := v.(unaryOperand); ok {
		if r, handled, err := o.operateUnary(op); handled {
			return r, err
		}
	}
	css, err := v.CSSString()
	if err != nil {
		return nil, err
	}
	return NewString(op.String()+css, false), nil
}

// fallback implements the operators for values that do not define them:
// "+", "-" and "/" concatenate the CSS forms, "=" joins them with "=" and
// everything else is an undefined operation.
func fallback(op BinaryOperator, left, right Value) (Value, error) {
	switch op {
	case OpPlus, OpMinus, OpDividedBy, OpSingleEquals:
	default:
		return nil, undefinedOperation(left, op.String(), right)
	}

	l, err := left.CSSString()
	if err != nil {
		return nil, err
	}
	if s, ok := right.(*String); ok && op == OpPlus {
		return NewString(l+s.Text(), s.HasQuotes()), nil
	}
	r, err := right.CSSString()
	if err != nil {
		return nil, err
	}
	if op == OpPlus {
		return NewString(l+r, false), nil
	}
	return NewString(l+op.String()+r, false), nil
}

// SingleEquals implements the legacy "=" operator.
func SingleEquals(left, right Value) (Value, error) { return Apply(OpSingleEquals, left, right) }

func GreaterThan(left, right Value) (Value, error) { return Apply(OpGreaterThan, left, right) }

func GreaterThanOrEquals(left, right Value) (Value, error) {
	return Apply(OpGreaterThanOrEquals, left, right)
}

func LessThan(left, right Value) (Value, error) { return Apply(OpLessThan, left, right) }

func LessThanOrEquals(left, right Value) (Value, error) {
	return Apply(OpLessThanOrEquals, left, right)
}

func Times(left, right Value) (Value, error)     { return Apply(OpTimes, left, right) }
func Modulo(left, right Value) (Value, error)    { return Apply(OpModulo, left, right) }
func Plus(left, right Value) (Value, error)      { return Apply(OpPlus, left, right) }
func Minus(left, right Value) (Value, error)     { return Apply(OpMinus, left, right) }
func DividedBy(left, right Value) (Value, error) { return Apply(OpDividedBy, left, right) }

func UnaryPlus(v Value) (Value, error)   { return ApplyUnary(OpUnaryPlus, v) }
func UnaryMinus(v Value) (Value, error)  { return ApplyUnary(OpUnaryMinus, v) }
func UnaryDivide(v Value) (Value, error) { return ApplyUnary(OpUnaryDivide, v) }

// Not implements the "not" operator.
func Not(v Value) *Boolean {
	return Bool(!v.IsTruthy())
}
