package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Apply runs op on the two operand strings and returns the raw string form
// of the result. Operands are parsed as float64.
func Apply(op Operator, a, b string) (string, error) {
	x, err := parseOperand(a)
	if err != nil {
		return "", err
	}
	y, err := parseOperand(b)
	if err != nil {
		return "", err
	}
	var r float64
	switch op {
	case OpAdd:
		r = x + y
	case OpSubtract:
		r = x - y
	case OpMultiply:
		r = x * y
	case OpDivide:
		if y == 0 {
			return "", fmt.Errorf("%s / %s: %w", a, b, ErrDivisionByZero)
		}
		r = x / y
	default:
		return "", ErrNoOperator
	}
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return "", fmt.Errorf("%s %s %s: %w", a, op, b, ErrOverflow)
	}
	return FloatString(r), nil
}

func parseOperand(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse operand %q: %w", s, err)
	}
	return f, nil
}

// parseValue is parseOperand for values the engine produced itself; an
// unparsable string counts as zero.
func parseValue(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// FloatString renders v in its shortest round-trip form. Whole values keep
// a ".0" suffix and the exponent form is used when the decimal exponent is
// below -4 or at least 16.
func FloatString(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(v, 'e', -1, 64)
	if exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:]); err == nil && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
