package engine

import "math"

// Operator is one of the four binary calculator operations.
// The zero value is not a valid operator.
type Operator uint8

const (
	Add Operator = iota + 1
	Subtract
	Multiply
	Divide
)

// Operator symbols as shown on the keypad.
const (
	SymbolAdd      = "+"
	SymbolSubtract = "-"
	SymbolMultiply = "×"
	SymbolDivide   = "÷"
)

// Operators lists every valid operator in keypad order.
var Operators = []Operator{Add, Subtract, Multiply, Divide}

// String returns the operator's display symbol, or "" for invalid values.
func (op Operator) String() string {
	switch op {
	case Add:
		return SymbolAdd
	case Subtract:
		return SymbolSubtract
	case Multiply:
		return SymbolMultiply
	case Divide:
		return SymbolDivide
	}
	return ""
}

// Valid reports whether op is one of the four defined operators.
func (op Operator) Valid() bool {
	return op >= Add && op <= Divide
}

// ParseOperator maps a display symbol to its Operator.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case SymbolAdd:
		return Add, true
	case SymbolSubtract:
		return Subtract, true
	case SymbolMultiply:
		return Multiply, true
	case SymbolDivide:
		return Divide, true
	}
	return 0, false
}

// Apply computes a op b in float64 precision.
// Division by zero yields NaN, which formats as "Error".
func Apply(op Operator, a, b float64) float64 {
	switch op {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	}
	return math.NaN()
}

// Digit is a single decimal digit, 0 through 9.
type Digit uint8

// ParseDigit converts '0'..'9' to a Digit.
func ParseDigit(r rune) (Digit, bool) {
	if r < '0' || r > '9' {
		return 0, false
	}
	return Digit(r - '0'), true
}

// Valid reports whether d is in 0..9.
func (d Digit) Valid() bool {
	return d <= 9
}

// String returns the digit character.
func (d Digit) String() string {
	if !d.Valid() {
		return ""
	}
	return string(rune('0' + d))
}
