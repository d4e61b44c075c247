package ir

import "fmt"

// ActionKind names one calculator action.
// The names match the keypad's button action names.
type ActionKind string

const (
	ActionDigit      ActionKind = "digit"
	ActionDecimal    ActionKind = "decimal"
	ActionPercent    ActionKind = "percent"
	ActionSqrt       ActionKind = "sqrt"
	ActionOperator   ActionKind = "operator"
	ActionEquals     ActionKind = "equals"
	ActionClear      ActionKind = "clear"
	ActionClearEntry ActionKind = "clear_entry"
	ActionBackspace  ActionKind = "backspace"
	ActionToggle     ActionKind = "toggle"
)

// ActionKinds lists every action kind.
var ActionKinds = []ActionKind{
	ActionDigit,
	ActionDecimal,
	ActionPercent,
	ActionSqrt,
	ActionOperator,
	ActionEquals,
	ActionClear,
	ActionClearEntry,
	ActionBackspace,
	ActionToggle,
}

// Valid reports whether k is a known action kind.
func (k ActionKind) Valid() bool {
	for _, known := range ActionKinds {
		if k == known {
			return true
		}
	}
	return false
}

// TakesValue reports whether actions of this kind carry a Value.
func (k ActionKind) TakesValue() bool {
	return k == ActionDigit || k == ActionOperator
}

// Action is one user action on a calculator.
//
// Value is the digit character for ActionDigit and the operator symbol
// ("+", "-", "×", "÷") for ActionOperator; it is empty otherwise.
type Action struct {
	Kind  ActionKind `json:"kind"`
	Value string     `json:"value,omitempty"`
}

// String renders the action as "kind" or "kind(value)".
func (a Action) String() string {
	if a.Value == "" {
		return string(a.Kind)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Value)
}

// Digit builds a digit action.
func Digit(d string) Action {
	return Action{Kind: ActionDigit, Value: d}
}

// Operator builds an operator action.
func Operator(symbol string) Action {
	return Action{Kind: ActionOperator, Value: symbol}
}

// Simple builds an action that carries no value.
func Simple(kind ActionKind) Action {
	return Action{Kind: kind}
}
