// Package keypad maps presentation input onto calculator actions.
//
// Three input forms are supported:
//
//   - keyboard keys (FromKey), named the way browser keydown events name them
//   - keypad buttons (FromButton), named by their action
//   - key strings (Tokenize), such as "2+3==" or "2 + 9 ce 4 =", where each
//     rune is one key press and whitespace-separated words name buttons
//
// All input is NFC normalized before matching so composed and decomposed
// forms of the same symbol behave alike.
package keypad

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/keycalc/internal/engine"
	"github.com/roach88/keycalc/internal/ir"
)

// Key is one keyboard event.
type Key struct {
	// Name is the key value, e.g. "7", "+", "Enter", "Backspace".
	Name string

	// Ctrl and Meta report held modifiers.
	Ctrl bool
	Meta bool
}

// operatorKeys maps key characters to operator symbols. Keyboard keys
// use ASCII; the keypad and pasted text may use the typographic symbols.
var operatorKeys = map[string]string{
	"+": engine.SymbolAdd,
	"-": engine.SymbolSubtract,
	"−": engine.SymbolSubtract, // minus sign
	"*": engine.SymbolMultiply,
	"×": engine.SymbolMultiply,
	"/": engine.SymbolDivide,
	"÷": engine.SymbolDivide,
}

// symbolKeys maps single-character keys to actions that take no value.
var symbolKeys = map[string]ir.ActionKind{
	".": ir.ActionDecimal,
	"=": ir.ActionEquals,
	"%": ir.ActionPercent,
	"@": ir.ActionSqrt,
	"√": ir.ActionSqrt,
	"±": ir.ActionToggle,
	"⌫": ir.ActionBackspace,
}

// namedKeys maps keyboard key names to actions.
var namedKeys = map[string]ir.ActionKind{
	"Enter":  ir.ActionEquals,
	"Escape": ir.ActionClear,
	"Delete": ir.ActionClearEntry,
	"F9":     ir.ActionToggle,
}

// words maps button words usable in key strings to actions.
var words = map[string]ir.ActionKind{
	"ac":        ir.ActionClear,
	"c":         ir.ActionClear,
	"clear":     ir.ActionClear,
	"ce":        ir.ActionClearEntry,
	"bs":        ir.ActionBackspace,
	"backspace": ir.ActionBackspace,
	"neg":       ir.ActionToggle,
	"toggle":    ir.ActionToggle,
	"sqrt":      ir.ActionSqrt,
	"pct":       ir.ActionPercent,
	"percent":   ir.ActionPercent,
	"enter":     ir.ActionEquals,
}

// FromKey maps a keyboard event to an action.
//
// Digits, ".", "+ - * /", "=" and Enter behave as on the keypad. Escape
// clears everything; Backspace erases one character, or clears everything
// when Ctrl or Meta is held. "%" is percent, "@" square root, F9 toggles
// the sign and Delete clears the entry.
func FromKey(k Key) (ir.Action, bool) {
	name := norm.NFC.String(k.Name)

	if name == "Backspace" {
		if k.Ctrl || k.Meta {
			return ir.Simple(ir.ActionClear), true
		}
		return ir.Simple(ir.ActionBackspace), true
	}
	if kind, ok := namedKeys[name]; ok {
		return ir.Simple(kind), true
	}
	return fromChar(name)
}

// FromButton maps a keypad button to an action. name is the action kind
// ("digit", "operator", "equals", ...); value is the digit or operator
// for the kinds that take one.
func FromButton(name, value string) (ir.Action, bool) {
	kind := ir.ActionKind(name)
	if !kind.Valid() {
		return ir.Action{}, false
	}

	value = norm.NFC.String(value)
	switch kind {
	case ir.ActionDigit:
		if _, ok := engine.ParseDigit(singleRune(value)); !ok {
			return ir.Action{}, false
		}
		return ir.Digit(value), true
	case ir.ActionOperator:
		symbol, ok := operatorKeys[value]
		if !ok {
			return ir.Action{}, false
		}
		return ir.Operator(symbol), true
	}
	return ir.Simple(kind), true
}

// Word maps a button word ("ce", "sqrt", ...) to its action.
// Matching is case-insensitive.
func Word(w string) (ir.Action, bool) {
	kind, ok := words[strings.ToLower(norm.NFC.String(w))]
	if !ok {
		return ir.Action{}, false
	}
	return ir.Simple(kind), true
}

// fromChar maps a single-character key.
func fromChar(s string) (ir.Action, bool) {
	if symbol, ok := operatorKeys[s]; ok {
		return ir.Operator(symbol), true
	}
	if kind, ok := symbolKeys[s]; ok {
		return ir.Simple(kind), true
	}
	if _, ok := engine.ParseDigit(singleRune(s)); ok {
		return ir.Digit(s), true
	}
	return ir.Action{}, false
}

// singleRune returns the only rune of s, or -1 if s is not exactly one rune.
func singleRune(s string) rune {
	runes := []rune(s)
	if len(runes) != 1 {
		return -1
	}
	return runes[0]
}

// Binding describes one keyboard shortcut.
type Binding struct {
	Keys   string        `json:"keys"`
	Action ir.ActionKind `json:"action"`
}

// Bindings lists the keyboard shortcuts FromKey understands.
func Bindings() []Binding {
	return []Binding{
		{"0-9", ir.ActionDigit},
		{".", ir.ActionDecimal},
		{"+ - * /", ir.ActionOperator},
		{"= Enter", ir.ActionEquals},
		{"%", ir.ActionPercent},
		{"@", ir.ActionSqrt},
		{"F9", ir.ActionToggle},
		{"Backspace", ir.ActionBackspace},
		{"Delete", ir.ActionClearEntry},
		{"Escape Ctrl+Backspace", ir.ActionClear},
	}
}
