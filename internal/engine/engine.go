package engine

import (
	"log/slog"
	"math"
	"strings"
)

// operation is an operator paired with one operand. As the pending
// operation the operand is the left-hand side; as the last operation it is
// the right-hand side kept for repeated equals.
type operation struct {
	op      Operator
	operand float64
}

// Engine is a single calculator instance.
//
// INVARIANTS:
//   - display is never empty and holds at most one "."
//   - pending operator and left operand are set and cleared together
//   - last operator and right operand are set and cleared together
//
// An Engine is not safe for concurrent use.
type Engine struct {
	display Display
	pending *operation
	last    *operation
	waiting bool
}

// New creates an engine showing "0" with no pending or remembered operation.
func New() *Engine {
	return &Engine{display: zeroDisplay}
}

// Display returns the text currently shown.
func (e *Engine) Display() string {
	return e.display.String()
}

// InputDigit enters one digit. After an operator, equals or error it starts
// a new number; otherwise it replaces a lone "0" or appends.
// Digits outside 0..9 are ignored.
func (e *Engine) InputDigit(d Digit) {
	if !d.Valid() {
		return
	}
	switch {
	case e.waiting || e.display.IsError():
		e.display = textDisplay(d.String())
		e.waiting = false
	case e.display.text == "0":
		e.display = textDisplay(d.String())
	default:
		e.display = textDisplay(e.display.text + d.String())
	}
}

// InputDecimal enters a decimal point. It starts "0." for a new number and
// is a no-op if the display already has one.
func (e *Engine) InputDecimal() {
	if e.waiting || e.display.IsError() {
		e.display = textDisplay("0.")
		e.waiting = false
		return
	}
	if !strings.Contains(e.display.text, ".") {
		e.display = textDisplay(e.display.text + ".")
	}
}

// InputPercent divides the displayed value by 100. The pending operation is
// left alone, and the result can be edited like typed input.
func (e *Engine) InputPercent() {
	x, ok := e.display.Value()
	if !ok {
		x = math.NaN()
	}
	e.setResult("percent", x/100)
	e.waiting = false
}

// InputSquareRoot replaces the display with the square root of its value.
// Negative or invalid values give "Error".
func (e *Engine) InputSquareRoot() {
	x, ok := e.display.Value()
	if !ok || x < 0 {
		e.fail("sqrt")
		return
	}
	e.setResult("sqrt", math.Sqrt(x))
	e.waiting = true
}

// Clear resets every field, including the repeated-equals memory.
func (e *Engine) Clear() {
	*e = Engine{display: zeroDisplay}
}

// ClearEntry resets only the displayed operand. A pending operation and the
// repeated-equals memory survive.
func (e *Engine) ClearEntry() {
	e.display = zeroDisplay
	e.waiting = false
}

// Backspace removes the last character of a number being typed. It does
// nothing while waiting for an operand. A remainder with no digits left in
// it (such as a bare "-") collapses to "0".
func (e *Engine) Backspace() {
	if e.waiting {
		return
	}
	if e.display.IsError() {
		e.display = zeroDisplay
		return
	}
	text := e.display.text
	text = text[:len(text)-1]
	if !strings.ContainsAny(text, "0123456789") {
		text = "0"
	}
	e.display = textDisplay(text)
}

// ToggleSign adds or removes a leading "-". A display of exactly "0" and
// the error marker are left alone.
func (e *Engine) ToggleSign() {
	if e.display.IsError() || e.display.text == "0" {
		return
	}
	if rest, ok := strings.CutPrefix(e.display.text, "-"); ok {
		e.display = textDisplay(rest)
		return
	}
	e.display = textDisplay("-" + e.display.text)
}

// InputOperator makes op the pending operator.
//
// If an operation is already pending and a new operand has been typed since,
// the pending operation is folded first and its result displayed, giving
// left-to-right evaluation. Pressing operators back to back only replaces
// the operator. An invalid display shows "Error" and leaves the pending
// operation untouched. Invalid operator values are ignored.
func (e *Engine) InputOperator(op Operator) {
	if !op.Valid() {
		return
	}
	current, ok := e.display.Value()
	if !ok {
		e.fail("operator")
		return
	}

	if e.pending != nil && !e.waiting {
		folded := Apply(e.pending.op, e.pending.operand, current)
		e.setResult("fold", folded)
		e.pending = &operation{op: op, operand: folded}
	} else {
		e.pending = &operation{op: op, operand: current}
	}
	e.waiting = true
}

// CalculateResult handles "=".
//
// With a pending operation it applies it to the displayed operand and
// remembers the operator and right operand. Without one, it re-applies the
// remembered operation using the display as the left operand. With neither
// it does nothing.
func (e *Engine) CalculateResult() {
	switch {
	case e.pending != nil:
		current, ok := e.display.Value()
		if !ok {
			e.fail("equals")
			return
		}
		p := e.pending
		e.setResult("equals", Apply(p.op, p.operand, current))
		e.last = &operation{op: p.op, operand: current}
		e.pending = nil
		e.waiting = true

	case e.last != nil:
		current, ok := e.display.Value()
		if !ok {
			e.fail("equals")
			return
		}
		e.setResult("repeat", Apply(e.last.op, current, e.last.operand))
		e.waiting = true
	}
}

// setResult displays x, or the error marker when x is not finite.
func (e *Engine) setResult(action string, x float64) {
	e.display = resultDisplay(x)
	if e.display.IsError() {
		slog.Debug("invalid result", "action", action)
	}
}

// fail shows the error marker and waits for a fresh operand.
func (e *Engine) fail(action string) {
	slog.Debug("invalid operand", "action", action)
	e.display = errorDisplay
	e.waiting = true
}
