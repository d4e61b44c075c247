package keypad

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/roach88/keycalc/internal/ir"
)

// Button is one labelled key on the keypad.
type Button struct {
	Label  string
	Action ir.Action
}

// cellWidth is the printed width of one button cell.
const cellWidth = 5

// Layout returns the keypad rows, top to bottom.
func Layout() [][]Button {
	simple := func(label string, kind ir.ActionKind) Button {
		return Button{Label: label, Action: ir.Simple(kind)}
	}
	digit := func(d string) Button {
		return Button{Label: d, Action: ir.Digit(d)}
	}
	operator := func(label, symbol string) Button {
		return Button{Label: label, Action: ir.Operator(symbol)}
	}

	return [][]Button{
		{simple("AC", ir.ActionClear), simple("±", ir.ActionToggle), simple("%", ir.ActionPercent), operator("÷", "÷")},
		{digit("7"), digit("8"), digit("9"), operator("×", "×")},
		{digit("4"), digit("5"), digit("6"), operator("−", "-")},
		{digit("1"), digit("2"), digit("3"), operator("+", "+")},
		{digit("0"), simple(".", ir.ActionDecimal), simple("⌫", ir.ActionBackspace), simple("=", ir.ActionEquals)},
		{simple("CE", ir.ActionClearEntry), simple("√", ir.ActionSqrt)},
	}
}

// Render draws the display and keypad as text.
func Render(w io.Writer, display string) error {
	rows := Layout()
	width := 0
	for _, row := range rows {
		width = max(width, len(row)*cellWidth)
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", width) + "+\n"
	b.WriteString(border)
	fmt.Fprintf(&b, "|%s|\n", padLeft(display, width))
	b.WriteString(border)
	for _, row := range rows {
		var line strings.Builder
		for _, btn := range row {
			line.WriteString(center(btn.Label, cellWidth))
		}
		fmt.Fprintf(&b, "|%s|\n", padRight(line.String(), width))
	}
	b.WriteString(border)

	_, err := io.WriteString(w, b.String())
	return err
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}
