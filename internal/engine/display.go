package engine

import (
	"math"
	"strconv"
	"strings"
)

// ErrorText is what the display shows for an invalid result.
const ErrorText = "Error"

// MaxDisplayLen is the longest plain decimal rendering FormatResult returns
// before switching to exponential form.
const MaxDisplayLen = 12

// exponentialDigits is the number of fractional digits in the exponential
// fallback.
const exponentialDigits = 6

// Display is the calculator's display value: either numeric text
// (optional leading "-", digits, at most one ".") or the error marker.
type Display struct {
	text    string
	invalid bool
}

var (
	zeroDisplay  = Display{text: "0"}
	errorDisplay = Display{invalid: true}
)

func textDisplay(s string) Display {
	if s == "" {
		return zeroDisplay
	}
	return Display{text: s}
}

// resultDisplay formats a computed value; non-finite values become the
// error marker.
func resultDisplay(x float64) Display {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return errorDisplay
	}
	return Display{text: FormatResult(x)}
}

// String renders the display, with the error marker as "Error".
func (d Display) String() string {
	if d.invalid {
		return ErrorText
	}
	return d.text
}

// IsError reports whether the display holds the error marker.
func (d Display) IsError() bool {
	return d.invalid
}

// Value parses the display as a finite number.
// It returns false for the error marker and for blank, unparsable or
// non-finite text.
func (d Display) Value() (float64, bool) {
	if d.invalid {
		return 0, false
	}
	return ParseNumber(d.text)
}

// ParseNumber parses s as a finite float64.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == ErrorText {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, false
	}
	return x, true
}

// FormatResult renders x for the display.
//
// NaN and infinities render as "Error". Finite values use the shortest
// round-trip decimal form (ECMAScript Number::toString layout). When that is
// longer than MaxDisplayLen characters the value is rendered in exponential
// form with six fractional digits, a signed exponent and no exponent padding:
// 1234567890123 renders as "1.234568e+12" and 1/3 as "3.333333e-1".
func FormatResult(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return ErrorText
	}
	s := formatNumber(x)
	if len(s) > MaxDisplayLen {
		return formatExponential(x, exponentialDigits)
	}
	return s
}

// formatNumber lays out the shortest round-trip digits of x the way
// ECMAScript's Number::toString does: plain integers up to 21 digits, plain
// fractions down to 1e-6, exponential form otherwise. Negative zero is "0".
func formatNumber(x float64) string {
	if x == 0 {
		return "0"
	}

	var buf []byte
	if x < 0 {
		buf = append(buf, '-')
		x = -x
	}

	// "d.ddde±XX" with the fewest digits that round-trip.
	mantissa, expPart, _ := strings.Cut(strconv.FormatFloat(x, 'e', -1, 64), "e")
	digits := strings.Replace(mantissa, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)

	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	switch {
	case k <= n && n <= 21:
		buf = append(buf, digits...)
		buf = append(buf, strings.Repeat("0", n-k)...)
	case 0 < n && n <= 21:
		buf = append(buf, digits[:n]...)
		buf = append(buf, '.')
		buf = append(buf, digits[n:]...)
	case -6 < n && n <= 0:
		buf = append(buf, "0."...)
		buf = append(buf, strings.Repeat("0", -n)...)
		buf = append(buf, digits...)
	default:
		buf = append(buf, digits[0])
		if k > 1 {
			buf = append(buf, '.')
			buf = append(buf, digits[1:]...)
		}
		buf = appendExponent(buf, n-1)
	}
	return string(buf)
}

// formatExponential renders x with a fixed number of fractional digits in
// exponential form.
func formatExponential(x float64, fractionDigits int) string {
	mantissa, expPart, _ := strings.Cut(strconv.FormatFloat(x, 'e', fractionDigits, 64), "e")
	exp, _ := strconv.Atoi(expPart)
	return string(appendExponent([]byte(mantissa), exp))
}

func appendExponent(buf []byte, exp int) []byte {
	buf = append(buf, 'e')
	if exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}
