package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"integer", 42, "42"},
		{"negative integer", -7, "-7"},
		{"fraction", 0.5, "0.5"},
		{"small fraction", 0.000001, "0.000001"},
		{"twelve characters", 123456789012, "123456789012"},
		{"twelve with sign", -12345678901, "-12345678901"},
		{"thirteen characters", 1234567890123, "1.234568e+12"},
		{"long fraction", 1.0 / 3, "3.333333e-1"},
		{"exponent form short enough", 1e21, "1e+21"},
		{"tiny exponent form", 1e-7, "1e-7"},
		{"tiny with digits", 1.5e-10, "1.5e-10"},
		{"large integer within twenty one digits", 1e20, "1.000000e+20"},
		{"huge", 1.7976931348623157e308, "1.797693e+308"},
		{"NaN", math.NaN(), "Error"},
		{"positive infinity", math.Inf(1), "Error"},
		{"negative infinity", math.Inf(-1), "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatResult(tt.in))
		})
	}
}

func TestFormatNumber_ECMALayout(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{123.456, "123.456"},
		{0.1 + 0.2, "0.30000000000000004"},
		{1e-6, "0.000001"},
		{1.25e-6, "0.00000125"},
		{1e-7, "1e-7"},
		{-2.5e-8, "-2.5e-8"},
		{5e-324, "5e-324"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatNumber(tt.in))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"0", 0, true},
		{"123", 123, true},
		{"-5", -5, true},
		{"5.", 5, true},
		{"0.", 0, true},
		{"-0.5", -0.5, true},
		{"1.234568e+12", 1.234568e12, true},
		{" 7 ", 7, true},
		{"", 0, false},
		{"   ", 0, false},
		{"-", 0, false},
		{"Error", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"1e400", 0, false},
		{"12abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseNumber(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDisplay_Value(t *testing.T) {
	x, ok := textDisplay("2.5").Value()
	assert.True(t, ok)
	assert.Equal(t, 2.5, x)

	_, ok = errorDisplay.Value()
	assert.False(t, ok)
	assert.Equal(t, "Error", errorDisplay.String())
	assert.True(t, errorDisplay.IsError())
}

func TestDisplay_NeverEmpty(t *testing.T) {
	assert.Equal(t, "0", textDisplay("").String())
	assert.Equal(t, "Error", resultDisplay(math.Inf(1)).String())
	assert.Equal(t, "4", resultDisplay(4).String())
}
