package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"pads to two decimals", 1234.5, "₹1,234.50"},
		{"NaN is zero", math.NaN(), "₹0.00"},
		{"zero", 0, "₹0.00"},
		{"below a thousand", 999.99, "₹999.99"},
		{"exactly a thousand", 1000, "₹1,000.00"},
		{"millions", 1234567.891, "₹1,234,567.89"},
		{"negative", -1234.5, "₹-1,234.50"},
		{"positive infinity", math.Inf(1), "₹Infinity"},
		{"huge amounts use exponent form", 1e21, "₹1e+21"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestFixed2(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234.5, "1234.50"},
		{847.46, "847.46"},
		{152.54, "152.54"},
		{200, "200.00"},
		{0.1, "0.10"},
		// stored as 1.00499999999999989..., so it rounds down
		{1.005, "1.00"},
		// exactly representable tie rounds away from zero
		{0.125, "0.13"},
		{-2.5, "-2.50"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Fixed2(tt.amount), "Fixed2(%v)", tt.amount)
	}
}
