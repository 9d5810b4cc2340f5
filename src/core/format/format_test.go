package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	f := New("$")

	known := time.Date(2026, time.January, 6, 13, 30, 45, 0, time.UTC)
	assert.Equal(t, "2026-01-06 13:30:45", f.FormatTime(&known))
	assert.Equal(t, "N/A", f.FormatTime(nil))
}

func TestFormatTimeLayout(t *testing.T) {
	f := New("$")

	known := time.Date(2026, time.January, 6, 13, 30, 45, 0, time.UTC)
	assert.Equal(t, "2026/01/06", f.FormatTimeLayout(&known, "2006/01/02"))
	assert.Equal(t, "13:30", f.FormatTimeLayout(&known, "15:04"))
	assert.Equal(t, "N/A", f.FormatTimeLayout(nil, "2006/01/02"))
}

func TestFormatInt(t *testing.T) {
	f := New("$")

	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{1000, "1,000"},
		{1000000, "1,000,000"},
		{-25000, "-25,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.FormatInt(tt.in))
	}
}

func TestFormatCurrency(t *testing.T) {
	f := New("$")

	tests := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"300", "$300.00"},
		{"1234.5", "$1,234.50"},
		{"1000000.99", "$1,000,000.99"},
		{"2.345", "$2.35"}, // half-up at the third decimal
		{"2.344", "$2.34"},
		{"-19.99", "-$19.99"},
	}
	for _, tt := range tests {
		d, err := decimal.NewFromString(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, f.FormatCurrency(d))
	}
}

func TestFormatCurrencySymbol(t *testing.T) {
	f := New("€")

	assert.Equal(t, "€5.00", f.FormatCurrency(decimal.NewFromInt(5)))
}

func TestFormatRatio(t *testing.T) {
	f := New("$")

	tests := []struct {
		in   float64
		want string
	}{
		{0.15, "15%"},
		{0.5, "50%"},
		{1, "100%"},
		{0.755, "76%"}, // decimal half-up, independent of float representation
		{0.754, "75%"},
		{0, "0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.FormatRatio(tt.in))
	}
}
