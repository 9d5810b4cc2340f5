// Package format renders timestamps, integers, money amounts, and ratios
// into canonical display strings for API projections.
//
// Formatting is fixed to the en-US locale. Money and percentage rounding go
// through shopspring/decimal and round half away from zero ("half-up"), so
// results do not depend on binary floating-point representation.
package format

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTimeLayout renders instants as "2026-01-06 13:30:45".
const DefaultTimeLayout = "2006-01-02 15:04:05"

// absent is rendered for nil timestamps.
const absent = "N/A"

var (
	hundred      = decimal.NewFromInt(100)
	centsPerUnit = decimal.NewFromInt(100)
)

// Formatter renders structured values into display strings.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// New creates a Formatter using the given currency symbol.
func New(symbol string) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.AmericanEnglish),
		symbol:  symbol,
	}
}

// FormatTime renders t using the default layout. Nil renders "N/A".
func (f *Formatter) FormatTime(t *time.Time) string {
	return f.FormatTimeLayout(t, DefaultTimeLayout)
}

// FormatTimeLayout renders t using a caller-supplied reference-time layout.
// Nil renders "N/A".
func (f *Formatter) FormatTimeLayout(t *time.Time, layout string) string {
	if t == nil {
		return absent
	}
	return t.Format(layout)
}

// FormatInt renders n with grouping separators every three digits,
// e.g. 1000000 -> "1,000,000".
func (f *Formatter) FormatInt(n int64) string {
	return f.printer.Sprintf("%d", n)
}

// FormatCurrency renders d with the currency symbol, grouping separators,
// and exactly two fraction digits, rounded half away from zero.
func (f *Formatter) FormatCurrency(d decimal.Decimal) string {
	rounded := d.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	units := rounded.IntPart()
	cents := rounded.Sub(decimal.NewFromInt(units)).Mul(centsPerUnit).IntPart()
	return fmt.Sprintf("%s%s%s.%02d", sign, f.symbol, f.FormatInt(units), cents)
}

// FormatRatio renders v scaled by 100 with a trailing "%", rounded half away
// from zero to a whole number. The value passes through decimal arithmetic,
// so 0.755 always renders "76%".
func (f *Formatter) FormatRatio(v float64) string {
	pct := decimal.NewFromFloat(v).Mul(hundred).Round(0)
	return pct.String() + "%"
}
