// Package money renders whole-unit monetary amounts as localized currency
// strings and parses free-form user input into non-negative amounts.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders int64 amounts with the currency's narrow symbol,
// locale-aware digit grouping, and no fraction digits.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter creates a Formatter for the given BCP 47 locale tag and
// ISO 4217 currency code, e.g. ("en-US", "USD").
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: parse locale %q: %w", locale, err)
	}

	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("money: parse currency %q: %w", code, err)
	}

	p := message.NewPrinter(tag)
	return &Formatter{
		printer: p,
		symbol:  p.Sprint(currency.NarrowSymbol(unit)),
	}, nil
}

// Format renders an amount of whole currency units, e.g. 1250 -> "$1,250".
// Negative amounts carry a leading minus sign: -30 -> "-$30".
func (f *Formatter) Format(amount int64) string {
	if amount < 0 {
		return "-" + f.symbol + f.printer.Sprint(number.Decimal(-amount))
	}
	return f.symbol + f.printer.Sprint(number.Decimal(amount))
}

// ParseAmount converts a user-entered monetary string into whole units.
// Non-numeric and negative input is clamped to 0; fractional input is
// rounded to the nearest whole unit and values beyond the int64 range
// saturate at math.MaxInt64.
func ParseAmount(s string) int64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	v = math.Round(v)
	// float64(math.MaxInt64) is 2^63; converting anything at or above it
	// to int64 overflows.
	if v >= float64(math.MaxInt64) {
		return math.MaxInt64
	}
	return int64(v)
}
