// Package money provides money parsing and formatting utilities.
package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Placeholder is rendered where no meaningful amount exists, for example a
// non-finite value or a summary with no matching records.
const Placeholder = "—"

// ErrInvalidAmount is returned for amounts that are not positive numbers.
var ErrInvalidAmount = errors.New("invalid amount")

// Formatter renders amounts as fixed two-decimal currency strings.
type Formatter struct {
	Symbol string
}

// Default is the formatter used when no currency symbol is configured.
var Default = Formatter{Symbol: "$"}

// Format renders a decimal amount with the currency symbol, e.g. "$1234.50".
func (f Formatter) Format(d decimal.Decimal) string {
	return f.Symbol + d.StringFixed(2)
}

// FormatFloat renders a float amount the same way. Non-finite input produces
// the placeholder glyph, never a numeric string.
func (f Formatter) FormatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Placeholder
	}
	return fmt.Sprintf("%s%.2f", f.Symbol, v)
}

// ParseAmount parses a user-supplied amount string. Both "12.34" and "12,34"
// are accepted. The result is rounded half-up to two decimals and must come
// out positive.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d = d.Round(2)
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return d, nil
}
