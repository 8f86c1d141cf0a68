package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is prefixed to every formatted amount.
const CurrencySymbol = "₹"

// Money represents a rupee amount carried at full decimal precision.
// Rounding happens only when the amount is displayed.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses an amount as typed by a user, e.g. "1,250.50".
// Surrounding whitespace, a leading currency symbol and grouping commas are ignored.
func NewMoneyFromString(value string) (Money, error) {
	s := strings.TrimSpace(value)
	s = strings.TrimPrefix(s, CurrencySymbol)
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Format renders the amount for display: currency symbol, two decimals and
// comma separators every three integer digits (e.g. "₹12,682.42").
func (m Money) Format() string {
	return format(m.Decimal, 2)
}

// FormatWhole is Format without paise (e.g. "₹5,000"), used for loan amounts.
func (m Money) FormatWhole() string {
	return format(m.Decimal, 0)
}

func format(d decimal.Decimal, places int32) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	fixed := d.StringFixed(places)
	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	grouped := group(intPart)
	if hasFrac {
		return sign + CurrencySymbol + grouped + "." + fracPart
	}
	return sign + CurrencySymbol + grouped
}

func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}
