// Package money provides the Money value object used for paper prices and
// captured purchase amounts. Amounts are held in cents to avoid floating
// point drift.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	if currency == "" {
		currency = "USD"
	}
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

// ParseAmount parses a decimal amount string such as "12.50" into Money.
// At most two fractional digits are accepted and the amount must not be
// negative.
func ParseAmount(amount string, currency string) (Money, error) {
	s := strings.TrimSpace(amount)
	if s == "" {
		return Money{}, fmt.Errorf("amount is required")
	}
	if strings.HasPrefix(s, "-") {
		return Money{}, fmt.Errorf("amount cannot be negative")
	}

	whole := s
	frac := ""
	if idx := strings.Index(s, "."); idx >= 0 {
		whole = s[:idx]
		frac = s[idx+1:]
	}
	if len(frac) > 2 {
		return Money{}, fmt.Errorf("amount has more than two decimal places: %s", amount)
	}
	for len(frac) < 2 {
		frac += "0"
	}
	if whole == "" {
		whole = "0"
	}

	wholePart, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %s", amount)
	}
	fracPart, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %s", amount)
	}

	return NewMoney(wholePart*100+fracPart, currency), nil
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// Decimal returns the amount formatted with two decimal places, e.g. "12.50".
func (m Money) Decimal() string {
	return fmt.Sprintf("%d.%02d", m.amountInCents/100, m.amountInCents%100)
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Decimal(), m.currency)
}
