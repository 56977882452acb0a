package kernel

import (
	"fmt"

	"orderintegrity/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept for currency amounts.
const AmountScale = 4

// Amount is a fixed-precision currency amount. Comparisons are exact.
//
// The zero value is a valid zero amount, so an unset refunded total and an
// explicit zero behave the same.
type Amount struct {
	value decimal.Decimal
}

// ZeroAmount returns an amount equal to zero.
func ZeroAmount() Amount {
	return Amount{}
}

// NewAmount rounds d to AmountScale digits.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d.Round(AmountScale)}
}

// AmountFromString parses a decimal literal such as "12.5000".
func AmountFromString(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return NewAmount(d), nil
}

// MustAmount is AmountFromString for literals known to be valid.
func MustAmount(s string) Amount {
	a, err := AmountFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsPositive reports a strictly positive amount.
func (a Amount) IsPositive() bool {
	return a.value.IsPositive()
}

func (a Amount) IsNegative() bool {
	return a.value.IsNegative()
}

func (a Amount) IsEqual(other Amount) bool {
	return a.value.Equal(other.value)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.StringFixed(AmountScale)
}
