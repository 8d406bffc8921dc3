package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an immutable value object representing a non-negative monetary amount.
// It wraps a fixed-point decimal so that monetary arithmetic never suffers from
// floating-point drift. Amounts are kept at full precision internally; rounding
// to two decimal places is an explicit operation applied where the business rules
// demand it (at the final order total), never implicitly per line.
//
// The zero value is a valid zero amount, so Money can be embedded in aggregates
// without a constructor guard.
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("19.99")
//	if err != nil {
//	    // handle invalid amount
//	}
//	total := price.MulInt(3) // 59.97
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of value 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "9.99" into a Money.
// Returns an error if the string is not a valid decimal or is negative.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// MustMoneyFromString parses a decimal string and panics on failure.
// Intended for constants and tests only.
func MustMoneyFromString(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts. The result may be used only
// where a negative outcome is impossible by construction; Sub panics otherwise.
func (m Money) Sub(other Money) Money {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		panic(fmt.Sprintf("money subtraction went negative: %s - %s", m.amount, other.amount))
	}
	return Money{amount: result}
}

// MulInt returns the amount multiplied by a non-negative integer quantity.
func (m Money) MulInt(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// MulRate returns the amount multiplied by a decimal rate, unrounded.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// RoundHalfUp returns the amount rounded half-up to two decimal places.
func (m Money) RoundHalfUp() Money {
	return Money{amount: m.amount.Round(2)}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts for numeric equality, ignoring exponent representation.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with two decimal places, e.g. "9.99".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
