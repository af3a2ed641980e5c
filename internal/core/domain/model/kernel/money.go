package kernel

import (
	"errors"
	"fmt"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every monetary amount is rounded to.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money value.
// Money must be created via NewMoneyFromDecimal, MoneyFromString, or MoneyFromFloat.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromDecimal, MoneyFromString, or MoneyFromFloat constructors")

// Money represents a non-negative monetary amount with two-place decimal precision.
// It is an immutable value object backed by decimal arithmetic, so order totals
// and price snapshots survive persistence round-trips exactly. Floating point is
// accepted only at the construction boundary and is immediately converted.
//
// The zero value of Money is invalid and will fail validation.
//
// Example:
//
//	price, err := kernel.MoneyFromString("10.50")
//	if err != nil {
//	    // handle validation error
//	}
//	total := price.MulInt(3) // 31.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoneyFromDecimal creates Money from a decimal amount.
// The amount is rounded to two decimal places and must not be negative.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := m.setAmount(amount); err != nil {
		return Money{}, err
	}

	return m, nil
}

// MoneyFromString parses a decimal string such as "10.50" into Money.
// Returns an error if the string is not a valid decimal or is negative.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoneyFromDecimal(amount)
}

// MoneyFromFloat converts a float64 into Money.
// Intended for boundaries that still traffic in floats (HTTP payloads, legacy
// column types); all internal arithmetic stays decimal.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoneyFromDecimal(decimal.NewFromFloat(f))
}

// ZeroMoney returns a valid Money carrying a zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Add returns the sum of two Money values.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	return NewMoneyFromDecimal(m.amount.Add(other.amount))
}

// MulInt returns the amount multiplied by an integer quantity.
// Used to price an order line: unit price times quantity.
func (m Money) MulInt(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is negative", quantity))
	}
	return NewMoneyFromDecimal(m.amount.Mul(decimal.NewFromInt(int64(quantity))))
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64.
// Only for presentation at the read-model boundary; never feed the result back
// into monetary arithmetic.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount formatted with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// IsEqual compares two Money values for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m *Money) setAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", amount.String()))
	}
	m.amount = amount.Round(moneyScale)
	return nil
}
