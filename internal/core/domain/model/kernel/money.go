package kernel

import (
	"fmt"

	"trattoria/internal/pkg/errs"
	"trattoria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoneyFromString or NewMoneyFromDecimal to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoneyFromString or NewMoneyFromDecimal constructors")

// Money represents a non-negative monetary amount with two decimal places.
// Money is an immutable value object backed by a fixed-point decimal, so sums
// like subtotal + delivery fee never suffer floating-point rounding drift.
// The zero value of Money is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	subtotal, err := kernel.NewMoneyFromString("44.04")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(subtotal) // Output: 44.04
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoneyFromString parses a Money value from its decimal string form, e.g. "44.04".
// The amount must be a valid decimal number, non-negative, and carry at most
// two fractional digits.
//
// Example:
//
//	fee, err := NewMoneyFromString("15.00")
//	if err != nil {
//	    log.Fatal("Invalid amount:", err)
//	}
func NewMoneyFromString(amount string) (Money, error) {
	if amount == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoneyFromDecimal(d)
}

// NewMoneyFromDecimal creates a Money value from a decimal amount.
// Returns an error if the amount is negative or has more than two decimal places.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}

	if amount.Exponent() < -2 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s has more than two decimal places", amount.String()))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Add returns the sum of two Money values.
// Both operands must be properly constructed.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoneyFromDecimal(m.amount.Add(other.amount))
}

// IsEqual compares two Money values for numeric equality.
// "59.04" and "59.040" compare equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount with exactly two decimal places, e.g. "12.00".
// This is the client-facing wire and storage representation.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
