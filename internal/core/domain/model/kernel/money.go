package kernel

import (
	"fmt"

	"garmenttrack/internal/pkg/errs"
	"garmenttrack/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney to ensure the amount is valid.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney constructor")

// Money represents a non-negative monetary amount stored in integer cents.
// The business operates in a single settlement currency, so Money carries no
// currency code; arithmetic on cents avoids floating-point rounding drift.
//
// Money is an immutable value object. The zero value is invalid and will fail
// validation - use NewMoney to create instances.
//
// Example:
//
//	unitPrice, err := kernel.NewMoney(1250) // 12.50
//	if err != nil {
//	    // Handle validation error
//	}
//	orderPrice, _ := unitPrice.MultiplyBy(100)
//	fmt.Println(orderPrice) // Output: 1250.00
type Money struct { //nolint:recvcheck //using for validation
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in cents.
// The amount must not be negative.
//
// Parameters:
//   - cents: The amount in integer cents (e.g. 1250 for 12.50)
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount",
			fmt.Errorf("%d is negative", cents))
	}

	return Money{
		cents: cents,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Money was properly constructed using NewMoney.
// The zero value of Money is invalid and will fail this validation.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Cents returns the amount in integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// MultiplyBy returns a new Money scaled by the given factor.
// Used to capture an order price as quantity times unit price.
// Returns an error if the factor is negative or either operand is invalid.
func (m Money) MultiplyBy(factor int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money factor",
			fmt.Errorf("%d is negative", factor))
	}

	return NewMoney(m.cents * int64(factor))
}

// IsEqual compares two Money values for equality by amount.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String returns the decimal representation of the amount, e.g. "1250.00" or "12.50".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
