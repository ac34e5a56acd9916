package kernel

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"garmenttrack/internal/pkg/errs"
	"garmenttrack/internal/pkg/guard"
)

// ErrOrderCodeIsNotConstructed is returned when attempting to use an improperly initialized OrderCode.
// Order codes must be created using NewOrderCode or OrderCodeFromString.
var ErrOrderCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"order code must be created via NewOrderCode or OrderCodeFromString constructors")

// orderCodePattern matches the canonical order code format: "GT-" followed by
// eight characters from an unambiguous uppercase alphabet (no O/0 or I/1 confusion).
var orderCodePattern = regexp.MustCompile(`^GT-[A-HJ-NP-Z2-9]{8}$`)

// orderCodeAlphabet is the character set used when generating new codes.
// O, I, 0 and 1 are excluded so codes survive being read over the phone.
const orderCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// OrderCode is the human-readable order identifier shown to buyers and printed
// on production paperwork (e.g. "GT-7KFQ2M9X"). It is unique per order and
// immutable once created.
//
// OrderCode is an immutable value object. The zero value is invalid and will
// fail validation - use the constructors to create instances.
type OrderCode struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewOrderCode generates a new random order code.
// Uniqueness is enforced by the persistence layer through a unique index;
// the 32^8 code space makes collisions on insert vanishingly rare.
func NewOrderCode() OrderCode {
	buf := make([]byte, 8)
	for i := range buf {
		buf[i] = orderCodeAlphabet[rand.IntN(len(orderCodeAlphabet))] //nolint:gosec // codes are not secrets
	}

	return OrderCode{
		value: "GT-" + string(buf),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderCodeFromString parses an order code from its string representation.
// Returns an error if the string does not match the canonical code format.
// Used when reconstructing orders from persistence or parsing buyer-facing URLs.
func OrderCodeFromString(s string) (OrderCode, error) {
	if s == "" {
		return OrderCode{}, errs.NewValueIsRequiredError("order code")
	}
	if !orderCodePattern.MatchString(s) {
		return OrderCode{}, errs.NewValueIsInvalidErrorWithCause("order code",
			fmt.Errorf("%q does not match the GT-XXXXXXXX format", s))
	}

	return OrderCode{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the OrderCode was properly constructed using a constructor.
// The zero value of OrderCode is invalid and will fail this validation.
func (c OrderCode) Validate() error {
	return c.guard.Validate(ErrOrderCodeIsNotConstructed)
}

// String returns the canonical string form of the code, e.g. "GT-7KFQ2M9X".
func (c OrderCode) String() string {
	return c.value
}

// IsEqual compares two order codes for equality.
func (c OrderCode) IsEqual(other OrderCode) bool {
	return c.value == other.value
}
