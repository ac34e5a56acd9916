package order

import (
	"fmt"

	"garmenttrack/internal/pkg/errs"
)

// PaymentMethod is how the buyer chose to settle the order.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined payment method.
	PaymentMethodUnknown PaymentMethod = iota

	// COD is cash on delivery; no online payment is involved.
	COD

	// PayFirst requires the buyer to pay online before production starts.
	PayFirst
)

// getPaymentMethodStrings returns the wire names of all payment methods.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		COD:                  "COD",
		PayFirst:             "PayFirst",
	}
}

// PaymentMethodFromString parses a payment method from its wire name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a valid payment method", s))
}

// Validate checks if the PaymentMethod is COD or PayFirst.
func (m PaymentMethod) Validate() error {
	if m != COD && m != PayFirst {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire name of the payment method. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// RequiresOnlinePayment reports whether the order must be paid online.
// True only for PayFirst.
func (m PaymentMethod) RequiresOnlinePayment() bool {
	return m == PayFirst
}

// PaymentStatus tracks whether an online payment has been received.
// It only advances for orders whose payment method requires online payment;
// COD orders stay at PaymentPending for their whole life.
type PaymentStatus int

const (
	// PaymentStatusUnknown represents an invalid or undefined payment status.
	PaymentStatusUnknown PaymentStatus = iota

	// PaymentPending means no online payment has been recorded.
	PaymentPending

	// PaymentPaid means the external payment flow confirmed the payment.
	PaymentPaid
)

// getPaymentStatusStrings returns the wire names of all payment statuses.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown: "unknown",
		PaymentPending:       "pending",
		PaymentPaid:          "paid",
	}
}

// PaymentStatusFromString parses a payment status from its wire name.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentStatusUnknown && str == s {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is pending or paid.
func (s PaymentStatus) Validate() error {
	if s != PaymentPending && s != PaymentPaid {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the payment status. Implements fmt.Stringer.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
