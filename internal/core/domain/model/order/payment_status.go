package order

import (
	"fmt"

	"quadmesh/internal/pkg/errs"
)

// PaymentStatus tracks how far the escrowed funds of an order have been
// released. It advances monotonically alongside the order status:
// each milestone payout moves it one step forward and it never moves back.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending means no funds have been captured yet.
	PaymentPending

	// PaymentInEscrow means the full amount is held in the escrow account.
	PaymentInEscrow

	// PaymentRestaurantPaid means the restaurant cut has been released.
	PaymentRestaurantPaid

	// PaymentRiderHalfPaid means the first rider tranche has been released.
	PaymentRiderHalfPaid

	// PaymentRiderFullPaid means both rider tranches have been released.
	PaymentRiderFullPaid
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their
// string representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:        "unknown",
		PaymentPending:        "pending",
		PaymentInEscrow:       "escrowed",
		PaymentRestaurantPaid: "restaurant_paid",
		PaymentRiderHalfPaid:  "rider_half_paid",
		PaymentRiderFullPaid:  "rider_full_paid",
	}
}

// Validate checks if the PaymentStatus value is valid.
func (p PaymentStatus) Validate() error {
	if p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	if _, ok := getPaymentStatusStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// PaymentStatusFromString parses the snake_case name of a payment status,
// as produced by String. Unknown names return an error.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if status != PaymentUnknown && str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s))
}

// String returns the snake_case name of the payment status.
// This method implements the fmt.Stringer interface.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
