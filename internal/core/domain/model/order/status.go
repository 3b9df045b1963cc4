package order

import (
	"fmt"

	"quadmesh/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. The happy path is a
// strict 12-step linear progression with no skips; Cancelled is a terminal
// state reachable from any non-terminal status via an explicit cancel.
//
// State transitions:
//
//	PendingPayment → PaymentEscrowed → RestaurantNotified → RestaurantConfirmed
//	  → SeekingRider → RiderAssigned → RiderEnRoutePickup → RiderAtRestaurant
//	  → OrderPickedUp → RiderEnRouteDelivery → RiderAtDelivery → Delivered
//
//	any non-terminal ────────────────────────────────────────→ Cancelled
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPayment is the initial status when an order is first created.
	PendingPayment

	// PaymentEscrowed indicates payment has been captured into escrow.
	PaymentEscrowed

	// RestaurantNotified indicates the restaurant has been told about the order.
	RestaurantNotified

	// RestaurantConfirmed indicates the restaurant accepted the order and was paid.
	RestaurantConfirmed

	// SeekingRider indicates the platform is looking for an available rider.
	SeekingRider

	// RiderAssigned indicates a rider has been offered the delivery and has not
	// yet accepted. An order can sit in this status with no rider bound when
	// the dispatch queue is exhausted.
	RiderAssigned

	// RiderEnRoutePickup indicates the rider accepted and is heading to the restaurant.
	RiderEnRoutePickup

	// RiderAtRestaurant indicates a GPS-verified arrival at the restaurant.
	RiderAtRestaurant

	// OrderPickedUp indicates the rider confirmed pickup and received the first tranche.
	OrderPickedUp

	// RiderEnRouteDelivery indicates the rider is heading to the customer.
	RiderEnRouteDelivery

	// RiderAtDelivery indicates a GPS-verified arrival at the delivery location.
	RiderAtDelivery

	// Delivered is the terminal success status.
	Delivered

	// Cancelled is the terminal failure status, reachable from any
	// non-terminal status through an explicit cancel operation.
	Cancelled
)

// TotalSteps is the number of steps on the happy path, used by journey
// progress calculations.
const TotalSteps = 12

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "unknown",
		PendingPayment:       "pending_payment",
		PaymentEscrowed:      "payment_escrowed",
		RestaurantNotified:   "restaurant_notified",
		RestaurantConfirmed:  "restaurant_confirmed",
		SeekingRider:         "seeking_rider",
		RiderAssigned:        "rider_assigned",
		RiderEnRoutePickup:   "rider_en_route_pickup",
		RiderAtRestaurant:    "rider_at_restaurant",
		OrderPickedUp:        "order_picked_up",
		RiderEnRouteDelivery: "rider_en_route_delivery",
		RiderAtDelivery:      "rider_at_delivery",
		Delivered:            "delivered",
		Cancelled:            "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// Validate checks if the Status value is valid.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, matching the values used
// in persistence and journey projections. Invalid statuses return "unknown".
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the snake_case name of a status, as produced by
// String. Unknown names return an error.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Step returns the 1-based position of the status on the 12-step happy path.
// Cancelled and invalid statuses return 0.
func (s Status) Step() int {
	switch s {
	case PendingPayment:
		return 1
	case PaymentEscrowed:
		return 2
	case RestaurantNotified:
		return 3
	case RestaurantConfirmed:
		return 4
	case SeekingRider:
		return 5
	case RiderAssigned:
		return 6
	case RiderEnRoutePickup:
		return 7
	case RiderAtRestaurant:
		return 8
	case OrderPickedUp:
		return 9
	case RiderEnRouteDelivery:
		return 10
	case RiderAtDelivery:
		return 11
	case Delivered:
		return 12
	case Unknown, Cancelled:
		return 0
	default:
		return 0
	}
}

// Label returns the human-readable journey label for the status.
// Cancelled and invalid statuses return "Unknown".
func (s Status) Label() string {
	switch s {
	case PendingPayment:
		return "Payment Processing"
	case PaymentEscrowed:
		return "Payment Secured"
	case RestaurantNotified:
		return "Restaurant Notified"
	case RestaurantConfirmed:
		return "Restaurant Confirmed"
	case SeekingRider:
		return "Finding Rider"
	case RiderAssigned:
		return "Rider Assigned"
	case RiderEnRoutePickup:
		return "Rider Going to Restaurant"
	case RiderAtRestaurant:
		return "Rider at Restaurant"
	case OrderPickedUp:
		return "Order Picked Up"
	case RiderEnRouteDelivery:
		return "Rider Coming to You"
	case RiderAtDelivery:
		return "Rider Nearby"
	case Delivered:
		return "Delivered!"
	case Unknown, Cancelled:
		return "Unknown"
	default:
		return "Unknown"
	}
}
