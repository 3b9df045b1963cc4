package order

import (
	"errors"
	"fmt"
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidStateTransition is the sentinel wrapped by every transition
	// guard failure. Callers match it with errors.Is, re-fetch current state
	// and decide whether to retry or abandon.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrItemsAreRequired is returned when creating an order with no items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")

	// ErrDeliveryFeeIsInvalid is returned for a negative delivery fee.
	ErrDeliveryFeeIsInvalid = errs.NewValueIsInvalidError("delivery fee")

	// ErrNoRiderAssigned is returned by operations that need a bound rider
	// when the order has none.
	ErrNoRiderAssigned = errors.New("no rider assigned to order")

	// ErrAcceptanceDeadlinePassed is returned when a rider tries to accept an
	// assignment after its acceptance deadline. Late acceptance is rejected;
	// the order is then eligible for reassignment.
	ErrAcceptanceDeadlinePassed = errors.New("rider acceptance deadline has passed")
)

// Order is the aggregate root of the workflow engine. It owns the order's
// position in the 12-step lifecycle, the payment release ledger state, the
// current rider assignment with its acceptance deadline, and the append-only
// status history.
//
// Orders are created once and never deleted; they accumulate history for the
// lifetime of the process. All mutation goes through the transition methods,
// each of which checks the exact required precondition status and fails with
// ErrInvalidStateTransition (wrapped) without mutating anything on mismatch.
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []Item
	deliveryFee  int64
	totalAmount  int64

	status        Status
	paymentStatus PaymentStatus

	assignedRiderID         *kernel.UUID
	riderAcceptanceDeadline *time.Time

	createdAt time.Time
	history   []StatusChange

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in PendingPayment status. The item list must
// be non-empty and the delivery fee non-negative; the total amount is computed
// as the sum of item subtotals plus the delivery fee and never recomputed.
// The history opens with a single creation entry.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryFee int64,
) (*Order, error) {
	o := &Order{
		status:        PendingPayment,
		paymentStatus: PaymentPending,
		createdAt:     time.Now(),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.itemsTotal() + o.deliveryFee
	o.appendStatus(PendingPayment, "Order created by customer")

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// preserving its lifecycle position, payment state, rider assignment and
// history. The history must be non-empty.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	deliveryFee int64,
	totalAmount int64,
	status Status,
	paymentStatus PaymentStatus,
	assignedRiderID *kernel.UUID,
	riderAcceptanceDeadline *time.Time,
	createdAt time.Time,
	history []StatusChange,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setRestaurantID(restaurantID),
		o.setItems(items),
		o.setDeliveryFee(deliveryFee),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, errs.NewValueIsRequiredError("status history")
	}

	if assignedRiderID != nil {
		if err := assignedRiderID.Validate(); err != nil {
			return nil, err
		}
		riderID := *assignedRiderID
		o.assignedRiderID = &riderID
	}

	if riderAcceptanceDeadline != nil {
		deadline := *riderAcceptanceDeadline
		o.riderAcceptanceDeadline = &deadline
	}

	o.totalAmount = totalAmount
	o.status = status
	o.paymentStatus = paymentStatus
	o.createdAt = createdAt
	o.history = make([]StatusChange, len(history))
	copy(o.history, history)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the fulfilling restaurant.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Items returns a copy of the order's line items, in the order they were placed.
func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// DeliveryFee returns the delivery fee, which becomes the rider cut in escrow.
func (o *Order) DeliveryFee() int64 {
	return o.deliveryFee
}

// TotalAmount returns the fixed total: sum of item subtotals plus delivery fee.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// ItemsTotal returns the sum of item subtotals, which becomes the restaurant
// cut in escrow.
func (o *Order) ItemsTotal() int64 {
	return o.itemsTotal()
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the current payment release state.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// AssignedRider returns the identifier of the currently assigned rider, or
// nil when no rider is bound.
func (o *Order) AssignedRider() *kernel.UUID {
	if o.assignedRiderID == nil {
		return nil
	}
	riderID := *o.assignedRiderID
	return &riderID
}

// RiderAcceptanceDeadline returns the deadline by which the assigned rider
// must accept, or nil when no assignment has happened yet.
func (o *Order) RiderAcceptanceDeadline() *time.Time {
	if o.riderAcceptanceDeadline == nil {
		return nil
	}
	deadline := *o.riderAcceptanceDeadline
	return &deadline
}

// CreatedAt returns the order creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// History returns a copy of the append-only status history, oldest first.
func (o *Order) History() []StatusChange {
	out := make([]StatusChange, len(o.history))
	copy(out, o.history)
	return out
}

// EscrowPayment records that the full order amount was captured into escrow.
// Requires PendingPayment; moves to PaymentEscrowed.
func (o *Order) EscrowPayment() error {
	if err := o.ensureStatus("escrow payment", PendingPayment); err != nil {
		return err
	}

	o.paymentStatus = PaymentInEscrow
	o.appendStatus(PaymentEscrowed, "Payment secured in escrow")
	return nil
}

// NotifyRestaurant records that the restaurant was told about the order.
// Requires PaymentEscrowed; moves to RestaurantNotified. Notification
// delivery itself is out of scope: this is a status annotation only.
func (o *Order) NotifyRestaurant(restaurantName string) error {
	if err := o.ensureStatus("notify restaurant", PaymentEscrowed); err != nil {
		return err
	}

	o.appendStatus(RestaurantNotified, fmt.Sprintf("Restaurant %s notified", restaurantName))
	return nil
}

// ConfirmRestaurant records that the restaurant accepted the order and its
// escrow cut was released. Requires RestaurantNotified; moves to
// RestaurantConfirmed and then SeekingRider in one step, since rider search
// starts immediately on confirmation.
func (o *Order) ConfirmRestaurant() error {
	if err := o.ensureStatus("restaurant confirm", RestaurantNotified); err != nil {
		return err
	}

	o.paymentStatus = PaymentRestaurantPaid
	o.appendStatus(RestaurantConfirmed, "Restaurant confirmed and paid")
	o.appendStatus(SeekingRider, "Looking for available rider")
	return nil
}

// AssignRider binds a rider to the order and sets the acceptance deadline.
// Requires SeekingRider (initial assignment) or RiderAssigned (reassignment
// after a rejection or timeout); moves to RiderAssigned.
func (o *Order) AssignRider(riderID kernel.UUID, deadline time.Time, riderName string) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	if o.status != SeekingRider && o.status != RiderAssigned {
		return o.transitionError("assign rider", SeekingRider)
	}

	o.assignedRiderID = &riderID
	o.riderAcceptanceDeadline = &deadline
	o.appendStatus(RiderAssigned, fmt.Sprintf("Assigned to rider %s", riderName))
	return nil
}

// ReleaseRider unbinds the currently assigned rider, leaving the order in
// RiderAssigned with no rider so it can be reassigned. Returns the released
// rider's identifier. Requires RiderAssigned with a rider bound.
func (o *Order) ReleaseRider() (kernel.UUID, error) {
	if err := o.ensureStatus("release rider", RiderAssigned); err != nil {
		return kernel.UUID{}, err
	}
	if o.assignedRiderID == nil {
		return kernel.UUID{}, ErrNoRiderAssigned
	}

	released := *o.assignedRiderID
	o.assignedRiderID = nil
	o.riderAcceptanceDeadline = nil
	return released, nil
}

// AcceptanceExpired reports whether the order sits in RiderAssigned with an
// acceptance deadline earlier than now.
func (o *Order) AcceptanceExpired(now time.Time) bool {
	return o.status == RiderAssigned &&
		o.assignedRiderID != nil &&
		o.riderAcceptanceDeadline != nil &&
		now.After(*o.riderAcceptanceDeadline)
}

// Accept records the assigned rider's acceptance. Requires RiderAssigned with
// a rider bound and a deadline that has not passed; moves to
// RiderEnRoutePickup. A late acceptance fails with
// ErrAcceptanceDeadlinePassed and leaves the order unchanged.
func (o *Order) Accept(now time.Time, riderName string) error {
	if err := o.ensureStatus("rider accept", RiderAssigned); err != nil {
		return err
	}
	if o.assignedRiderID == nil {
		return ErrNoRiderAssigned
	}
	if o.riderAcceptanceDeadline != nil && now.After(*o.riderAcceptanceDeadline) {
		return ErrAcceptanceDeadlinePassed
	}

	o.appendStatus(RiderEnRoutePickup,
		fmt.Sprintf("Rider %s accepted, en route to restaurant", riderName))
	return nil
}

// ArriveAtRestaurant records a GPS-verified arrival at the restaurant.
// Requires RiderEnRoutePickup; moves to RiderAtRestaurant.
func (o *Order) ArriveAtRestaurant() error {
	if err := o.ensureStatus("arrive at restaurant", RiderEnRoutePickup); err != nil {
		return err
	}

	o.appendStatus(RiderAtRestaurant, "Rider arrived at restaurant")
	return nil
}

// MarkPickedUp records pickup confirmation and the first rider tranche.
// Requires RiderAtRestaurant with a rider bound; moves through OrderPickedUp
// to RiderEnRouteDelivery, appending both history entries.
func (o *Order) MarkPickedUp() error {
	if err := o.ensureStatus("confirm pickup", RiderAtRestaurant); err != nil {
		return err
	}
	if o.assignedRiderID == nil {
		return ErrNoRiderAssigned
	}

	o.paymentStatus = PaymentRiderHalfPaid
	o.appendStatus(OrderPickedUp, "Order picked up, rider paid 50%")
	o.appendStatus(RiderEnRouteDelivery, "Rider heading to delivery location")
	return nil
}

// ArriveAtDelivery records a GPS-verified arrival at the delivery location.
// Requires RiderEnRouteDelivery; moves to RiderAtDelivery.
func (o *Order) ArriveAtDelivery() error {
	if err := o.ensureStatus("arrive at delivery", RiderEnRouteDelivery); err != nil {
		return err
	}

	o.appendStatus(RiderAtDelivery, "Rider arrived at delivery location")
	return nil
}

// MarkDelivered records delivery confirmation and the final rider tranche.
// Requires RiderAtDelivery with a rider bound; moves to the terminal
// Delivered status.
func (o *Order) MarkDelivered() error {
	if err := o.ensureStatus("confirm delivery", RiderAtDelivery); err != nil {
		return err
	}
	if o.assignedRiderID == nil {
		return ErrNoRiderAssigned
	}

	o.paymentStatus = PaymentRiderFullPaid
	o.appendStatus(Delivered, "Order delivered, rider paid in full")
	return nil
}

// Cancel moves the order to the terminal Cancelled status from any
// non-terminal status. Payment release flags already set in escrow are
// untouched: cancellation stops the workflow, it does not claw funds back.
func (o *Order) Cancel(note string) error {
	if o.status.IsTerminal() {
		return fmt.Errorf("%w: cancel requires a non-terminal status, order is %s",
			ErrInvalidStateTransition, o.status)
	}

	o.assignedRiderID = nil
	o.riderAcceptanceDeadline = nil
	o.appendStatus(Cancelled, note)
	return nil
}

// appendStatus moves the order to the given status and appends exactly one
// timestamped history entry.
func (o *Order) appendStatus(status Status, note string) {
	o.status = status
	o.history = append(o.history, StatusChange{
		status:     status,
		occurredAt: time.Now(),
		note:       note,
	})
}

// ensureStatus returns a wrapped ErrInvalidStateTransition unless the order
// is exactly in the required status. No state is mutated on failure.
func (o *Order) ensureStatus(operation string, required Status) error {
	if o.status != required {
		return o.transitionError(operation, required)
	}
	return nil
}

func (o *Order) transitionError(operation string, required Status) error {
	return fmt.Errorf("%w: %s requires status %s, order is %s",
		ErrInvalidStateTransition, operation, required, o.status)
}

func (o *Order) itemsTotal() int64 {
	var total int64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryFee(deliveryFee int64) error {
	if deliveryFee < 0 {
		return ErrDeliveryFeeIsInvalid
	}
	o.deliveryFee = deliveryFee
	return nil
}
