package escrow

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

// Domain errors for escrow operations.
var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through the NewAccount factory method.
	ErrAccountIsNotConstructed = errors.New("escrow Account must be created via NewAccount constructor")

	// ErrAmountIsInvalid is returned for negative escrow amounts.
	ErrAmountIsInvalid = errs.NewValueIsInvalidError("escrow amount")

	// ErrRestaurantAlreadyPaid is returned when the restaurant cut was
	// already released. Release flags are set once and never cleared.
	ErrRestaurantAlreadyPaid = errors.New("restaurant cut already released from escrow")

	// ErrRiderHalfAlreadyPaid is returned when the pickup tranche was
	// already released.
	ErrRiderHalfAlreadyPaid = errors.New("rider pickup tranche already released from escrow")

	// ErrRiderFullAlreadyPaid is returned when the delivery tranche was
	// already released.
	ErrRiderFullAlreadyPaid = errors.New("rider delivery tranche already released from escrow")

	// ErrRiderHalfNotPaid is returned when releasing the delivery tranche
	// before the pickup tranche.
	ErrRiderHalfNotPaid = errors.New("rider pickup tranche must be released before the delivery tranche")
)

// Account holds one order's captured funds and tracks their release to the
// restaurant and the rider. The restaurant cut is the sum of item subtotals
// and the rider cut is the delivery fee; together they always equal the
// captured total.
//
// Each release happens at most once. The rider is paid in two tranches, half
// on pickup and the remainder on delivery, and the delivery tranche requires
// the pickup tranche first. A failed release leaves the account untouched.
type Account struct {
	orderID          kernel.UUID
	totalAmount      int64
	restaurantAmount int64
	riderAmount      int64

	restaurantPaid bool
	riderHalfPaid  bool
	riderFullPaid  bool

	guard guard.ConstructorGuard
}

// NewAccount creates an escrow account for the given order, capturing the
// restaurant cut and the rider cut. Both amounts must be non-negative.
func NewAccount(orderID kernel.UUID, restaurantAmount int64, riderAmount int64) (*Account, error) {
	a := &Account{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setOrderID(orderID),
		a.setAmounts(restaurantAmount, riderAmount),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccount reconstructs an escrow account from persistent storage.
// An account with the delivery tranche released must also have the pickup
// tranche released.
func RestoreAccount(
	orderID kernel.UUID,
	restaurantAmount int64,
	riderAmount int64,
	restaurantPaid bool,
	riderHalfPaid bool,
	riderFullPaid bool,
) (*Account, error) {
	a, err := NewAccount(orderID, restaurantAmount, riderAmount)
	if err != nil {
		return nil, err
	}

	if riderFullPaid && !riderHalfPaid {
		return nil, ErrRiderHalfNotPaid
	}

	a.restaurantPaid = restaurantPaid
	a.riderHalfPaid = riderHalfPaid
	a.riderFullPaid = riderFullPaid

	return a, nil
}

// Validate ensures the Account instance was properly constructed through
// NewAccount or RestoreAccount.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// OrderID returns the identifier of the order this account escrows.
func (a *Account) OrderID() kernel.UUID {
	return a.orderID
}

// TotalAmount returns the captured total, restaurant cut plus rider cut.
func (a *Account) TotalAmount() int64 {
	return a.totalAmount
}

// RestaurantAmount returns the restaurant cut.
func (a *Account) RestaurantAmount() int64 {
	return a.restaurantAmount
}

// RiderAmount returns the rider cut.
func (a *Account) RiderAmount() int64 {
	return a.riderAmount
}

// IsRestaurantPaid reports whether the restaurant cut was released.
func (a *Account) IsRestaurantPaid() bool {
	return a.restaurantPaid
}

// IsRiderHalfPaid reports whether the pickup tranche was released.
func (a *Account) IsRiderHalfPaid() bool {
	return a.riderHalfPaid
}

// IsRiderFullPaid reports whether the delivery tranche was released.
func (a *Account) IsRiderFullPaid() bool {
	return a.riderFullPaid
}

// PayRestaurant releases the restaurant cut and returns the released amount.
// Fails with ErrRestaurantAlreadyPaid on a repeat release.
func (a *Account) PayRestaurant() (int64, error) {
	if a.restaurantPaid {
		return 0, ErrRestaurantAlreadyPaid
	}

	a.restaurantPaid = true
	return a.restaurantAmount, nil
}

// PayRiderHalf releases the pickup tranche, half of the rider cut rounded
// down, and returns the released amount.
func (a *Account) PayRiderHalf() (int64, error) {
	if a.riderHalfPaid {
		return 0, ErrRiderHalfAlreadyPaid
	}

	a.riderHalfPaid = true
	return a.riderAmount / 2, nil
}

// PayRiderFull releases the delivery tranche, the remainder of the rider cut
// after the pickup tranche, and returns the released amount. Requires the
// pickup tranche to be released first so the two tranches always sum to the
// full rider cut.
func (a *Account) PayRiderFull() (int64, error) {
	if a.riderFullPaid {
		return 0, ErrRiderFullAlreadyPaid
	}
	if !a.riderHalfPaid {
		return 0, ErrRiderHalfNotPaid
	}

	a.riderFullPaid = true
	return a.riderAmount - a.riderAmount/2, nil
}

func (a *Account) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	a.orderID = orderID
	return nil
}

func (a *Account) setAmounts(restaurantAmount int64, riderAmount int64) error {
	if restaurantAmount < 0 || riderAmount < 0 {
		return ErrAmountIsInvalid
	}

	a.restaurantAmount = restaurantAmount
	a.riderAmount = riderAmount
	a.totalAmount = restaurantAmount + riderAmount
	return nil
}
