package party

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

// Domain errors for restaurant construction.
var (
	// ErrRestaurantNameIsRequired is returned when creating a restaurant without a name.
	ErrRestaurantNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrBankAccountIsRequired is returned when creating a restaurant without a payout account.
	ErrBankAccountIsRequired = errs.NewValueIsRequiredError("bank account")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a seller on the platform. It is an entity identified
// by UUID carrying contact details, the pickup location that rider arrival
// checks are verified against, and the payout account that escrowed restaurant
// cuts are released to.
//
// A restaurant starts active. Deactivated restaurants remain in the system for
// existing orders but reject new ones.
type Restaurant struct {
	id          kernel.UUID
	name        string
	location    kernel.Location
	email       string
	phone       string
	bankAccount string
	isActive    bool
	guard       guard.ConstructorGuard
}

// NewRestaurant creates a new active Restaurant. Name and bank account must be
// non-empty and the location must be properly constructed. Validation errors
// are aggregated.
func NewRestaurant(
	id kernel.UUID,
	name string,
	location kernel.Location,
	email, phone, bankAccount string,
) (*Restaurant, error) {
	restaurant := &Restaurant{
		email:    email,
		phone:    phone,
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
		restaurant.setLocation(location),
		restaurant.setBankAccount(bankAccount),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistent storage,
// including its active flag.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	location kernel.Location,
	email, phone, bankAccount string,
	isActive bool,
) (*Restaurant, error) {
	restaurant, err := NewRestaurant(id, name, location, email, phone, bankAccount)
	if err != nil {
		return nil, err
	}

	restaurant.isActive = isActive
	return restaurant, nil
}

// Validate checks if the Restaurant was properly constructed via NewRestaurant.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by their unique identifiers.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant's unique identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant's display name.
func (r *Restaurant) Name() string {
	return r.name
}

// Location returns the pickup location.
func (r *Restaurant) Location() kernel.Location {
	return r.location
}

// Email returns the restaurant's contact email.
func (r *Restaurant) Email() string {
	return r.email
}

// Phone returns the restaurant's contact phone number.
func (r *Restaurant) Phone() string {
	return r.phone
}

// BankAccount returns the payout account reference.
func (r *Restaurant) BankAccount() string {
	return r.bankAccount
}

// IsActive reports whether the restaurant accepts new orders.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// Deactivate stops the restaurant from accepting new orders.
// Orders already in flight are unaffected.
func (r *Restaurant) Deactivate() {
	r.isActive = false
}

// Activate re-enables the restaurant for new orders.
func (r *Restaurant) Activate() {
	r.isActive = true
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrRestaurantNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.location = location
	return nil
}

func (r *Restaurant) setBankAccount(bankAccount string) error {
	if bankAccount == "" {
		return ErrBankAccountIsRequired
	}
	r.bankAccount = bankAccount
	return nil
}
