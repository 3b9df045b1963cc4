package party

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

// Domain errors for customer construction.
var (
	// ErrCustomerNameIsRequired is returned when creating a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerEmailIsRequired is returned when creating a customer without an email.
	ErrCustomerEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer represents a buyer on the platform. It is an entity identified by
// UUID carrying contact details and the delivery location that arrival checks
// are verified against.
//
// Customer is immutable after construction: registration is the only write.
type Customer struct {
	id               kernel.UUID
	name             string
	email            string
	phone            string
	deliveryLocation kernel.Location
	guard            guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the given identity, contact details
// and delivery location. Name and email must be non-empty and the location
// must be a properly constructed value. Validation errors are aggregated.
func NewCustomer(id kernel.UUID, name, email, phone string, deliveryLocation kernel.Location) (*Customer, error) {
	customer := &Customer{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
		customer.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate checks if the Customer was properly constructed via NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// DeliveryLocation returns the location deliveries are checked against.
func (c *Customer) DeliveryLocation() kernel.Location {
	return c.deliveryLocation
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return ErrCustomerEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *Customer) setDeliveryLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.deliveryLocation = location
	return nil
}
