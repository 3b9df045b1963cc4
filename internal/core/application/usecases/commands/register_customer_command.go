package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var (
	ErrRegisterCustomerCommandIsNotConstructed = errors.New(
		"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
	)
	ErrNameIsRequired  = errors.New("name is required")
	ErrEmailIsRequired = errors.New("email is required")
)

// RegisterCustomerCommand represents a request to register a new customer
// with a default delivery location.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID       kernel.UUID
	name             string
	email            string
	phone            string
	deliveryLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewRegisterCustomerCommand creates a command to register a customer.
// Name and email must be non-empty and the delivery location must be a
// properly constructed Location.
func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	name, email, phone string,
	deliveryLocation kernel.Location,
) (RegisterCustomerCommand, error) {
	command := RegisterCustomerCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
		command.setDeliveryLocation(deliveryLocation),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier for the new customer.
func (c RegisterCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c RegisterCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's contact email.
func (c RegisterCustomerCommand) Email() string {
	return c.email
}

// Phone returns the customer's contact phone number.
func (c RegisterCustomerCommand) Phone() string {
	return c.phone
}

// DeliveryLocation returns the customer's default delivery location.
func (c RegisterCustomerCommand) DeliveryLocation() kernel.Location {
	return c.deliveryLocation
}

func (c *RegisterCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RegisterCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterCustomerCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *RegisterCustomerCommand) setDeliveryLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.deliveryLocation = location
	return nil
}
