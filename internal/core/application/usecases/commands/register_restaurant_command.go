package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var (
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
	ErrBankAccountIsRequired = errors.New("bank account is required")
)

// RegisterRestaurantCommand represents a request to register a new restaurant.
// A newly registered restaurant is active and immediately accepts orders.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	location     kernel.Location
	email        string
	phone        string
	bankAccount  string

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates a command to register a restaurant.
// Name and bank account must be non-empty and the location must be a
// properly constructed Location.
func NewRegisterRestaurantCommand(
	restaurantID kernel.UUID,
	name string,
	location kernel.Location,
	email, phone, bankAccount string,
) (RegisterRestaurantCommand, error) {
	command := RegisterRestaurantCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRestaurantID(restaurantID),
		command.setName(name),
		command.setLocation(location),
		command.setBankAccount(bankAccount),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier for the new restaurant.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant's display name.
func (c RegisterRestaurantCommand) Name() string {
	return c.name
}

// Location returns the restaurant's pickup location.
func (c RegisterRestaurantCommand) Location() kernel.Location {
	return c.location
}

// Email returns the restaurant's contact email.
func (c RegisterRestaurantCommand) Email() string {
	return c.email
}

// Phone returns the restaurant's contact phone number.
func (c RegisterRestaurantCommand) Phone() string {
	return c.phone
}

// BankAccount returns the payout account reference.
func (c RegisterRestaurantCommand) BankAccount() string {
	return c.bankAccount
}

func (c *RegisterRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *RegisterRestaurantCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterRestaurantCommand) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *RegisterRestaurantCommand) setBankAccount(bankAccount string) error {
	if bankAccount == "" {
		return ErrBankAccountIsRequired
	}

	c.bankAccount = bankAccount
	return nil
}
