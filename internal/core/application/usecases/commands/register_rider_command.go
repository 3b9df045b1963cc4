package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrRegisterRiderCommandIsNotConstructed = errors.New(
	"RegisterRiderCommand must be created via NewRegisterRiderCommand constructor",
)

// RegisterRiderCommand represents a request to register a new delivery rider.
// A newly registered rider joins the tail of the dispatch queue.
type RegisterRiderCommand struct { //nolint:recvcheck //using for validation
	riderID         kernel.UUID
	name            string
	email           string
	phone           string
	currentLocation kernel.Location
	bankAccount     string

	guard guard.ConstructorGuard
}

// NewRegisterRiderCommand creates a command to register a rider.
// Name and bank account must be non-empty and the starting location must be
// a properly constructed Location.
func NewRegisterRiderCommand(
	riderID kernel.UUID,
	name, email, phone string,
	currentLocation kernel.Location,
	bankAccount string,
) (RegisterRiderCommand, error) {
	command := RegisterRiderCommand{
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setName(name),
		command.setCurrentLocation(currentLocation),
		command.setBankAccount(bankAccount),
	); err != nil {
		return RegisterRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRiderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRiderCommandIsNotConstructed)
}

// RiderID returns the identifier for the new rider.
func (c RegisterRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// Name returns the rider's display name.
func (c RegisterRiderCommand) Name() string {
	return c.name
}

// Email returns the rider's contact email.
func (c RegisterRiderCommand) Email() string {
	return c.email
}

// Phone returns the rider's contact phone number.
func (c RegisterRiderCommand) Phone() string {
	return c.phone
}

// CurrentLocation returns the rider's starting location.
func (c RegisterRiderCommand) CurrentLocation() kernel.Location {
	return c.currentLocation
}

// BankAccount returns the payout account reference.
func (c RegisterRiderCommand) BankAccount() string {
	return c.bankAccount
}

func (c *RegisterRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RegisterRiderCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterRiderCommand) setCurrentLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.currentLocation = location
	return nil
}

func (c *RegisterRiderCommand) setBankAccount(bankAccount string) error {
	if bankAccount == "" {
		return ErrBankAccountIsRequired
	}

	c.bankAccount = bankAccount
	return nil
}
