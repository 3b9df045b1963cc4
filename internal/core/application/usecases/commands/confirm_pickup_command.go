package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the restaurant handing the order to the
// rider. Pickup releases the first half of the rider's escrow cut.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command confirming order pickup.
func NewConfirmPickupCommand(orderID kernel.UUID) (ConfirmPickupCommand, error) {
	command := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// OrderID returns the identifier of the picked up order.
func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ConfirmPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
