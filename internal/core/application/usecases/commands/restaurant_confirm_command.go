package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrRestaurantConfirmCommandIsNotConstructed = errors.New(
	"RestaurantConfirmCommand must be created via NewRestaurantConfirmCommand constructor",
)

// RestaurantConfirmCommand represents the restaurant accepting a notified
// order. Confirmation releases the restaurant's escrow cut and starts the
// rider search.
type RestaurantConfirmCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRestaurantConfirmCommand creates a command to confirm an order.
func NewRestaurantConfirmCommand(orderID kernel.UUID) (RestaurantConfirmCommand, error) {
	command := RestaurantConfirmCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return RestaurantConfirmCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RestaurantConfirmCommand) Validate() error {
	return c.guard.Validate(ErrRestaurantConfirmCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being confirmed.
func (c RestaurantConfirmCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *RestaurantConfirmCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
