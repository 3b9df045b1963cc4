package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrRiderRejectCommandIsNotConstructed = errors.New(
	"RiderRejectCommand must be created via NewRiderRejectCommand constructor",
)

// RiderRejectCommand represents the assigned rider declining an order offer.
// The rider goes back to the tail of the dispatch queue and the order is
// offered to the next rider.
type RiderRejectCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRiderRejectCommand creates a command for a rider declining an order.
func NewRiderRejectCommand(orderID, riderID kernel.UUID) (RiderRejectCommand, error) {
	command := RiderRejectCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
	); err != nil {
		return RiderRejectCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RiderRejectCommand) Validate() error {
	return c.guard.Validate(ErrRiderRejectCommandIsNotConstructed)
}

// OrderID returns the identifier of the offered order.
func (c RiderRejectCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the declining rider.
func (c RiderRejectCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *RiderRejectCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RiderRejectCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
