package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrRiderAcceptCommandIsNotConstructed = errors.New(
	"RiderAcceptCommand must be created via NewRiderAcceptCommand constructor",
)

// RiderAcceptCommand represents the assigned rider accepting an order offer.
type RiderAcceptCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRiderAcceptCommand creates a command for a rider accepting an order.
func NewRiderAcceptCommand(orderID, riderID kernel.UUID) (RiderAcceptCommand, error) {
	command := RiderAcceptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
	); err != nil {
		return RiderAcceptCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RiderAcceptCommand) Validate() error {
	return c.guard.Validate(ErrRiderAcceptCommandIsNotConstructed)
}

// OrderID returns the identifier of the offered order.
func (c RiderAcceptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the accepting rider.
func (c RiderAcceptCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c *RiderAcceptCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RiderAcceptCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}
