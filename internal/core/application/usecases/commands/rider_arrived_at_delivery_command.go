package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrRiderArrivedAtDeliveryCommandIsNotConstructed = errors.New(
	"RiderArrivedAtDeliveryCommand must be created via NewRiderArrivedAtDeliveryCommand constructor",
)

// RiderArrivedAtDeliveryCommand represents the rider reporting arrival at
// the customer's delivery location with a GPS position to verify.
type RiderArrivedAtDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	riderID       kernel.UUID
	riderLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewRiderArrivedAtDeliveryCommand creates a command reporting delivery arrival.
func NewRiderArrivedAtDeliveryCommand(
	orderID, riderID kernel.UUID,
	riderLocation kernel.Location,
) (RiderArrivedAtDeliveryCommand, error) {
	command := RiderArrivedAtDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
		command.setRiderLocation(riderLocation),
	); err != nil {
		return RiderArrivedAtDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RiderArrivedAtDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRiderArrivedAtDeliveryCommandIsNotConstructed)
}

// OrderID returns the identifier of the order in progress.
func (c RiderArrivedAtDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the reporting rider.
func (c RiderArrivedAtDeliveryCommand) RiderID() kernel.UUID {
	return c.riderID
}

// RiderLocation returns the reported GPS position.
func (c RiderArrivedAtDeliveryCommand) RiderLocation() kernel.Location {
	return c.riderLocation
}

func (c *RiderArrivedAtDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RiderArrivedAtDeliveryCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RiderArrivedAtDeliveryCommand) setRiderLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.riderLocation = location
	return nil
}
