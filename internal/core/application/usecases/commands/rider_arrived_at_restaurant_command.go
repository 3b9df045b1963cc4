package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrRiderArrivedAtRestaurantCommandIsNotConstructed = errors.New(
	"RiderArrivedAtRestaurantCommand must be created via NewRiderArrivedAtRestaurantCommand constructor",
)

// RiderArrivedAtRestaurantCommand represents the rider reporting arrival at
// the restaurant with a GPS position to verify.
type RiderArrivedAtRestaurantCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	riderID       kernel.UUID
	riderLocation kernel.Location

	guard guard.ConstructorGuard
}

// NewRiderArrivedAtRestaurantCommand creates a command reporting restaurant arrival.
func NewRiderArrivedAtRestaurantCommand(
	orderID, riderID kernel.UUID,
	riderLocation kernel.Location,
) (RiderArrivedAtRestaurantCommand, error) {
	command := RiderArrivedAtRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRiderID(riderID),
		command.setRiderLocation(riderLocation),
	); err != nil {
		return RiderArrivedAtRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RiderArrivedAtRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRiderArrivedAtRestaurantCommandIsNotConstructed)
}

// OrderID returns the identifier of the order in progress.
func (c RiderArrivedAtRestaurantCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RiderID returns the identifier of the reporting rider.
func (c RiderArrivedAtRestaurantCommand) RiderID() kernel.UUID {
	return c.riderID
}

// RiderLocation returns the reported GPS position.
func (c RiderArrivedAtRestaurantCommand) RiderLocation() kernel.Location {
	return c.riderLocation
}

func (c *RiderArrivedAtRestaurantCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RiderArrivedAtRestaurantCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RiderArrivedAtRestaurantCommand) setRiderLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.riderLocation = location
	return nil
}
