package commands

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// ItemInput carries one requested order line before domain validation.
type ItemInput struct {
	Name     string
	Quantity int
	Price    int64
}

// PlaceOrderCommand represents a customer's request to place an order with a
// restaurant. Line items are validated into domain Items at construction, so
// a constructed command always carries a well-formed, non-empty item list.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	items        []order.Item
	deliveryFee  int64

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Every item must have a non-empty name, positive quantity and non-negative
// price; the delivery fee must be non-negative.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []ItemInput,
	deliveryFee int64,
) (PlaceOrderCommand, error) {
	command := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setRestaurantID(restaurantID),
		command.setItems(items),
		command.setDeliveryFee(deliveryFee),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the identifier of the chosen restaurant.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the validated order line items.
func (c PlaceOrderCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

// DeliveryFee returns the delivery fee for the order.
func (c PlaceOrderCommand) DeliveryFee() int64 {
	return c.deliveryFee
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}

func (c *PlaceOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return order.ErrItemsAreRequired
	}

	validated := make([]order.Item, 0, len(items))
	for _, input := range items {
		item, err := order.NewItem(input.Name, input.Quantity, input.Price)
		if err != nil {
			return err
		}
		validated = append(validated, item)
	}

	c.items = validated
	return nil
}

func (c *PlaceOrderCommand) setDeliveryFee(deliveryFee int64) error {
	if deliveryFee < 0 {
		return order.ErrDeliveryFeeIsInvalid
	}

	c.deliveryFee = deliveryFee
	return nil
}
