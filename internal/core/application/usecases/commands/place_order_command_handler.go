package commands

import (
	"context"
	"errors"

	"quadmesh/internal/core/domain/model/order"
)

// ErrRestaurantIsNotActive is returned when placing an order with a
// restaurant that is currently not accepting orders.
var ErrRestaurantIsNotActive = errors.New("restaurant is not accepting orders")

// PlaceOrderCommandHandler handles the business logic for order placement.
// Verifies both parties exist and the restaurant is active, then creates the
// order in pending payment status.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command.
// The customer and restaurant must exist and the restaurant must be active.
// The new order waits in pending payment until the customer pays.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}
	if !restaurant.IsActive() {
		return ErrRestaurantIsNotActive
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), cmd.Items(), cmd.DeliveryFee())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
