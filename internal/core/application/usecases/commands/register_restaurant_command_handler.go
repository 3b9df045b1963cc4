package commands

import (
	"context"

	"quadmesh/internal/core/domain/model/party"
)

// RegisterRestaurantCommandHandler handles the business logic for restaurant
// registration.
type RegisterRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewRegisterRestaurantCommandHandler creates a handler for restaurant registration.
func NewRegisterRestaurantCommandHandler(uowFactory RestaurantUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restaurant registration command.
// Creates the restaurant aggregate in active state and persists it.
func (h RegisterRestaurantCommandHandler) Handle(ctx context.Context, cmd RegisterRestaurantCommand) error {
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

	restaurant, err := party.NewRestaurant(
		cmd.RestaurantID(), cmd.Name(), cmd.Location(),
		cmd.Email(), cmd.Phone(), cmd.BankAccount())
	if err != nil {
		return err
	}

	if err = uow.RestaurantRepository().Add(ctx, restaurant); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
