package commands

import (
	"context"

	"quadmesh/internal/core/domain/model/escrow"
)

// ProcessPaymentCommandHandler handles the business logic for payment capture.
// Opens the order's escrow account with the restaurant cut and the rider cut,
// then moves the order on to restaurant notification.
type ProcessPaymentCommandHandler struct {
	uowFactory UoWFactory
}

// NewProcessPaymentCommandHandler creates a handler for payment capture.
func NewProcessPaymentCommandHandler(uowFactory UoWFactory) ProcessPaymentCommandHandler {
	return ProcessPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
// The order must be pending payment; paying an order twice fails on the
// status guard so the capture is not repeatable. Escrow creation, the status
// transition and the restaurant notification commit atomically.
func (h ProcessPaymentCommandHandler) Handle(ctx context.Context, cmd ProcessPaymentCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.EscrowPayment(); err != nil {
		return err
	}

	account, err := escrow.NewAccount(
		aggregate.ID(), aggregate.ItemsTotal(), aggregate.DeliveryFee())
	if err != nil {
		return err
	}

	if err = uow.EscrowAccountRepository().Add(ctx, account); err != nil {
		return err
	}

	restaurant, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.NotifyRestaurant(restaurant.Name()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
