package commands

import (
	"context"
	"time"

	"quadmesh/internal/core/domain/services"
)

// RestaurantConfirmCommandHandler handles the business logic for restaurant
// confirmation. Releases the restaurant's escrow cut, starts the rider
// search and offers the order to the first available rider in the queue.
type RestaurantConfirmCommandHandler struct {
	uowFactory        UoWFactory
	queue             *services.DispatchQueue
	acceptanceTimeout time.Duration
}

// NewRestaurantConfirmCommandHandler creates a handler for restaurant confirmation.
func NewRestaurantConfirmCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
	acceptanceTimeout time.Duration,
) RestaurantConfirmCommandHandler {
	return RestaurantConfirmCommandHandler{
		uowFactory:        uowFactory,
		queue:             queue,
		acceptanceTimeout: acceptanceTimeout,
	}
}

// Handle processes the restaurant confirmation command.
// The order must be in restaurant notified status and its escrow account must
// still hold the restaurant cut. When the dispatch queue has no available
// rider the order simply stays in rider search.
func (h RestaurantConfirmCommandHandler) Handle(ctx context.Context, cmd RestaurantConfirmCommand) error {
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

	escrowRepo := uow.EscrowAccountRepository()
	account, err := escrowRepo.GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if _, err = account.PayRestaurant(); err != nil {
		return err
	}

	if err = aggregate.ConfirmRestaurant(); err != nil {
		return err
	}

	if err = escrowRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	assignedID, err := assignNextRider(ctx, orderRepo, uow.RiderRepository(), h.queue,
		aggregate, h.acceptanceTimeout)
	if err != nil {
		return err
	}

	return commitDispatch(ctx, uow, h.queue, assignedID)
}
