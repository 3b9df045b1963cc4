package commands

import (
	"context"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/services"
)

// CancelOrderCommandHandler handles the business logic for order
// cancellation. A rider still holding the order is freed back into the
// dispatch queue so cancellation never leaks riders.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	queue      *services.DispatchQueue
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the cancellation command.
// Fails on orders already delivered or cancelled. The assigned rider, if
// any, becomes available again and rejoins the queue once the cancellation
// has committed.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	var released *kernel.UUID
	if assigned := aggregate.AssignedRider(); assigned != nil {
		riderRepo := uow.RiderRepository()
		holder, getErr := riderRepo.Get(ctx, *assigned)
		if getErr != nil {
			return getErr
		}

		holder.MarkAvailable()
		if updErr := riderRepo.Update(ctx, holder); updErr != nil {
			return updErr
		}
		released = assigned
	}

	if err = aggregate.Cancel(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if released != nil {
		return h.queue.Enqueue(*released)
	}
	return nil
}
