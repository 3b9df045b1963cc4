package commands

import (
	"context"

	"quadmesh/internal/core/domain/services"
)

// ConfirmDeliveryCommandHandler handles the business logic for delivery
// confirmation: the final rider tranche leaves escrow, the order reaches its
// terminal delivered status and the rider rejoins the dispatch queue with an
// incremented delivery counter.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	queue      *services.DispatchQueue
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery confirmation.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		queue:      queue,
	}
}

// Handle processes the delivery confirmation command.
// The order must have a GPS-verified rider at the delivery location and the
// escrow delivery tranche must be unreleased. After this commit every escrow
// flag for the order is set and the workflow is complete.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
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

	if _, err = account.PayRiderFull(); err != nil {
		return err
	}

	assigned := aggregate.AssignedRider()
	if assigned == nil {
		return ErrRiderIsNotAssignedToOrder
	}

	riderRepo := uow.RiderRepository()
	acting, err := riderRepo.Get(ctx, *assigned)
	if err != nil {
		return err
	}

	if err = aggregate.MarkDelivered(); err != nil {
		return err
	}

	acting.CompleteDelivery()

	if err = escrowRepo.Update(ctx, account); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = riderRepo.Update(ctx, acting); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Queue mutation stays out of the transaction scope: a rolled back
	// commit must not leave the rider queued while stored state still
	// shows it on the order.
	return h.queue.Enqueue(acting.ID())
}
