package commands

import (
	"context"
	"time"

	"quadmesh/internal/core/domain/services"
)

// RiderRejectCommandHandler handles the business logic for a rider declining
// an order offer.
type RiderRejectCommandHandler struct {
	uowFactory        UoWFactory
	queue             *services.DispatchQueue
	acceptanceTimeout time.Duration
}

// NewRiderRejectCommandHandler creates a handler for rider rejection.
func NewRiderRejectCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
	acceptanceTimeout time.Duration,
) RiderRejectCommandHandler {
	return RiderRejectCommandHandler{
		uowFactory:        uowFactory,
		queue:             queue,
		acceptanceTimeout: acceptanceTimeout,
	}
}

// Handle processes the rejection command.
// The acting rider must be the one currently assigned. The rejecting rider
// becomes available again at the tail of the queue and the order goes to the
// next available rider, or stays waiting when there is none.
func (h RiderRejectCommandHandler) Handle(ctx context.Context, cmd RiderRejectCommand) error {
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

	assigned := aggregate.AssignedRider()
	if assigned == nil || !assigned.IsEqual(cmd.RiderID()) {
		return ErrRiderIsNotAssignedToOrder
	}

	riderRepo := uow.RiderRepository()
	if err = releaseAssignedRider(ctx, riderRepo, h.queue, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	assignedID, err := assignNextRider(ctx, orderRepo, riderRepo, h.queue,
		aggregate, h.acceptanceTimeout)
	if err != nil {
		return err
	}

	return commitDispatch(ctx, uow, h.queue, assignedID)
}
