package commands

import (
	"context"
	"errors"
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/services"
)

// ReassignExpiredCommandHandler sweeps orders stuck on a rider that never
// answered. Expired riders go back to the tail of the dispatch queue and each
// affected order is offered to the next available rider.
type ReassignExpiredCommandHandler struct {
	uowFactory        UoWFactory
	queue             *services.DispatchQueue
	acceptanceTimeout time.Duration
}

// NewReassignExpiredCommandHandler creates a handler for the expiry sweep.
func NewReassignExpiredCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
	acceptanceTimeout time.Duration,
) ReassignExpiredCommandHandler {
	return ReassignExpiredCommandHandler{
		uowFactory:        uowFactory,
		queue:             queue,
		acceptanceTimeout: acceptanceTimeout,
	}
}

// Handle processes the sweep command.
// Scans orders in rider assigned status and reassigns every one whose
// acceptance deadline lies in the past. The whole sweep commits atomically.
func (h ReassignExpiredCommandHandler) Handle(ctx context.Context, cmd ReassignExpiredCommand) error {
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
	riderRepo := uow.RiderRepository()

	assigned, err := orderRepo.GetAllInStatus(ctx, order.RiderAssigned)
	if err != nil {
		return err
	}

	now := time.Now()
	var dispatched []kernel.UUID
	for _, aggregate := range assigned {
		if !aggregate.AcceptanceExpired(now) {
			continue
		}

		if err = releaseAssignedRider(ctx, riderRepo, h.queue, aggregate); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
		assignedID, assignErr := assignNextRider(ctx, orderRepo, riderRepo, h.queue,
			aggregate, h.acceptanceTimeout)
		if assignErr != nil {
			return assignErr
		}
		if assignedID != nil {
			dispatched = append(dispatched, *assignedID)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		for i := len(dispatched) - 1; i >= 0; i-- {
			err = errors.Join(err, h.queue.Requeue(dispatched[i]))
		}
		return err
	}

	return nil
}
