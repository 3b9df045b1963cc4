package commands

import (
	"context"
	"errors"
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/services"
)

// ErrRiderIsNotAssignedToOrder is returned when a rider acts on an order
// that is currently offered to a different rider, or to nobody.
var ErrRiderIsNotAssignedToOrder = errors.New("rider is not assigned to this order")

// RiderAcceptCommandHandler handles the business logic for a rider accepting
// an order offer. A late acceptance is rejected, the slow rider goes back to
// the tail of the dispatch queue and the order is offered to the next rider.
type RiderAcceptCommandHandler struct {
	uowFactory        UoWFactory
	queue             *services.DispatchQueue
	acceptanceTimeout time.Duration
}

// NewRiderAcceptCommandHandler creates a handler for rider acceptance.
func NewRiderAcceptCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
	acceptanceTimeout time.Duration,
) RiderAcceptCommandHandler {
	return RiderAcceptCommandHandler{
		uowFactory:        uowFactory,
		queue:             queue,
		acceptanceTimeout: acceptanceTimeout,
	}
}

// Handle processes the acceptance command.
// The acting rider must be the one currently assigned. A timely acceptance
// sends the rider toward the restaurant; a late one fails with
// order.ErrAcceptanceDeadlinePassed after the order has been handed to the
// next rider in the queue.
func (h RiderAcceptCommandHandler) Handle(ctx context.Context, cmd RiderAcceptCommand) error {
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
	acting, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	err = aggregate.Accept(time.Now(), acting.Name())
	if errors.Is(err, order.ErrAcceptanceDeadlinePassed) {
		assignedID, reassignErr := h.reassign(ctx, uow, aggregate)
		if reassignErr != nil {
			return reassignErr
		}
		if commitErr := commitDispatch(ctx, uow, h.queue, assignedID); commitErr != nil {
			return commitErr
		}
		return err
	}
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reassign frees the late rider back into the queue and offers the order to
// the next available rider, returning the newly assigned rider's ID if any.
func (h RiderAcceptCommandHandler) reassign(
	ctx context.Context,
	uow UoW,
	aggregate *order.Order,
) (*kernel.UUID, error) {
	riderRepo := uow.RiderRepository()
	orderRepo := uow.OrderRepository()

	if err := releaseAssignedRider(ctx, riderRepo, h.queue, aggregate); err != nil {
		return nil, err
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	return assignNextRider(ctx, orderRepo, riderRepo, h.queue, aggregate, h.acceptanceTimeout)
}
