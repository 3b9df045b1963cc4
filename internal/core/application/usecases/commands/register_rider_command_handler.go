package commands

import (
	"context"
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/model/rider"
	"quadmesh/internal/core/domain/services"
)

// RegisterRiderCommandHandler handles the business logic for rider
// registration. Besides persisting the rider it enqueues the rider for
// dispatch and, when an order is already waiting in rider search, triggers
// an assignment right away.
type RegisterRiderCommandHandler struct {
	uowFactory        UoWFactory
	queue             *services.DispatchQueue
	acceptanceTimeout time.Duration
}

// NewRegisterRiderCommandHandler creates a handler for rider registration.
func NewRegisterRiderCommandHandler(
	uowFactory UoWFactory,
	queue *services.DispatchQueue,
	acceptanceTimeout time.Duration,
) RegisterRiderCommandHandler {
	return RegisterRiderCommandHandler{
		uowFactory:        uowFactory,
		queue:             queue,
		acceptanceTimeout: acceptanceTimeout,
	}
}

// Handle processes the rider registration command.
// Persists the new rider, appends it to the dispatch queue and offers it the
// oldest order still looking for a rider, if any.
func (h RegisterRiderCommandHandler) Handle(ctx context.Context, cmd RegisterRiderCommand) error {
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

	aggregate, err := rider.NewRider(
		cmd.RiderID(), cmd.Name(), cmd.Email(), cmd.Phone(),
		cmd.CurrentLocation(), cmd.BankAccount())
	if err != nil {
		return err
	}

	riderRepo := uow.RiderRepository()
	if err = riderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = h.queue.Enqueue(aggregate.ID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	waiting, err := orderRepo.GetAllInStatus(ctx, order.SeekingRider)
	if err != nil {
		return err
	}

	var assignedID *kernel.UUID
	if len(waiting) > 0 {
		assignedID, err = assignNextRider(ctx, orderRepo, riderRepo, h.queue,
			waiting[0], h.acceptanceTimeout)
		if err != nil {
			return err
		}
	}

	return commitDispatch(ctx, uow, h.queue, assignedID)
}
