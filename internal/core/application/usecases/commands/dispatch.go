package commands

import (
	"context"
	"errors"
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/model/rider"
	"quadmesh/internal/core/domain/services"
	"quadmesh/internal/core/ports"
)

// assignNextRider offers the order to the next available rider from the
// dispatch queue: the rider is marked busy, bound to the order with an
// acceptance deadline and both aggregates are updated through the given
// repositories.
//
// An empty or fully unavailable queue is not an error: the order simply
// stays in rider search and the next trigger (a rider registering, a
// rejection, the timeout job) retries. The caller owns the transaction and
// must pass the returned rider ID to commitDispatch, so a failed commit puts
// the rider back where the dequeue took it from.
//
// Returns the assigned rider's ID, or nil when no rider was available. When
// binding or persisting fails after the dequeue, the rider goes back to the
// head of the queue before the error is returned.
func assignNextRider(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	riderRepo ports.RiderRepository,
	queue *services.DispatchQueue,
	aggregate *order.Order,
	acceptanceTimeout time.Duration,
) (*kernel.UUID, error) {
	var next *rider.Rider

	riderID, err := queue.DequeueNext(func(candidateID kernel.UUID) bool {
		candidate, getErr := riderRepo.Get(ctx, candidateID)
		if getErr != nil {
			return false
		}
		if !candidate.IsAvailable() {
			return false
		}
		next = candidate
		return true
	})
	if errors.Is(err, services.ErrQueueIsEmpty) || errors.Is(err, services.ErrNoAvailableRider) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err = bindRider(ctx, orderRepo, riderRepo, aggregate, next, riderID, acceptanceTimeout); err != nil {
		return nil, errors.Join(err, queue.Requeue(riderID))
	}

	return &riderID, nil
}

// bindRider marks the rider busy, binds it to the order with an acceptance
// deadline and persists both aggregates.
func bindRider(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	riderRepo ports.RiderRepository,
	aggregate *order.Order,
	next *rider.Rider,
	riderID kernel.UUID,
	acceptanceTimeout time.Duration,
) error {
	if err := next.MarkBusy(); err != nil {
		return err
	}

	deadline := time.Now().Add(acceptanceTimeout)
	if err := aggregate.AssignRider(riderID, deadline, next.Name()); err != nil {
		return err
	}

	if err := riderRepo.Update(ctx, next); err != nil {
		return err
	}

	return orderRepo.Update(ctx, aggregate)
}

// commitDispatch commits a unit of work that dequeued a rider for assignment.
// When the commit fails the storage rolls back but the in-process queue does
// not, so the dequeued rider returns to the head of the queue to keep both
// views consistent. A nil assignedID means no rider was dequeued and the
// commit needs no compensation.
func commitDispatch(
	ctx context.Context,
	tx TxManager,
	queue *services.DispatchQueue,
	assignedID *kernel.UUID,
) error {
	err := tx.Commit(ctx)
	if err != nil && assignedID != nil {
		return errors.Join(err, queue.Requeue(*assignedID))
	}
	return err
}

// releaseAssignedRider unbinds the order's current rider, frees the rider
// and returns it to the tail of the dispatch queue. Used on rejection and
// acceptance timeout, where the follow-up reassignment must be able to draw
// the released rider from the queue again.
func releaseAssignedRider(
	ctx context.Context,
	riderRepo ports.RiderRepository,
	queue *services.DispatchQueue,
	aggregate *order.Order,
) error {
	releasedID, err := aggregate.ReleaseRider()
	if err != nil {
		return err
	}

	released, err := riderRepo.Get(ctx, releasedID)
	if err != nil {
		return err
	}

	released.MarkAvailable()
	if err = riderRepo.Update(ctx, released); err != nil {
		return err
	}

	return queue.Enqueue(releasedID)
}
