package services

import (
	"errors"
	"sync"

	"quadmesh/internal/core/domain/model/kernel"
)

// ErrNoAvailableRider is returned when the dispatch queue holds entries but
// none of the queued riders is currently available. The caller typically
// leaves the order in rider search and retries on the next trigger.
var ErrNoAvailableRider = errors.New("no available rider in dispatch queue")

// ErrQueueIsEmpty is returned when the dispatch queue holds no entries at all.
var ErrQueueIsEmpty = errors.New("dispatch queue is empty")

// DispatchQueue is a domain service holding riders waiting for order
// assignments in first-in, first-out order.
//
// Riders join the queue on registration and rejoin at the tail after every
// completed delivery, rejection or acceptance timeout, so assignments rotate
// fairly through the fleet. Dequeuing skips riders that have become
// unavailable since they enqueued; a skipped rider is dropped, not recycled,
// and rejoins only through an explicit Enqueue when it frees up.
//
// The queue is safe for concurrent use. It deduplicates on enqueue: a rider
// already waiting keeps its original position.
type DispatchQueue struct {
	mu       sync.Mutex
	riderIDs []kernel.UUID
}

// NewDispatchQueue creates an empty dispatch queue.
func NewDispatchQueue() *DispatchQueue {
	return &DispatchQueue{}
}

// Enqueue appends a rider to the tail of the queue. A rider already queued
// keeps its position and is not added twice.
func (q *DispatchQueue) Enqueue(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for _, queued := range q.riderIDs {
		if queued.IsEqual(riderID) {
			return nil
		}
	}

	q.riderIDs = append(q.riderIDs, riderID)
	return nil
}

// DequeueNext removes and returns the first queued rider for which available
// reports true. Riders rejected by the predicate are removed from the queue
// and not returned. The loop is bounded by the queue length at call time, so
// a queue full of unavailable riders drains in one pass and returns
// ErrNoAvailableRider.
func (q *DispatchQueue) DequeueNext(available func(riderID kernel.UUID) bool) (kernel.UUID, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.riderIDs) == 0 {
		return kernel.UUID{}, ErrQueueIsEmpty
	}

	for len(q.riderIDs) > 0 {
		next := q.riderIDs[0]
		q.riderIDs = q.riderIDs[1:]

		if available(next) {
			return next, nil
		}
	}

	return kernel.UUID{}, ErrNoAvailableRider
}

// Requeue puts a rider back at the head of the queue, restoring the position
// it held before a dequeue whose follow-up work failed. A rider already
// queued keeps its current position.
func (q *DispatchQueue) Requeue(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	for _, queued := range q.riderIDs {
		if queued.IsEqual(riderID) {
			return nil
		}
	}

	q.riderIDs = append([]kernel.UUID{riderID}, q.riderIDs...)
	return nil
}

// Remove deletes a rider from the queue wherever it sits. Removing a rider
// that is not queued is a no-op.
func (q *DispatchQueue) Remove(riderID kernel.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, queued := range q.riderIDs {
		if queued.IsEqual(riderID) {
			q.riderIDs = append(q.riderIDs[:i], q.riderIDs[i+1:]...)
			return
		}
	}
}

// Len returns the number of riders currently waiting.
func (q *DispatchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.riderIDs)
}

// Snapshot returns the queued rider identifiers in dispatch order.
func (q *DispatchQueue) Snapshot() []kernel.UUID {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]kernel.UUID, len(q.riderIDs))
	copy(out, q.riderIDs)
	return out
}
