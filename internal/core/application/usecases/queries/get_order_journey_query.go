// Package queries contains read-only operations for the marketplace.
// Implements the Query side of the CQRS architecture: handlers project
// domain state into response shapes without modifying anything.
package queries

import (
	"errors"
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/guard"
)

var ErrGetOrderJourneyQueryIsNotConstructed = errors.New(
	"GetOrderJourneyQuery must be created via NewGetOrderJourneyQuery constructor",
)

// GetOrderJourneyQuery retrieves the customer-facing journey view of one
// order: where it sits on the twelve-step path, who is carrying it and the
// full status history.
type GetOrderJourneyQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderJourneyQuery creates a query for an order's journey view.
func NewGetOrderJourneyQuery(orderID kernel.UUID) (GetOrderJourneyQuery, error) {
	query := GetOrderJourneyQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderJourneyQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderJourneyQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderJourneyQueryIsNotConstructed)
}

// OrderID returns the identifier of the tracked order.
func (q GetOrderJourneyQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderJourneyQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// JourneyRider describes the rider currently carrying the order.
type JourneyRider struct {
	ID       kernel.UUID
	Name     string
	Location kernel.Location
}

// JourneyEvent is one entry of the order's status history.
type JourneyEvent struct {
	Status     string
	Note       string
	OccurredAt time.Time
}

// GetOrderJourneyQueryResponse is the journey projection of one order.
// Step and ProgressPercent are zero for cancelled orders; Rider is nil until
// a rider is assigned.
type GetOrderJourneyQueryResponse struct {
	OrderID         kernel.UUID
	Status          string
	Step            int
	TotalSteps      int
	Label           string
	ProgressPercent float64
	Rider           *JourneyRider
	History         []JourneyEvent
}
