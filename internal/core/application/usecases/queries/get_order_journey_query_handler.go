package queries

import (
	"context"

	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/ports"
)

// GetOrderJourneyQueryHandler projects an order into its journey view.
// It reads through the repository ports, so the same handler serves both the
// in-memory and the relational storage mode.
type GetOrderJourneyQueryHandler struct {
	orderRepo ports.OrderRepository
	riderRepo ports.RiderRepository
}

// NewGetOrderJourneyQueryHandler creates a handler for journey queries.
func NewGetOrderJourneyQueryHandler(
	orderRepo ports.OrderRepository,
	riderRepo ports.RiderRepository,
) GetOrderJourneyQueryHandler {
	return GetOrderJourneyQueryHandler{
		orderRepo: orderRepo,
		riderRepo: riderRepo,
	}
}

// Handle executes the journey query.
// Progress is the order's step over the twelve-step total; the rider block
// is filled only while a rider is bound to the order.
func (h GetOrderJourneyQueryHandler) Handle(
	ctx context.Context,
	query GetOrderJourneyQuery,
) (GetOrderJourneyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderJourneyQueryResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderJourneyQueryResponse{}, err
	}

	status := aggregate.Status()
	response := GetOrderJourneyQueryResponse{
		OrderID:         aggregate.ID(),
		Status:          status.String(),
		Step:            status.Step(),
		TotalSteps:      order.TotalSteps,
		Label:           status.Label(),
		ProgressPercent: float64(status.Step()) * 100 / order.TotalSteps,
	}

	if assigned := aggregate.AssignedRider(); assigned != nil {
		carrier, riderErr := h.riderRepo.Get(ctx, *assigned)
		if riderErr != nil {
			return GetOrderJourneyQueryResponse{}, riderErr
		}

		response.Rider = &JourneyRider{
			ID:       carrier.ID(),
			Name:     carrier.Name(),
			Location: carrier.CurrentLocation(),
		}
	}

	history := aggregate.History()
	response.History = make([]JourneyEvent, 0, len(history))
	for _, change := range history {
		response.History = append(response.History, JourneyEvent{
			Status:     change.Status().String(),
			Note:       change.Note(),
			OccurredAt: change.OccurredAt(),
		})
	}

	return response, nil
}
