package http

import (
	"time"

	"quadmesh/internal/core/application/usecases/queries"
	"quadmesh/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON body returned for any failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the generated identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// LocationPayload is the JSON shape of a GPS position with a street address.
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// RegisterCustomerRequest is the body of POST /customers.
type RegisterCustomerRequest struct {
	Name             string          `json:"name"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	DeliveryLocation LocationPayload `json:"delivery_location"`
}

// RegisterRestaurantRequest is the body of POST /restaurants.
type RegisterRestaurantRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	BankAccount string          `json:"bank_account"`
	Location    LocationPayload `json:"location"`
}

// RegisterRiderRequest is the body of POST /riders.
type RegisterRiderRequest struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	BankAccount string          `json:"bank_account"`
	Location    LocationPayload `json:"location"`
}

// OrderItemPayload is one order line in a placement request.
type OrderItemPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// PlaceOrderRequest is the body of POST /orders.
type PlaceOrderRequest struct {
	CustomerID   string             `json:"customer_id"`
	RestaurantID string             `json:"restaurant_id"`
	Items        []OrderItemPayload `json:"items"`
	DeliveryFee  int64              `json:"delivery_fee"`
}

// RiderActionRequest identifies the rider performing an accept or reject.
type RiderActionRequest struct {
	RiderID string `json:"rider_id"`
}

// RiderArrivalRequest reports a rider's GPS position at an arrival check.
type RiderArrivalRequest struct {
	RiderID  string          `json:"rider_id"`
	Location LocationPayload `json:"location"`
}

// parse validates the rider identifier and builds the reported location.
func (r RiderArrivalRequest) parse() (kernel.UUID, kernel.Location, error) {
	riderID, err := kernel.UUIDFromString(r.RiderID)
	if err != nil {
		return kernel.UUID{}, kernel.Location{}, err
	}

	location, err := kernel.NewLocation(r.Location.Latitude, r.Location.Longitude, r.Location.Address)
	if err != nil {
		return kernel.UUID{}, kernel.Location{}, err
	}

	return riderID, location, nil
}

// CancelOrderRequest is the body of POST /orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ActiveOrderResponse is one row of the active orders listing.
type ActiveOrderResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customer_id"`
	Status      string `json:"status"`
	TotalAmount int64  `json:"total_amount"`
}

// JourneyRiderResponse describes the rider currently carrying the order.
type JourneyRiderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// JourneyEventResponse is one entry of the order's status history.
type JourneyEventResponse struct {
	Status     string    `json:"status"`
	Note       string    `json:"note"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderJourneyResponse is the customer-facing journey projection of an order.
type OrderJourneyResponse struct {
	OrderID         string                 `json:"order_id"`
	Status          string                 `json:"status"`
	Step            int                    `json:"step"`
	TotalSteps      int                    `json:"total_steps"`
	Label           string                 `json:"label"`
	ProgressPercent float64                `json:"progress_percent"`
	Rider           *JourneyRiderResponse  `json:"rider,omitempty"`
	History         []JourneyEventResponse `json:"history"`
}

// journeyResponseFromQuery converts a journey query result to its JSON shape.
func journeyResponseFromQuery(journey queries.GetOrderJourneyQueryResponse) OrderJourneyResponse {
	var riderResponse *JourneyRiderResponse
	if journey.Rider != nil {
		riderResponse = &JourneyRiderResponse{
			ID:        journey.Rider.ID.String(),
			Name:      journey.Rider.Name,
			Latitude:  journey.Rider.Location.Latitude(),
			Longitude: journey.Rider.Location.Longitude(),
		}
	}

	history := make([]JourneyEventResponse, 0, len(journey.History))
	for _, event := range journey.History {
		history = append(history, JourneyEventResponse{
			Status:     event.Status,
			Note:       event.Note,
			OccurredAt: event.OccurredAt,
		})
	}

	return OrderJourneyResponse{
		OrderID:         journey.OrderID.String(),
		Status:          journey.Status,
		Step:            journey.Step,
		TotalSteps:      journey.TotalSteps,
		Label:           journey.Label,
		ProgressPercent: journey.ProgressPercent,
		Rider:           riderResponse,
		History:         history,
	}
}
