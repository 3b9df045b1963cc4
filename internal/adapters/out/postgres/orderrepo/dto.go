// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order lines and the status history are stored as JSONB documents alongside
// the row; they are only ever read and written as part of the whole aggregate.
type OrderDTO struct {
	ID                 uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID         `gorm:"type:uuid;index"`
	RestaurantID       uuid.UUID         `gorm:"type:uuid;index"`
	AssignedRiderID    *uuid.UUID        `gorm:"type:uuid;index"`
	Items              []ItemDTO         `gorm:"type:jsonb;serializer:json"`
	DeliveryFee        int64             `gorm:"not null"`
	TotalAmount        int64             `gorm:"not null"`
	Status             string            `gorm:"index"`
	PaymentStatus      string            `gorm:"column:payment_status"`
	AcceptanceDeadline *time.Time        `gorm:"column:acceptance_deadline"`
	CreatedAt          time.Time         `gorm:"column:created_at"`
	History            []StatusChangeDTO `gorm:"type:jsonb;serializer:json"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents an order line within the JSONB items document.
type ItemDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Price    int64  `json:"price"`
}

// StatusChangeDTO represents one status history entry within the JSONB
// history document.
type StatusChangeDTO struct {
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
	Note       string    `json:"note"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var riderID *uuid.UUID
	if id := aggregate.AssignedRider(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, StatusChangeDTO{
			Status:     change.Status().String(),
			OccurredAt: change.OccurredAt(),
			Note:       change.Note(),
		})
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		CustomerID:         aggregate.CustomerID().Bytes(),
		RestaurantID:       aggregate.RestaurantID().Bytes(),
		AssignedRiderID:    riderID,
		Items:              items,
		DeliveryFee:        aggregate.DeliveryFee(),
		TotalAmount:        aggregate.TotalAmount(),
		Status:             aggregate.Status().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		AcceptanceDeadline: aggregate.RiderAcceptanceDeadline(),
		CreatedAt:          aggregate.CreatedAt(),
		History:            history,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including payment state, rider
// assignment and status history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.AssignedRiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.AssignedRiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		riderID = &rID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.Quantity, itemDTO.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, changeDTO := range dto.History {
		changeStatus, changeErr := order.StatusFromString(changeDTO.Status)
		if changeErr != nil {
			return nil, changeErr
		}
		history = append(history, order.NewStatusChange(changeStatus, changeDTO.OccurredAt, changeDTO.Note))
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		items,
		dto.DeliveryFee,
		dto.TotalAmount,
		status,
		paymentStatus,
		riderID,
		dto.AcceptanceDeadline,
		dto.CreatedAt,
		history,
	)
}
