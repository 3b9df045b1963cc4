// Package escrowrepo provides persistence for escrow accounts. Accounts are
// keyed by order ID since each order holds exactly one escrow account.
package escrowrepo

import (
	"quadmesh/internal/core/domain/model/escrow"
	"quadmesh/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EscrowAccountDTO represents the database structure for persisting escrow
// accounts. The three release flags are set-once and never revert.
type EscrowAccountDTO struct {
	OrderID          uuid.UUID `gorm:"type:uuid;primaryKey;column:order_id"`
	RestaurantAmount int64     `gorm:"column:restaurant_amount;not null"`
	RiderAmount      int64     `gorm:"column:rider_amount;not null"`
	RestaurantPaid   bool      `gorm:"column:restaurant_paid"`
	RiderHalfPaid    bool      `gorm:"column:rider_half_paid"`
	RiderFullPaid    bool      `gorm:"column:rider_full_paid"`
}

// TableName specifies the database table name for escrow accounts.
func (EscrowAccountDTO) TableName() string {
	return "escrow_accounts"
}

// fromDomain converts an escrow account aggregate to its database representation.
func fromDomain(aggregate *escrow.Account) EscrowAccountDTO {
	return EscrowAccountDTO{
		OrderID:          aggregate.OrderID().Bytes(),
		RestaurantAmount: aggregate.RestaurantAmount(),
		RiderAmount:      aggregate.RiderAmount(),
		RestaurantPaid:   aggregate.IsRestaurantPaid(),
		RiderHalfPaid:    aggregate.IsRiderHalfPaid(),
		RiderFullPaid:    aggregate.IsRiderFullPaid(),
	}
}

// toDomain converts a database DTO to an escrow account aggregate using RestoreAccount.
func toDomain(dto EscrowAccountDTO) (*escrow.Account, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return escrow.RestoreAccount(
		orderID,
		dto.RestaurantAmount,
		dto.RiderAmount,
		dto.RestaurantPaid,
		dto.RiderHalfPaid,
		dto.RiderFullPaid,
	)
}
