// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
package riderrepo

import (
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The current GPS position is embedded with a location_ column prefix.
type RiderDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name            string      `gorm:"not null"`
	Email           string      `gorm:"not null"`
	Phone           string      `gorm:"not null"`
	Location        LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	BankAccount     string      `gorm:"column:bank_account"`
	IsAvailable     bool        `gorm:"column:is_available;index"`
	Rating          float64
	TotalDeliveries int `gorm:"column:total_deliveries"`
}

// TableName specifies the database table name for rider entities.
func (RiderDTO) TableName() string {
	return "riders"
}

// LocationDTO represents embedded GPS coordinates within the rider table.
type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	loc := aggregate.CurrentLocation()
	return RiderDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Phone: aggregate.Phone(),
		Location: LocationDTO{
			Latitude:  loc.Latitude(),
			Longitude: loc.Longitude(),
			Address:   loc.Address(),
		},
		BankAccount:     aggregate.BankAccount(),
		IsAvailable:     aggregate.IsAvailable(),
		Rating:          aggregate.Rating(),
		TotalDeliveries: aggregate.TotalDeliveries(),
	}
}

// toDomain converts a database DTO to a rider domain aggregate using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := kernel.NewLocation(dto.Location.Latitude, dto.Location.Longitude, dto.Location.Address)
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		dto.Name,
		dto.Email,
		dto.Phone,
		loc,
		dto.BankAccount,
		dto.IsAvailable,
		dto.Rating,
		dto.TotalDeliveries,
	)
}
