// Package partyrepo provides persistence for the customer and restaurant
// parties of the marketplace. Both entities are small and change rarely, so
// they share one package with a table each.
package partyrepo

import (
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/party"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name             string      `gorm:"not null"`
	Email            string      `gorm:"not null"`
	Phone            string      `gorm:"not null"`
	DeliveryLocation LocationDTO `gorm:"embedded;embeddedPrefix:delivery_"`
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// RestaurantDTO represents the database structure for persisting restaurants.
type RestaurantDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"not null"`
	Location    LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
	Email       string      `gorm:"not null"`
	Phone       string      `gorm:"not null"`
	BankAccount string      `gorm:"column:bank_account"`
	IsActive    bool        `gorm:"column:is_active;index"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// LocationDTO represents embedded coordinates within a party table.
type LocationDTO struct {
	Latitude  float64
	Longitude float64
	Address   string
}

func locationFromDomain(loc kernel.Location) LocationDTO {
	return LocationDTO{
		Latitude:  loc.Latitude(),
		Longitude: loc.Longitude(),
		Address:   loc.Address(),
	}
}

func locationToDomain(dto LocationDTO) (kernel.Location, error) {
	return kernel.NewLocation(dto.Latitude, dto.Longitude, dto.Address)
}

// customerFromDomain converts a customer entity to its database representation.
func customerFromDomain(aggregate *party.Customer) CustomerDTO {
	return CustomerDTO{
		ID:               aggregate.ID().Bytes(),
		Name:             aggregate.Name(),
		Email:            aggregate.Email(),
		Phone:            aggregate.Phone(),
		DeliveryLocation: locationFromDomain(aggregate.DeliveryLocation()),
	}
}

// customerToDomain converts a database DTO to a customer entity.
func customerToDomain(dto CustomerDTO) (*party.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := locationToDomain(dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}

	return party.NewCustomer(id, dto.Name, dto.Email, dto.Phone, loc)
}

// restaurantFromDomain converts a restaurant entity to its database representation.
func restaurantFromDomain(aggregate *party.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Location:    locationFromDomain(aggregate.Location()),
		Email:       aggregate.Email(),
		Phone:       aggregate.Phone(),
		BankAccount: aggregate.BankAccount(),
		IsActive:    aggregate.IsActive(),
	}
}

// restaurantToDomain converts a database DTO to a restaurant entity using
// RestoreRestaurant to preserve the activation flag.
func restaurantToDomain(dto RestaurantDTO) (*party.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	return party.RestoreRestaurant(id, dto.Name, loc, dto.Email, dto.Phone, dto.BankAccount, dto.IsActive)
}
