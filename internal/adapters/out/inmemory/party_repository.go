package inmemory

import (
	"context"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/party"
	"quadmesh/internal/core/ports"
	"quadmesh/internal/pkg/errs"
)

// CustomerRepository is the map-backed implementation of ports.CustomerRepository.
type CustomerRepository struct {
	store *Store
}

// NewCustomerRepository creates a customer repository over the given store.
func NewCustomerRepository(store *Store) *CustomerRepository {
	return &CustomerRepository{store: store}
}

var _ ports.CustomerRepository = (*CustomerRepository)(nil)

// Add stores a new customer. Fails if the identifier is already taken.
func (r *CustomerRepository) Add(_ context.Context, aggregate *party.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.customers[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("customer ID already exists")
	}

	clone, err := cloneCustomer(aggregate)
	if err != nil {
		return err
	}

	r.store.customers[aggregate.ID()] = clone
	return nil
}

// Get returns a copy of the stored customer.
func (r *CustomerRepository) Get(_ context.Context, id kernel.UUID) (*party.Customer, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	stored, exists := r.store.customers[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", id)
	}

	return cloneCustomer(stored)
}

// RestaurantRepository is the map-backed implementation of ports.RestaurantRepository.
type RestaurantRepository struct {
	store *Store
}

// NewRestaurantRepository creates a restaurant repository over the given store.
func NewRestaurantRepository(store *Store) *RestaurantRepository {
	return &RestaurantRepository{store: store}
}

var _ ports.RestaurantRepository = (*RestaurantRepository)(nil)

// Add stores a new restaurant. Fails if the identifier is already taken.
func (r *RestaurantRepository) Add(_ context.Context, aggregate *party.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.restaurants[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("restaurant ID already exists")
	}

	clone, err := cloneRestaurant(aggregate)
	if err != nil {
		return err
	}

	r.store.restaurants[aggregate.ID()] = clone
	return nil
}

// Update replaces the stored restaurant with the given aggregate's state.
func (r *RestaurantRepository) Update(_ context.Context, aggregate *party.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.restaurants[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
	}

	clone, err := cloneRestaurant(aggregate)
	if err != nil {
		return err
	}

	r.store.restaurants[aggregate.ID()] = clone
	return nil
}

// Get returns a copy of the stored restaurant.
func (r *RestaurantRepository) Get(_ context.Context, id kernel.UUID) (*party.Restaurant, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	stored, exists := r.store.restaurants[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("restaurant", id)
	}

	return cloneRestaurant(stored)
}

func cloneCustomer(aggregate *party.Customer) (*party.Customer, error) {
	return party.NewCustomer(
		aggregate.ID(),
		aggregate.Name(),
		aggregate.Email(),
		aggregate.Phone(),
		aggregate.DeliveryLocation(),
	)
}

func cloneRestaurant(aggregate *party.Restaurant) (*party.Restaurant, error) {
	return party.RestoreRestaurant(
		aggregate.ID(),
		aggregate.Name(),
		aggregate.Location(),
		aggregate.Email(),
		aggregate.Phone(),
		aggregate.BankAccount(),
		aggregate.IsActive(),
	)
}
