package inmemory

import (
	"context"
	"sort"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/ports"
	"quadmesh/internal/pkg/errs"
)

// OrderRepository is the map-backed implementation of ports.OrderRepository.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over the given store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

var _ ports.OrderRepository = (*OrderRepository)(nil)

// Add stores a new order. Fails if the identifier is already taken.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.orders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("order ID already exists")
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.store.orders[aggregate.ID()] = clone
	return nil
}

// Update replaces the stored order with the given aggregate's state.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.orders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	clone, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.store.orders[aggregate.ID()] = clone
	return nil
}

// Get returns a copy of the stored order.
func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	stored, exists := r.store.orders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return cloneOrder(stored)
}

// GetAllInStatus returns copies of all orders in the given status, oldest
// placed first.
func (r *OrderRepository) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	var out []*order.Order
	for _, stored := range r.store.orders {
		if stored.Status() != status {
			continue
		}

		clone, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt().Before(out[j].CreatedAt())
	})
	return out, nil
}

// cloneOrder rebuilds an independent copy through the restore constructor.
func cloneOrder(aggregate *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		aggregate.ID(),
		aggregate.CustomerID(),
		aggregate.RestaurantID(),
		aggregate.Items(),
		aggregate.DeliveryFee(),
		aggregate.TotalAmount(),
		aggregate.Status(),
		aggregate.PaymentStatus(),
		aggregate.AssignedRider(),
		aggregate.RiderAcceptanceDeadline(),
		aggregate.CreatedAt(),
		aggregate.History(),
	)
}
