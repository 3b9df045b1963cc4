package inmemory

import (
	"context"
	"sort"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/rider"
	"quadmesh/internal/core/ports"
	"quadmesh/internal/pkg/errs"
)

// RiderRepository is the map-backed implementation of ports.RiderRepository.
type RiderRepository struct {
	store *Store
}

// NewRiderRepository creates a rider repository over the given store.
func NewRiderRepository(store *Store) *RiderRepository {
	return &RiderRepository{store: store}
}

var _ ports.RiderRepository = (*RiderRepository)(nil)

// Add stores a new rider. Fails if the identifier is already taken.
func (r *RiderRepository) Add(_ context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.riders[aggregate.ID()]; exists {
		return errs.NewValueIsInvalidError("rider ID already exists")
	}

	clone, err := cloneRider(aggregate)
	if err != nil {
		return err
	}

	r.store.riders[aggregate.ID()] = clone
	return nil
}

// Update replaces the stored rider with the given aggregate's state.
func (r *RiderRepository) Update(_ context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.riders[aggregate.ID()]; !exists {
		return errs.NewObjectNotFoundError("rider", aggregate.ID())
	}

	clone, err := cloneRider(aggregate)
	if err != nil {
		return err
	}

	r.store.riders[aggregate.ID()] = clone
	return nil
}

// Get returns a copy of the stored rider.
func (r *RiderRepository) Get(_ context.Context, id kernel.UUID) (*rider.Rider, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	stored, exists := r.store.riders[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("rider", id)
	}

	return cloneRider(stored)
}

// GetAll returns copies of every registered rider, ordered by identifier
// for deterministic output.
func (r *RiderRepository) GetAll(_ context.Context) ([]*rider.Rider, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	out := make([]*rider.Rider, 0, len(r.store.riders))
	for _, stored := range r.store.riders {
		clone, err := cloneRider(stored)
		if err != nil {
			return nil, err
		}
		out = append(out, clone)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

// cloneRider rebuilds an independent copy through the restore constructor.
func cloneRider(aggregate *rider.Rider) (*rider.Rider, error) {
	return rider.RestoreRider(
		aggregate.ID(),
		aggregate.Name(),
		aggregate.Email(),
		aggregate.Phone(),
		aggregate.CurrentLocation(),
		aggregate.BankAccount(),
		aggregate.IsAvailable(),
		aggregate.Rating(),
		aggregate.TotalDeliveries(),
	)
}
