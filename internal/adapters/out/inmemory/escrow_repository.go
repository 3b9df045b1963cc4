package inmemory

import (
	"context"

	"quadmesh/internal/core/domain/model/escrow"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/ports"
	"quadmesh/internal/pkg/errs"
)

// EscrowAccountRepository is the map-backed implementation of
// ports.EscrowAccountRepository, keyed by order.
type EscrowAccountRepository struct {
	store *Store
}

// NewEscrowAccountRepository creates an escrow repository over the given store.
func NewEscrowAccountRepository(store *Store) *EscrowAccountRepository {
	return &EscrowAccountRepository{store: store}
}

var _ ports.EscrowAccountRepository = (*EscrowAccountRepository)(nil)

// Add stores a new escrow account. Fails when the order already has one,
// which is what makes payment capture non-repeatable at the storage level.
func (r *EscrowAccountRepository) Add(_ context.Context, aggregate *escrow.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.escrows[aggregate.OrderID()]; exists {
		return errs.NewValueIsInvalidError("escrow account already exists for order")
	}

	clone, err := cloneAccount(aggregate)
	if err != nil {
		return err
	}

	r.store.escrows[aggregate.OrderID()] = clone
	return nil
}

// Update replaces the stored account with the given aggregate's state.
func (r *EscrowAccountRepository) Update(_ context.Context, aggregate *escrow.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.dataMu.Lock()
	defer r.store.dataMu.Unlock()

	if _, exists := r.store.escrows[aggregate.OrderID()]; !exists {
		return errs.NewObjectNotFoundError("escrow account", aggregate.OrderID())
	}

	clone, err := cloneAccount(aggregate)
	if err != nil {
		return err
	}

	r.store.escrows[aggregate.OrderID()] = clone
	return nil
}

// GetByOrderID returns a copy of the order's escrow account.
func (r *EscrowAccountRepository) GetByOrderID(_ context.Context, orderID kernel.UUID) (*escrow.Account, error) {
	r.store.dataMu.RLock()
	defer r.store.dataMu.RUnlock()

	stored, exists := r.store.escrows[orderID]
	if !exists {
		return nil, errs.NewObjectNotFoundError("escrow account", orderID)
	}

	return cloneAccount(stored)
}

func cloneAccount(aggregate *escrow.Account) (*escrow.Account, error) {
	return escrow.RestoreAccount(
		aggregate.OrderID(),
		aggregate.RestaurantAmount(),
		aggregate.RiderAmount(),
		aggregate.IsRestaurantPaid(),
		aggregate.IsRiderHalfPaid(),
		aggregate.IsRiderFullPaid(),
	)
}
