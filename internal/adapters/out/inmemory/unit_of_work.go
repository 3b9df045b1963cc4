package inmemory

import (
	"context"
	"errors"

	"quadmesh/internal/core/ports"
)

// Transaction lifecycle errors.
var (
	ErrTxAlreadyStarted = errors.New("transaction already started")
	ErrNoActiveTx       = errors.New("no active transaction")
)

// UnitOfWork serializes writers against the shared store. Begin takes the
// store's transaction lock, Commit and Rollback release it; whichever runs
// first wins and the other becomes a no-op, so the usual
// defer-rollback-then-commit pattern works unchanged.
type UnitOfWork struct {
	store  *Store
	active bool
}

// NewUnitOfWork creates a unit of work bound to the given store.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// UnitOfWorkFactory creates independent units of work over one shared store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create returns a fresh unit of work for one business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}

// Begin acquires the store's transaction lock.
func (u *UnitOfWork) Begin(_ context.Context) error {
	if u.active {
		return ErrTxAlreadyStarted
	}

	u.store.txMu.Lock()
	u.active = true
	return nil
}

// Commit ends the transaction and releases the lock.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTx
	}

	u.active = false
	u.store.txMu.Unlock()
	return nil
}

// Rollback ends the transaction and releases the lock. Writes already
// applied stay applied; see the package documentation.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoActiveTx
	}

	u.active = false
	u.store.txMu.Unlock()
	return nil
}

// OrderRepository returns the order repository over the shared store.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(u.store)
}

// RiderRepository returns the rider repository over the shared store.
func (u *UnitOfWork) RiderRepository() ports.RiderRepository {
	return NewRiderRepository(u.store)
}

// CustomerRepository returns the customer repository over the shared store.
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return NewCustomerRepository(u.store)
}

// RestaurantRepository returns the restaurant repository over the shared store.
func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return NewRestaurantRepository(u.store)
}

// EscrowAccountRepository returns the escrow repository over the shared store.
func (u *UnitOfWork) EscrowAccountRepository() ports.EscrowAccountRepository {
	return NewEscrowAccountRepository(u.store)
}
