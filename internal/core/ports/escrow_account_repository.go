package ports

import (
	"context"

	"quadmesh/internal/core/domain/model/escrow"
	"quadmesh/internal/core/domain/model/kernel"
)

// EscrowAccountRepository defines the persistence contract for escrow
// accounts. Accounts are keyed by the order they escrow, one account per
// order at most.
type EscrowAccountRepository interface {
	// Add persists a new escrow account to storage.
	// Fails if an account for the same order already exists.
	Add(ctx context.Context, aggregate *escrow.Account) error

	// Update persists changes to an existing escrow account.
	Update(ctx context.Context, aggregate *escrow.Account) error

	// GetByOrderID retrieves the escrow account for the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Account, error)
}
