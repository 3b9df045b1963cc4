package commands

import (
	"context"
)

// ConfirmPickupCommandHandler handles the business logic for pickup
// confirmation: the first rider tranche leaves escrow and the rider heads to
// the delivery location.
type ConfirmPickupCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation.
func NewConfirmPickupCommandHandler(uowFactory UoWFactory) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup confirmation command.
// The order must have a GPS-verified rider at the restaurant and the escrow
// pickup tranche must be unreleased. Payment and transition commit together.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	escrowRepo := uow.EscrowAccountRepository()
	account, err := escrowRepo.GetByOrderID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if _, err = account.PayRiderHalf(); err != nil {
		return err
	}

	if err = aggregate.MarkPickedUp(); err != nil {
		return err
	}

	if err = escrowRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
