package commands

import (
	"context"

	"quadmesh/internal/core/domain/model/party"
)

// RegisterCustomerCommandHandler handles the business logic for customer
// registration.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
// Creates the customer aggregate and persists it within a transaction.
func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) error {
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

	customer, err := party.NewCustomer(
		cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.DeliveryLocation())
	if err != nil {
		return err
	}

	if err = uow.CustomerRepository().Add(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
