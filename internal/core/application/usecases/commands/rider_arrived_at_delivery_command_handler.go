package commands

import (
	"context"
	"fmt"
)

// RiderArrivedAtDeliveryCommandHandler verifies a rider's reported position
// against the customer's delivery location before recording the arrival.
type RiderArrivedAtDeliveryCommandHandler struct {
	uowFactory         UoWFactory
	gpsToleranceMeters float64
}

// NewRiderArrivedAtDeliveryCommandHandler creates a handler for delivery
// arrival reports.
func NewRiderArrivedAtDeliveryCommandHandler(
	uowFactory UoWFactory,
	gpsToleranceMeters float64,
) RiderArrivedAtDeliveryCommandHandler {
	return RiderArrivedAtDeliveryCommandHandler{
		uowFactory:         uowFactory,
		gpsToleranceMeters: gpsToleranceMeters,
	}
}

// Handle processes the delivery arrival report.
// Mirrors the restaurant arrival check against the customer's delivery
// location: the rider's stored position always updates, the order moves on
// only when the report is within tolerance.
func (h RiderArrivedAtDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd RiderArrivedAtDeliveryCommand,
) error {
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

	assigned := aggregate.AssignedRider()
	if assigned == nil || !assigned.IsEqual(cmd.RiderID()) {
		return ErrRiderIsNotAssignedToOrder
	}

	riderRepo := uow.RiderRepository()
	acting, err := riderRepo.Get(ctx, cmd.RiderID())
	if err != nil {
		return err
	}

	if err = acting.MoveTo(cmd.RiderLocation()); err != nil {
		return err
	}
	if err = riderRepo.Update(ctx, acting); err != nil {
		return err
	}

	customer, err := uow.CustomerRepository().Get(ctx, aggregate.CustomerID())
	if err != nil {
		return err
	}

	distance, err := cmd.RiderLocation().DistanceTo(customer.DeliveryLocation())
	if err != nil {
		return err
	}
	if distance > h.gpsToleranceMeters {
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		return fmt.Errorf("%w: %.0fm from delivery location, tolerance %.0fm",
			ErrRiderIsTooFarAway, distance, h.gpsToleranceMeters)
	}

	if err = aggregate.ArriveAtDelivery(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
