package commands

import (
	"context"
	"fmt"
)

// ErrRiderIsTooFarAway is returned when a reported GPS position is outside
// the verification tolerance of the expected location.
var ErrRiderIsTooFarAway = fmt.Errorf("rider position is outside the arrival tolerance")

// RiderArrivedAtRestaurantCommandHandler verifies a rider's reported position
// against the restaurant's location before recording the arrival.
type RiderArrivedAtRestaurantCommandHandler struct {
	uowFactory         UoWFactory
	gpsToleranceMeters float64
}

// NewRiderArrivedAtRestaurantCommandHandler creates a handler for restaurant
// arrival reports. The tolerance is the maximum allowed distance in meters
// between the reported position and the restaurant.
func NewRiderArrivedAtRestaurantCommandHandler(
	uowFactory UoWFactory,
	gpsToleranceMeters float64,
) RiderArrivedAtRestaurantCommandHandler {
	return RiderArrivedAtRestaurantCommandHandler{
		uowFactory:         uowFactory,
		gpsToleranceMeters: gpsToleranceMeters,
	}
}

// Handle processes the restaurant arrival report.
// The acting rider must be assigned to the order and within tolerance of the
// restaurant. The rider's stored location is updated to the reported
// position whether or not the arrival is accepted; a rejected report changes
// nothing else.
func (h RiderArrivedAtRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd RiderArrivedAtRestaurantCommand,
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

	restaurant, err := uow.RestaurantRepository().Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return err
	}

	distance, err := cmd.RiderLocation().DistanceTo(restaurant.Location())
	if err != nil {
		return err
	}
	if distance > h.gpsToleranceMeters {
		if commitErr := uow.Commit(ctx); commitErr != nil {
			return commitErr
		}
		return fmt.Errorf("%w: %.0fm from restaurant, tolerance %.0fm",
			ErrRiderIsTooFarAway, distance, h.gpsToleranceMeters)
	}

	if err = aggregate.ArriveAtRestaurant(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
