package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		statuses := []Status{
			PendingPayment, PaymentEscrowed, RestaurantNotified, RestaurantConfirmed,
			SeekingRider, RiderAssigned, RiderEnRoutePickup, RiderAtRestaurant,
			OrderPickedUp, RiderEnRouteDelivery, RiderAtDelivery, Delivered, Cancelled,
		}

		for _, status := range statuses {
			assert.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		assert.Error(t, Unknown.Validate())
		assert.Error(t, Status(999).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render snake case names", func(t *testing.T) {
		assert.Equal(t, "pending_payment", PendingPayment.String())
		assert.Equal(t, "seeking_rider", SeekingRider.String())
		assert.Equal(t, "rider_en_route_delivery", RiderEnRouteDelivery.String())
		assert.Equal(t, "delivered", Delivered.String())
		assert.Equal(t, "cancelled", Cancelled.String())
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark delivered and cancelled as terminal", func(t *testing.T) {
		assert.True(t, Delivered.IsTerminal())
		assert.True(t, Cancelled.IsTerminal())
	})

	t.Run("should mark in-flight statuses as non-terminal", func(t *testing.T) {
		assert.False(t, PendingPayment.IsTerminal())
		assert.False(t, RiderAtDelivery.IsTerminal())
	})
}

func TestStatus_Step(t *testing.T) {
	t.Run("should map the happy path onto steps 1 through 12", func(t *testing.T) {
		assert.Equal(t, 1, PendingPayment.Step())
		assert.Equal(t, 5, SeekingRider.Step())
		assert.Equal(t, 9, OrderPickedUp.Step())
		assert.Equal(t, TotalSteps, Delivered.Step())
	})

	t.Run("should map cancelled to step zero", func(t *testing.T) {
		assert.Equal(t, 0, Cancelled.Step())
		assert.Equal(t, 0, Unknown.Step())
	})
}

func TestStatus_Label(t *testing.T) {
	t.Run("should render journey labels", func(t *testing.T) {
		assert.Equal(t, "Payment Processing", PendingPayment.Label())
		assert.Equal(t, "Finding Rider", SeekingRider.Label())
		assert.Equal(t, "Rider Coming to You", RiderEnRouteDelivery.Label())
		assert.Equal(t, "Delivered!", Delivered.Label())
	})
}
