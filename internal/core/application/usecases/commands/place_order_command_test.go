package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadmesh/internal/core/application/usecases/commands"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	items := []commands.ItemInput{
		{Name: "Pizza", Quantity: 1, Price: 35000},
		{Name: "Soda", Quantity: 2, Price: 9000},
	}

	t.Run("should create command with validated items", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewPlaceOrderCommand(
			orderID, kernel.NewUUID(), kernel.NewUUID(), items, 5000)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Len(t, cmd.Items(), 2)
		assert.Equal(t, int64(5000), cmd.DeliveryFee())
	})

	t.Run("should reject empty item list", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, 5000)

		assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	})

	t.Run("should reject invalid item", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]commands.ItemInput{{Name: "", Quantity: 1, Price: 1000}}, 5000)

		assert.ErrorIs(t, err, order.ErrItemNameIsRequired)
	})

	t.Run("should reject negative delivery fee", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), items, -1)

		assert.ErrorIs(t, err, order.ErrDeliveryFeeIsInvalid)
	})

	t.Run("should reject empty order id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), items, 5000)

		assert.Error(t, err)
	})

	t.Run("should reject command created without constructor", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestNewRiderAcceptCommand(t *testing.T) {
	t.Run("should create command with both identifiers", func(t *testing.T) {
		orderID := kernel.NewUUID()
		riderID := kernel.NewUUID()

		cmd, err := commands.NewRiderAcceptCommand(orderID, riderID)

		require.NoError(t, err)
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, riderID, cmd.RiderID())
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		_, err := commands.NewRiderAcceptCommand(kernel.UUID{}, kernel.NewUUID())
		assert.Error(t, err)

		_, err = commands.NewRiderAcceptCommand(kernel.NewUUID(), kernel.UUID{})
		assert.Error(t, err)
	})
}

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should require a reason", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), "")

		assert.ErrorIs(t, err, commands.ErrReasonIsRequired)
	})
}

func TestNewRegisterCustomerCommand(t *testing.T) {
	location, err := kernel.NewLocation(0.3426, 32.5775, "Nakasero")
	require.NoError(t, err)

	t.Run("should reject missing name and email", func(t *testing.T) {
		_, err := commands.NewRegisterCustomerCommand(
			kernel.NewUUID(), "", "alice@example.ug", "+256", location)
		assert.ErrorIs(t, err, commands.ErrNameIsRequired)

		_, err = commands.NewRegisterCustomerCommand(
			kernel.NewUUID(), "Alice", "", "+256", location)
		assert.ErrorIs(t, err, commands.ErrEmailIsRequired)
	})

	t.Run("should reject invalid location", func(t *testing.T) {
		_, err := commands.NewRegisterCustomerCommand(
			kernel.NewUUID(), "Alice", "alice@example.ug", "+256", kernel.Location{})

		assert.Error(t, err)
	})
}
