package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadmesh/internal/adapters/out/inmemory"
	"quadmesh/internal/core/application/usecases/queries"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/model/rider"
)

func seedOrder(t *testing.T, store *inmemory.Store) *order.Order {
	t.Helper()

	item, err := order.NewItem("Pizza Margherita", 1, 35000)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, 5000)
	require.NoError(t, err)

	require.NoError(t, inmemory.NewOrderRepository(store).Add(t.Context(), aggregate))
	return aggregate
}

func TestGetOrderJourneyQueryHandler_Handle(t *testing.T) {
	t.Run("should project a fresh order onto step one", func(t *testing.T) {
		store := inmemory.NewStore()
		aggregate := seedOrder(t, store)

		h := queries.NewGetOrderJourneyQueryHandler(
			inmemory.NewOrderRepository(store), inmemory.NewRiderRepository(store))
		query, err := queries.NewGetOrderJourneyQuery(aggregate.ID())
		require.NoError(t, err)

		response, err := h.Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, aggregate.ID(), response.OrderID)
		assert.Equal(t, "pending_payment", response.Status)
		assert.Equal(t, 1, response.Step)
		assert.Equal(t, 12, response.TotalSteps)
		assert.Equal(t, "Payment Processing", response.Label)
		assert.InDelta(t, 8.33, response.ProgressPercent, 0.01)
		assert.Nil(t, response.Rider)
		require.Len(t, response.History, 1)
		assert.Equal(t, "Order created by customer", response.History[0].Note)
	})

	t.Run("should include the carrying rider", func(t *testing.T) {
		ctx := t.Context()
		store := inmemory.NewStore()
		aggregate := seedOrder(t, store)

		location, err := kernel.NewLocation(0.3136, 32.5811, "Kabalagala")
		require.NoError(t, err)
		carrier, err := rider.NewRider(
			kernel.NewUUID(), "John", "john@rider.ug", "+256", location, "RIDER-ACC-1")
		require.NoError(t, err)
		require.NoError(t, inmemory.NewRiderRepository(store).Add(ctx, carrier))

		require.NoError(t, aggregate.EscrowPayment())
		require.NoError(t, aggregate.NotifyRestaurant("Mama Mia"))
		require.NoError(t, aggregate.ConfirmRestaurant())
		require.NoError(t, aggregate.AssignRider(carrier.ID(), time.Now().Add(5*time.Minute), "John"))
		require.NoError(t, inmemory.NewOrderRepository(store).Update(ctx, aggregate))

		h := queries.NewGetOrderJourneyQueryHandler(
			inmemory.NewOrderRepository(store), inmemory.NewRiderRepository(store))
		query, err := queries.NewGetOrderJourneyQuery(aggregate.ID())
		require.NoError(t, err)

		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "rider_assigned", response.Status)
		assert.Equal(t, 6, response.Step)
		assert.InDelta(t, 50.0, response.ProgressPercent, 0.01)
		require.NotNil(t, response.Rider)
		assert.Equal(t, "John", response.Rider.Name)
		equal, err := response.Rider.Location.IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
		assert.Equal(t, "Assigned to rider John", response.History[len(response.History)-1].Note)
	})

	t.Run("should project a cancelled order onto step zero", func(t *testing.T) {
		ctx := t.Context()
		store := inmemory.NewStore()
		aggregate := seedOrder(t, store)

		require.NoError(t, aggregate.Cancel("Customer changed their mind"))
		require.NoError(t, inmemory.NewOrderRepository(store).Update(ctx, aggregate))

		h := queries.NewGetOrderJourneyQueryHandler(
			inmemory.NewOrderRepository(store), inmemory.NewRiderRepository(store))
		query, err := queries.NewGetOrderJourneyQuery(aggregate.ID())
		require.NoError(t, err)

		response, err := h.Handle(ctx, query)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", response.Status)
		assert.Equal(t, 0, response.Step)
		assert.Zero(t, response.ProgressPercent)
	})

	t.Run("should fail for unknown order", func(t *testing.T) {
		store := inmemory.NewStore()

		h := queries.NewGetOrderJourneyQueryHandler(
			inmemory.NewOrderRepository(store), inmemory.NewRiderRepository(store))
		query, err := queries.NewGetOrderJourneyQuery(kernel.NewUUID())
		require.NoError(t, err)

		_, err = h.Handle(t.Context(), query)

		assert.Error(t, err)
	})
}
