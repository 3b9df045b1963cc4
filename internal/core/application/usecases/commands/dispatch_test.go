package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadmesh/internal/adapters/out/inmemory"
	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/core/domain/model/order"
	"quadmesh/internal/core/domain/model/rider"
	"quadmesh/internal/core/domain/services"
	"quadmesh/internal/core/ports"
)

type failingOrderRepository struct {
	ports.OrderRepository
	updateErr error
}

func (r failingOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	return r.OrderRepository.Update(ctx, aggregate)
}

type stubTxManager struct{ commitErr error }

func (m stubTxManager) Begin(context.Context) error    { return nil }
func (m stubTxManager) Commit(context.Context) error   { return m.commitErr }
func (m stubTxManager) Rollback(context.Context) error { return nil }

func seekingOrder(t *testing.T, store *inmemory.Store) *order.Order {
	t.Helper()

	item, err := order.NewItem("Pizza Margherita", 1, 35000)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item}, 5000)
	require.NoError(t, err)
	require.NoError(t, aggregate.EscrowPayment())
	require.NoError(t, aggregate.NotifyRestaurant("Mama Mia"))
	require.NoError(t, aggregate.ConfirmRestaurant())

	require.NoError(t, inmemory.NewOrderRepository(store).Add(t.Context(), aggregate))
	return aggregate
}

func queuedRider(t *testing.T, store *inmemory.Store, queue *services.DispatchQueue) *rider.Rider {
	t.Helper()

	location, err := kernel.NewLocation(0.3476, 32.5825, "Kampala Road")
	require.NoError(t, err)

	aggregate, err := rider.NewRider(
		kernel.NewUUID(), "Grace", "grace@rider.ug", "+256700000002", location, "MM-0001")
	require.NoError(t, err)

	require.NoError(t, inmemory.NewRiderRepository(store).Add(t.Context(), aggregate))
	require.NoError(t, queue.Enqueue(aggregate.ID()))
	return aggregate
}

func TestAssignNextRider(t *testing.T) {
	t.Run("should bind the dequeued rider and report its id", func(t *testing.T) {
		store := inmemory.NewStore()
		queue := services.NewDispatchQueue()
		carrier := queuedRider(t, store, queue)
		aggregate := seekingOrder(t, store)

		assignedID, err := assignNextRider(t.Context(),
			inmemory.NewOrderRepository(store), inmemory.NewRiderRepository(store),
			queue, aggregate, time.Minute)

		require.NoError(t, err)
		require.NotNil(t, assignedID)
		assert.True(t, assignedID.IsEqual(carrier.ID()))
		assert.Equal(t, 0, queue.Len())
	})

	t.Run("should return the rider to the head of the queue when persisting fails", func(t *testing.T) {
		store := inmemory.NewStore()
		queue := services.NewDispatchQueue()
		carrier := queuedRider(t, store, queue)
		aggregate := seekingOrder(t, store)
		orderRepo := failingOrderRepository{
			OrderRepository: inmemory.NewOrderRepository(store),
			updateErr:       errors.New("storage unavailable"),
		}

		assignedID, err := assignNextRider(t.Context(),
			orderRepo, inmemory.NewRiderRepository(store), queue, aggregate, time.Minute)

		require.Error(t, err)
		assert.Nil(t, assignedID)
		require.Equal(t, 1, queue.Len())
		assert.True(t, queue.Snapshot()[0].IsEqual(carrier.ID()))
	})

	t.Run("should report no rider on an empty queue", func(t *testing.T) {
		store := inmemory.NewStore()
		aggregate := seekingOrder(t, store)

		assignedID, err := assignNextRider(t.Context(),
			inmemory.NewOrderRepository(store), inmemory.NewRiderRepository(store),
			services.NewDispatchQueue(), aggregate, time.Minute)

		require.NoError(t, err)
		assert.Nil(t, assignedID)
	})
}

func TestCommitDispatch(t *testing.T) {
	t.Run("should return the rider to the head of the queue when the commit fails", func(t *testing.T) {
		queue := services.NewDispatchQueue()
		riderID := kernel.NewUUID()

		err := commitDispatch(t.Context(), stubTxManager{commitErr: errors.New("commit failed")},
			queue, &riderID)

		require.Error(t, err)
		require.Equal(t, 1, queue.Len())
		assert.True(t, queue.Snapshot()[0].IsEqual(riderID))
	})

	t.Run("should leave the queue alone when nothing was dequeued", func(t *testing.T) {
		queue := services.NewDispatchQueue()

		err := commitDispatch(t.Context(), stubTxManager{commitErr: errors.New("commit failed")},
			queue, nil)

		require.Error(t, err)
		assert.Equal(t, 0, queue.Len())
	})

	t.Run("should not touch the queue on a successful commit", func(t *testing.T) {
		queue := services.NewDispatchQueue()
		riderID := kernel.NewUUID()

		err := commitDispatch(t.Context(), stubTxManager{}, queue, &riderID)

		require.NoError(t, err)
		assert.Equal(t, 0, queue.Len())
	})
}
