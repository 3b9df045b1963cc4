package rider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadmesh/internal/core/domain/model/kernel"
)

func testLocation(t *testing.T) kernel.Location {
	t.Helper()

	location, err := kernel.NewLocation(0.3136, 32.5811, "Kabalagala, Kampala")
	require.NoError(t, err)
	return location
}

func testRider(t *testing.T) *Rider {
	t.Helper()

	r, err := NewRider(kernel.NewUUID(), "John", "john@rider.ug", "+256700000001",
		testLocation(t), "RIDER-ACC-1")
	require.NoError(t, err)
	return r
}

func TestNewRider(t *testing.T) {
	t.Run("should create available rider with default rating", func(t *testing.T) {
		r := testRider(t)

		assert.NoError(t, r.Validate())
		assert.Equal(t, "John", r.Name())
		assert.True(t, r.IsAvailable())
		assert.Equal(t, 5.0, r.Rating())
		assert.Equal(t, 0, r.TotalDeliveries())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := NewRider(kernel.NewUUID(), "", "a@b.ug", "+256", testLocation(t), "ACC")

		assert.ErrorIs(t, err, ErrRiderNameIsRequired)
	})

	t.Run("should reject empty bank account", func(t *testing.T) {
		_, err := NewRider(kernel.NewUUID(), "John", "a@b.ug", "+256", testLocation(t), "")

		assert.ErrorIs(t, err, ErrRiderBankAccountIsRequired)
	})

	t.Run("should reject invalid location", func(t *testing.T) {
		_, err := NewRider(kernel.NewUUID(), "John", "a@b.ug", "+256", kernel.Location{}, "ACC")

		assert.Error(t, err)
	})

	t.Run("should reject rider created without constructor", func(t *testing.T) {
		var r Rider

		assert.ErrorIs(t, r.Validate(), ErrRiderIsNotConstructed)
	})
}

func TestRider_Availability(t *testing.T) {
	t.Run("should flip availability through mark busy and mark available", func(t *testing.T) {
		r := testRider(t)

		require.NoError(t, r.MarkBusy())
		assert.False(t, r.IsAvailable())

		r.MarkAvailable()
		assert.True(t, r.IsAvailable())
	})

	t.Run("should reject marking a busy rider busy again", func(t *testing.T) {
		r := testRider(t)
		require.NoError(t, r.MarkBusy())

		assert.ErrorIs(t, r.MarkBusy(), ErrRiderIsNotAvailable)
	})
}

func TestRider_CompleteDelivery(t *testing.T) {
	t.Run("should increment counter and free the rider", func(t *testing.T) {
		r := testRider(t)
		require.NoError(t, r.MarkBusy())

		r.CompleteDelivery()
		r.CompleteDelivery()

		assert.Equal(t, 2, r.TotalDeliveries())
		assert.True(t, r.IsAvailable())
	})
}

func TestRider_MoveTo(t *testing.T) {
	t.Run("should update current location", func(t *testing.T) {
		r := testRider(t)
		destination, err := kernel.NewLocation(0.3476, 32.5825, "Restaurant gate")
		require.NoError(t, err)

		require.NoError(t, r.MoveTo(destination))

		equal, err := r.CurrentLocation().IsEqual(destination)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should reject invalid location", func(t *testing.T) {
		r := testRider(t)

		assert.Error(t, r.MoveTo(kernel.Location{}))
	})
}

func TestRestoreRider(t *testing.T) {
	t.Run("should restore availability rating and deliveries", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := RestoreRider(id, "Grace", "grace@rider.ug", "+256700000002",
			testLocation(t), "RIDER-ACC-2", false, 4.5, 120)

		require.NoError(t, err)
		assert.Equal(t, id, r.ID())
		assert.False(t, r.IsAvailable())
		assert.Equal(t, 4.5, r.Rating())
		assert.Equal(t, 120, r.TotalDeliveries())
	})

	t.Run("should reject rating outside the scale", func(t *testing.T) {
		_, err := RestoreRider(kernel.NewUUID(), "Grace", "", "",
			testLocation(t), "ACC", true, 0.5, 0)
		assert.Error(t, err)

		_, err = RestoreRider(kernel.NewUUID(), "Grace", "", "",
			testLocation(t), "ACC", true, 5.5, 0)
		assert.Error(t, err)
	})

	t.Run("should reject negative delivery counter", func(t *testing.T) {
		_, err := RestoreRider(kernel.NewUUID(), "Grace", "", "",
			testLocation(t), "ACC", true, 5.0, -1)

		assert.Error(t, err)
	})
}
