package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadmesh/internal/core/domain/model/kernel"
)

func testLocation(t *testing.T) kernel.Location {
	t.Helper()

	location, err := kernel.NewLocation(0.3476, 32.5825, "Kampala Road")
	require.NoError(t, err)
	return location
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create customer with delivery location", func(t *testing.T) {
		id := kernel.NewUUID()
		location := testLocation(t)

		c, err := NewCustomer(id, "Alice", "alice@example.ug", "+256700000010", location)

		require.NoError(t, err)
		assert.NoError(t, c.Validate())
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Alice", c.Name())
		equal, err := c.DeliveryLocation().IsEqual(location)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := NewCustomer(kernel.NewUUID(), "", "alice@example.ug", "+256", testLocation(t))

		assert.ErrorIs(t, err, ErrCustomerNameIsRequired)
	})

	t.Run("should reject empty email", func(t *testing.T) {
		_, err := NewCustomer(kernel.NewUUID(), "Alice", "", "+256", testLocation(t))

		assert.ErrorIs(t, err, ErrCustomerEmailIsRequired)
	})

	t.Run("should reject invalid delivery location", func(t *testing.T) {
		_, err := NewCustomer(kernel.NewUUID(), "Alice", "alice@example.ug", "+256", kernel.Location{})

		assert.Error(t, err)
	})

	t.Run("should reject customer created without constructor", func(t *testing.T) {
		var c Customer

		assert.ErrorIs(t, c.Validate(), ErrCustomerIsNotConstructed)
	})
}

func TestNewRestaurant(t *testing.T) {
	t.Run("should create active restaurant", func(t *testing.T) {
		id := kernel.NewUUID()

		r, err := NewRestaurant(id, "Mama Mia", testLocation(t),
			"orders@mamamia.ug", "+256700000020", "REST-ACC-1")

		require.NoError(t, err)
		assert.NoError(t, r.Validate())
		assert.Equal(t, id, r.ID())
		assert.True(t, r.IsActive())
		assert.Equal(t, "REST-ACC-1", r.BankAccount())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := NewRestaurant(kernel.NewUUID(), "", testLocation(t), "", "", "REST-ACC-1")

		assert.ErrorIs(t, err, ErrRestaurantNameIsRequired)
	})

	t.Run("should reject empty bank account", func(t *testing.T) {
		_, err := NewRestaurant(kernel.NewUUID(), "Mama Mia", testLocation(t), "", "", "")

		assert.ErrorIs(t, err, ErrBankAccountIsRequired)
	})

	t.Run("should reject restaurant created without constructor", func(t *testing.T) {
		var r Restaurant

		assert.ErrorIs(t, r.Validate(), ErrRestaurantIsNotConstructed)
	})
}

func TestRestaurant_Activation(t *testing.T) {
	t.Run("should deactivate and reactivate", func(t *testing.T) {
		r, err := NewRestaurant(kernel.NewUUID(), "Mama Mia", testLocation(t), "", "", "REST-ACC-1")
		require.NoError(t, err)

		r.Deactivate()
		assert.False(t, r.IsActive())

		r.Activate()
		assert.True(t, r.IsActive())
	})
}

func TestRestoreRestaurant(t *testing.T) {
	t.Run("should restore inactive restaurant", func(t *testing.T) {
		r, err := RestoreRestaurant(kernel.NewUUID(), "Mama Mia", testLocation(t),
			"", "", "REST-ACC-1", false)

		require.NoError(t, err)
		assert.False(t, r.IsActive())
	})
}
