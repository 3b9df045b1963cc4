package escrow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadmesh/internal/core/domain/model/kernel"
)

func testAccount(t *testing.T) *Account {
	t.Helper()

	a, err := NewAccount(kernel.NewUUID(), 53000, 5000)
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("should capture both cuts with nothing released", func(t *testing.T) {
		orderID := kernel.NewUUID()

		a, err := NewAccount(orderID, 53000, 5000)

		require.NoError(t, err)
		assert.NoError(t, a.Validate())
		assert.Equal(t, orderID, a.OrderID())
		assert.Equal(t, int64(58000), a.TotalAmount())
		assert.Equal(t, int64(53000), a.RestaurantAmount())
		assert.Equal(t, int64(5000), a.RiderAmount())
		assert.False(t, a.IsRestaurantPaid())
		assert.False(t, a.IsRiderHalfPaid())
		assert.False(t, a.IsRiderFullPaid())
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := NewAccount(kernel.NewUUID(), -1, 5000)
		assert.ErrorIs(t, err, ErrAmountIsInvalid)

		_, err = NewAccount(kernel.NewUUID(), 53000, -1)
		assert.ErrorIs(t, err, ErrAmountIsInvalid)
	})

	t.Run("should reject empty order id", func(t *testing.T) {
		_, err := NewAccount(kernel.UUID{}, 53000, 5000)

		assert.Error(t, err)
	})

	t.Run("should reject account created without constructor", func(t *testing.T) {
		var a Account

		assert.ErrorIs(t, a.Validate(), ErrAccountIsNotConstructed)
	})
}

func TestAccount_PayRestaurant(t *testing.T) {
	t.Run("should release restaurant cut once", func(t *testing.T) {
		a := testAccount(t)

		amount, err := a.PayRestaurant()

		require.NoError(t, err)
		assert.Equal(t, int64(53000), amount)
		assert.True(t, a.IsRestaurantPaid())
	})

	t.Run("should reject repeat release", func(t *testing.T) {
		a := testAccount(t)
		_, err := a.PayRestaurant()
		require.NoError(t, err)

		_, err = a.PayRestaurant()

		assert.ErrorIs(t, err, ErrRestaurantAlreadyPaid)
	})
}

func TestAccount_RiderTranches(t *testing.T) {
	t.Run("should release half on pickup and remainder on delivery", func(t *testing.T) {
		a := testAccount(t)

		half, err := a.PayRiderHalf()
		require.NoError(t, err)
		full, err := a.PayRiderFull()
		require.NoError(t, err)

		assert.Equal(t, int64(2500), half)
		assert.Equal(t, int64(2500), full)
		assert.True(t, a.IsRiderHalfPaid())
		assert.True(t, a.IsRiderFullPaid())
	})

	t.Run("should sum tranches to the full rider cut for odd amounts", func(t *testing.T) {
		a, err := NewAccount(kernel.NewUUID(), 53000, 4999)
		require.NoError(t, err)

		half, err := a.PayRiderHalf()
		require.NoError(t, err)
		full, err := a.PayRiderFull()
		require.NoError(t, err)

		assert.Equal(t, int64(2499), half)
		assert.Equal(t, int64(2500), full)
		assert.Equal(t, a.RiderAmount(), half+full)
	})

	t.Run("should reject delivery tranche before pickup tranche", func(t *testing.T) {
		a := testAccount(t)

		_, err := a.PayRiderFull()

		assert.ErrorIs(t, err, ErrRiderHalfNotPaid)
		assert.False(t, a.IsRiderFullPaid())
	})

	t.Run("should reject repeat tranche releases", func(t *testing.T) {
		a := testAccount(t)
		_, err := a.PayRiderHalf()
		require.NoError(t, err)

		_, err = a.PayRiderHalf()
		assert.ErrorIs(t, err, ErrRiderHalfAlreadyPaid)

		_, err = a.PayRiderFull()
		require.NoError(t, err)
		_, err = a.PayRiderFull()
		assert.ErrorIs(t, err, ErrRiderFullAlreadyPaid)
	})
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should restore released flags", func(t *testing.T) {
		a, err := RestoreAccount(kernel.NewUUID(), 53000, 5000, true, true, false)

		require.NoError(t, err)
		assert.True(t, a.IsRestaurantPaid())
		assert.True(t, a.IsRiderHalfPaid())
		assert.False(t, a.IsRiderFullPaid())
	})

	t.Run("should reject delivery tranche without pickup tranche", func(t *testing.T) {
		_, err := RestoreAccount(kernel.NewUUID(), 53000, 5000, true, false, true)

		assert.ErrorIs(t, err, ErrRiderHalfNotPaid)
	})
}
