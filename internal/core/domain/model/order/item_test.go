package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid values", func(t *testing.T) {
		item, err := NewItem("Chicken Luwombo", 2, 25000)

		require.NoError(t, err)
		assert.Equal(t, "Chicken Luwombo", item.Name())
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(25000), item.Price())
		assert.NoError(t, item.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := NewItem("", 1, 1000)

		assert.ErrorIs(t, err, ErrItemNameIsRequired)
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		_, err := NewItem("Chapati", 0, 1000)
		assert.ErrorIs(t, err, ErrItemQuantityIsInvalid)

		_, err = NewItem("Chapati", -1, 1000)
		assert.ErrorIs(t, err, ErrItemQuantityIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := NewItem("Chapati", 1, -500)

		assert.ErrorIs(t, err, ErrItemPriceIsInvalid)
	})

	t.Run("should reject uninitialized item", func(t *testing.T) {
		var item Item

		assert.ErrorIs(t, item.Validate(), ErrItemIsNotConstructed)
	})
}

func TestItem_Subtotal(t *testing.T) {
	t.Run("should multiply price by quantity", func(t *testing.T) {
		item, err := NewItem("Rolex", 3, 4000)

		require.NoError(t, err)
		assert.Equal(t, int64(12000), item.Subtotal())
	})

	t.Run("should allow zero price items", func(t *testing.T) {
		item, err := NewItem("Complimentary water", 2, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(0), item.Subtotal())
	})
}
