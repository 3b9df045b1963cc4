package kernel_test

import (
	"math"
	"testing"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create location with valid coordinates", func(t *testing.T) {
		loc, err := kernel.NewLocation(0.3476, 32.5825, "123 Main St, Kampala")

		require.NoError(t, err)
		assert.NoError(t, loc.Validate())
		assert.InDelta(t, 0.3476, loc.Latitude(), 1e-9)
		assert.InDelta(t, 32.5825, loc.Longitude(), 1e-9)
		assert.Equal(t, "123 Main St, Kampala", loc.Address())
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := []struct {
			lat float64
			lng float64
		}{
			{-90, -180},
			{90, 180},
			{0, 0},
		}

		for _, b := range boundaries {
			_, err := kernel.NewLocation(b.lat, b.lng, "")
			require.NoError(t, err)
		}
	})

	t.Run("should reject latitude out of range", func(t *testing.T) {
		for _, lat := range []float64{-90.001, 91, 1000} {
			_, err := kernel.NewLocation(lat, 0, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should reject longitude out of range", func(t *testing.T) {
		for _, lng := range []float64{-180.001, 181, 720} {
			_, err := kernel.NewLocation(0, lng, "")

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should aggregate errors for both invalid coordinates", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("zero value should be invalid", func(t *testing.T) {
		var loc kernel.Location

		require.Error(t, loc.Validate())
	})

	t.Run("constructed location should be valid", func(t *testing.T) {
		loc, err := kernel.NewLocation(0.3450, 32.5800, "Central Kampala")

		require.NoError(t, err)
		require.NoError(t, loc.Validate())
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("should be equal for same coordinates regardless of address", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(0.3476, 32.5825, "123 Main St")
		loc2, _ := kernel.NewLocation(0.3476, 32.5825, "same place, other name")

		equal, err := loc1.IsEqual(loc2)

		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should not be equal for different coordinates", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(0.3476, 32.5825, "")
		loc2, _ := kernel.NewLocation(0.3426, 32.5775, "")

		equal, err := loc1.IsEqual(loc2)

		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail for unconstructed location", func(t *testing.T) {
		loc, _ := kernel.NewLocation(0.3476, 32.5825, "")
		var zero kernel.Location

		_, err := loc.IsEqual(zero)

		require.Error(t, err)
	})
}

func TestLocation_DistanceTo(t *testing.T) {
	t.Run("should be zero for identical coordinates", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(0.3476, 32.5825, "a")
		loc2, _ := kernel.NewLocation(0.3476, 32.5825, "b")

		distance, err := loc1.DistanceTo(loc2)

		require.NoError(t, err)
		assert.Zero(t, distance)
	})

	t.Run("should be symmetric", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(0.3476, 32.5825, "")
		loc2, _ := kernel.NewLocation(0.3426, 32.5775, "")

		d1, err := loc1.DistanceTo(loc2)
		require.NoError(t, err)
		d2, err := loc2.DistanceTo(loc1)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("should return a few hundred meters across central Kampala", func(t *testing.T) {
		customer, _ := kernel.NewLocation(0.3476, 32.5825, "123 Main St, Kampala")
		restaurant, _ := kernel.NewLocation(0.3426, 32.5775, "45 Restaurant Row, Kampala")

		distance, err := customer.DistanceTo(restaurant)

		require.NoError(t, err)
		assert.Greater(t, distance, 100.0)
		assert.Less(t, distance, 2000.0)
	})

	t.Run("should match a known long distance", func(t *testing.T) {
		// New York to Los Angeles is roughly 3944 km.
		nyc, _ := kernel.NewLocation(40.7128, -74.0060, "New York")
		la, _ := kernel.NewLocation(34.0522, -118.2437, "Los Angeles")

		distance, err := nyc.DistanceTo(la)

		require.NoError(t, err)
		assert.InDelta(t, 3944000, distance, 50000)
	})

	t.Run("should fail for unconstructed location", func(t *testing.T) {
		loc, _ := kernel.NewLocation(0.3476, 32.5825, "")
		var zero kernel.Location

		_, err := loc.DistanceTo(zero)

		require.Error(t, err)
	})

	t.Run("should never be negative", func(t *testing.T) {
		loc1, _ := kernel.NewLocation(-45.0, -170.0, "")
		loc2, _ := kernel.NewLocation(45.0, 170.0, "")

		distance, err := loc1.DistanceTo(loc2)

		require.NoError(t, err)
		assert.False(t, math.Signbit(distance))
	})
}
