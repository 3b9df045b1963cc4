package kernel

import (
	"errors"
	"fmt"
	"math"

	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

// Geographic bounds for location coordinates in decimal degrees.
const (
	// LocationMinLatitude is the minimum valid latitude.
	LocationMinLatitude = -90.0
	// LocationMaxLatitude is the maximum valid latitude.
	LocationMaxLatitude = 90.0
	// LocationMinLongitude is the minimum valid longitude.
	LocationMinLongitude = -180.0
	// LocationMaxLongitude is the maximum valid longitude.
	LocationMaxLongitude = 180.0

	// earthRadiusMeters is the mean Earth radius used by the Haversine formula.
	earthRadiusMeters = 6371000.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via the NewLocation
// constructor to ensure coordinates were validated.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is an immutable value object representing a geographic point with
// a free-text address. Latitude and longitude are decimal degrees and are
// validated against the standard WGS84 ranges at construction time.
//
// The zero value of Location is invalid and will fail validation - use the
// constructor to create instances.
//
// Example:
//
//	loc, err := kernel.NewLocation(0.3476, 32.5825, "123 Main St, Kampala")
//	if err != nil {
//	    // Handle validation error
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewLocation creates a new Location with the specified coordinates and
// address. Latitude must be within [-90, 90] and longitude within [-180, 180];
// the address is free text and may be empty. Returns an aggregated validation
// error if either coordinate is out of bounds.
func NewLocation(latitude, longitude float64, address string) (Location, error) {
	loc := Location{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using the
// constructor. The zero value of Location is invalid and fails this check.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Address returns the free-text address of the location.
func (l Location) Address() string {
	return l.address
}

// String returns a human-readable representation of the Location.
// This method implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%.4f,%.4f %q)", l.latitude, l.longitude, l.address)
}

// IsEqual compares two locations for coordinate equality. The address is not
// part of the comparison: two records pointing at the same coordinates are the
// same place. Both locations must be properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// DistanceTo calculates the great-circle distance in meters between two
// locations using the Haversine formula. The distance is symmetric and zero
// exactly when both coordinates are equal. Both locations must be properly
// constructed for the calculation to succeed.
func (l Location) DistanceTo(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	lat1 := degreesToRadians(l.latitude)
	lat2 := degreesToRadians(other.latitude)
	dLat := degreesToRadians(other.latitude - l.latitude)
	dLng := degreesToRadians(other.longitude - l.longitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c, nil
}

// setLatitude sets the latitude with range validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers to enable self-encapsulated validation during construction.
func (l *Location) setLatitude(latitude float64) error {
	if latitude < LocationMinLatitude || latitude > LocationMaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LocationMinLatitude, LocationMaxLatitude)
	}

	l.latitude = latitude
	return nil
}

// setLongitude sets the longitude with range validation.
// Note: We intentionally use a pointer receiver here while other methods use
// value receivers to enable self-encapsulated validation during construction.
func (l *Location) setLongitude(longitude float64) error {
	if longitude < LocationMinLongitude || longitude > LocationMaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LocationMinLongitude, LocationMaxLongitude)
	}

	l.longitude = longitude
	return nil
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
