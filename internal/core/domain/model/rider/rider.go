// Package rider contains the Rider aggregate: the courier side of the
// marketplace. A rider carries mutable dispatch state (availability, current
// location) and lifetime statistics (rating, delivery count) that the workflow
// engine updates as orders move through their lifecycle.
package rider

import (
	"errors"

	"quadmesh/internal/core/domain/model/kernel"
	"quadmesh/internal/pkg/errs"
	"quadmesh/internal/pkg/guard"
)

const (
	// defaultRating is the rating every rider starts with.
	defaultRating = 5.0
	// minRating and maxRating bound the rating scale.
	minRating = 1.0
	maxRating = 5.0
)

// Domain errors for rider operations.
var (
	// ErrRiderNameIsRequired is returned when creating a rider without a name.
	ErrRiderNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRiderBankAccountIsRequired is returned when creating a rider without a payout account.
	ErrRiderBankAccountIsRequired = errs.NewValueIsRequiredError("bank account")
	// ErrRiderIsNotConstructed is returned when using an improperly initialized Rider.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")
	// ErrRiderIsNotAvailable is returned when marking a busy rider busy again.
	ErrRiderIsNotAvailable = errors.New("rider is not available")
)

// Rider represents a delivery rider. It is an aggregate root whose state moves
// with the dispatch cycle: available riders wait in the dispatch queue, a
// rider accepting an order becomes busy, and completing a delivery makes the
// rider available again and increments the lifetime delivery counter.
//
// Business rules:
//   - Rider must have a valid UUID, non-empty name, and a payout account
//   - A new rider is available and rated 5.0 with zero deliveries
//   - Availability flips only through MarkBusy/MarkAvailable
//   - The delivery counter only ever increases, via CompleteDelivery
type Rider struct {
	id              kernel.UUID
	name            string
	email           string
	phone           string
	currentLocation kernel.Location
	bankAccount     string
	isAvailable     bool
	rating          float64
	totalDeliveries int
	guard           guard.ConstructorGuard
}

// NewRider creates a new available Rider at the given starting location.
// Name and bank account must be non-empty; the location must be properly
// constructed. Validation errors are aggregated.
func NewRider(
	id kernel.UUID,
	name, email, phone string,
	currentLocation kernel.Location,
	bankAccount string,
) (*Rider, error) {
	r := &Rider{
		email:       email,
		phone:       phone,
		isAvailable: true,
		rating:      defaultRating,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setLocation(currentLocation),
		r.setBankAccount(bankAccount),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRider reconstructs a Rider from persistent storage, preserving
// availability, rating and the lifetime delivery counter.
func RestoreRider(
	id kernel.UUID,
	name, email, phone string,
	currentLocation kernel.Location,
	bankAccount string,
	isAvailable bool,
	rating float64,
	totalDeliveries int,
) (*Rider, error) {
	r, err := NewRider(id, name, email, phone, currentLocation, bankAccount)
	if err != nil {
		return nil, err
	}

	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	if totalDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("total deliveries")
	}

	r.isAvailable = isAvailable
	r.rating = rating
	r.totalDeliveries = totalDeliveries
	return r, nil
}

// Validate checks if the Rider was properly constructed via NewRider.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// Email returns the rider's contact email.
func (r *Rider) Email() string {
	return r.email
}

// Phone returns the rider's contact phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// CurrentLocation returns the rider's last reported location.
func (r *Rider) CurrentLocation() kernel.Location {
	return r.currentLocation
}

// BankAccount returns the payout account reference.
func (r *Rider) BankAccount() string {
	return r.bankAccount
}

// IsAvailable reports whether the rider is eligible for new assignments.
func (r *Rider) IsAvailable() bool {
	return r.isAvailable
}

// Rating returns the rider's current rating on the 1..5 scale.
func (r *Rider) Rating() float64 {
	return r.rating
}

// TotalDeliveries returns the lifetime count of completed deliveries.
func (r *Rider) TotalDeliveries() int {
	return r.totalDeliveries
}

// MarkBusy flags the rider as working on an accepted order.
// Returns ErrRiderIsNotAvailable if the rider is already busy.
func (r *Rider) MarkBusy() error {
	if !r.isAvailable {
		return ErrRiderIsNotAvailable
	}
	r.isAvailable = false
	return nil
}

// MarkAvailable returns the rider to the pool of assignable riders.
// Marking an already available rider is a no-op.
func (r *Rider) MarkAvailable() {
	r.isAvailable = true
}

// MoveTo updates the rider's last reported location.
func (r *Rider) MoveTo(location kernel.Location) error {
	return r.setLocation(location)
}

// CompleteDelivery records a finished delivery: increments the lifetime
// counter and makes the rider available again.
func (r *Rider) CompleteDelivery() {
	r.totalDeliveries++
	r.isAvailable = true
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Rider) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	r.currentLocation = location
	return nil
}

func (r *Rider) setBankAccount(bankAccount string) error {
	if bankAccount == "" {
		return ErrRiderBankAccountIsRequired
	}
	r.bankAccount = bankAccount
	return nil
}
