// Package party contains the marketplace participants that orders connect:
// customers who place orders and restaurants that fulfill them. Both are
// entities with identity, contact details, a geographic location and a payout
// account reference. Riders, the third participant, live in their own package
// because they carry mutable dispatch state.
package party
