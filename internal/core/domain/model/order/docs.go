// Package order provides domain entities and business logic for the order
// workflow in the delivery marketplace. It implements the Order aggregate
// root with its 12-step lifecycle and append-only status history.
//
// The package includes:
//   - Order: The aggregate root holding items, money amounts, rider assignment and history
//   - Status: A state machine over thirteen statuses, from PendingPayment to Delivered or Cancelled
//   - PaymentStatus: The escrow release progression mirrored on the order
//   - Item: An immutable line item with name, quantity and unit price
//   - StatusChange: A timestamped, annotated history entry
//
// Key business rules:
//   - Every transition requires an exact current status and fails atomically otherwise
//   - The total amount is fixed at creation: item subtotals plus delivery fee
//   - A rider assignment carries an acceptance deadline; late acceptance is rejected
//   - Delivered and Cancelled are terminal, no transition leaves them
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
