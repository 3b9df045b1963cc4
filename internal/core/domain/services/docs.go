// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the delivery marketplace. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - DispatchQueue: A FIFO queue of riders waiting for order assignments
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
