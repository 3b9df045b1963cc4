// Package escrow provides the payment ledger for the delivery marketplace.
// When a customer pays, the full order amount is captured into an escrow
// Account and released in three set-once steps: the restaurant cut on
// confirmation, half the rider cut on pickup and the remainder on delivery.
package escrow
