package commands

import (
	"errors"

	"quadmesh/internal/pkg/guard"
)

var ErrReassignExpiredCommandIsNotConstructed = errors.New(
	"ReassignExpiredCommand must be created via NewReassignExpiredCommand constructor",
)

// ReassignExpiredCommand triggers a sweep over assigned orders whose rider
// acceptance deadline has passed. Each expired assignment is released and the
// order offered to the next rider in the queue.
//
// This is a parameterless command, typically fired from a background job.
type ReassignExpiredCommand struct {
	guard guard.ConstructorGuard
}

// NewReassignExpiredCommand creates a command to sweep expired assignments.
func NewReassignExpiredCommand() ReassignExpiredCommand {
	return ReassignExpiredCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReassignExpiredCommand) Validate() error {
	return c.guard.Validate(ErrReassignExpiredCommandIsNotConstructed)
}
