package order

import "time"

// StatusChange is one append-only entry in an order's status history.
// Every transition appends exactly one entry, so the recorded statuses always
// form a subsequence of the canonical lifecycle ordering.
type StatusChange struct {
	status     Status
	occurredAt time.Time
	note       string
}

// NewStatusChange reconstructs a history entry, typically from persistence.
func NewStatusChange(status Status, occurredAt time.Time, note string) StatusChange {
	return StatusChange{status: status, occurredAt: occurredAt, note: note}
}

// Status returns the status the order entered.
func (c StatusChange) Status() Status {
	return c.status
}

// OccurredAt returns when the transition happened.
func (c StatusChange) OccurredAt() time.Time {
	return c.occurredAt
}

// Note returns the free-text annotation recorded with the transition.
func (c StatusChange) Note() string {
	return c.note
}
