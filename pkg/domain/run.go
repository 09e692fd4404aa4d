package domain

import "github.com/google/uuid"

// RunID identifies a single invocation in the logs.
type RunID uuid.UUID

// NewRunID returns a fresh random RunID.
func NewRunID() RunID {
	return RunID(uuid.New())
}

func (id RunID) String() string {
	return uuid.UUID(id).String()
}

// Run is one parsed pair of measurements.
type Run struct {
	// Distance covered.
	Distance Distance
	// Duration needed to cover Distance.
	Duration Duration
}
