package ports

import (
	"context"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/model/statusreg"
)

// AssignmentRegistry answers how many assignment records link a status to a state.
// More than one record means the registry is corrupt; callers decide how to treat it.
type AssignmentRegistry interface {
	CountAssignments(ctx context.Context, status order.Status, state order.State) (int64, error)
}

// StateDefaultStatusLookup returns the configured default status of a lifecycle state.
type StateDefaultStatusLookup interface {
	DefaultStatus(ctx context.Context, state order.State) (order.Status, error)
}

// StatusRegistry is the full registry contract used by administration commands.
type StatusRegistry interface {
	AssignmentRegistry
	StateDefaultStatusLookup

	// SaveLabel creates or renames a status.
	SaveLabel(ctx context.Context, label statusreg.Label) error

	// Assign registers a status for a state. When the assignment is a default,
	// any previous default of that state is demoted.
	Assign(ctx context.Context, assignment statusreg.Assignment) error

	// Unassign removes a (status, state) assignment.
	// Returns errs.ObjectNotFoundError when the pair is not registered.
	Unassign(ctx context.Context, status order.Status, state order.State) error

	// ListByState returns the assignments of a state ordered by status code.
	ListByState(ctx context.Context, state order.State) ([]statusreg.Assignment, error)
}
