package commands

import (
	"errors"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/model/statusreg"
	"orderintegrity/internal/pkg/guard"
)

var ErrAssignStatusCommandIsNotConstructed = errors.New(
	"AssignStatusCommand must be created via NewAssignStatusCommand constructor",
)

// AssignStatusCommand registers a status for a lifecycle state. When isDefault is set the
// status becomes the state's default and the previous default is demoted.
//
// Example:
//
//	cmd, err := NewAssignStatusCommand("complete", order.StateComplete, true, "Complete")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignStatusCommand struct {
	assignment statusreg.Assignment
	label      statusreg.Label

	guard guard.ConstructorGuard
}

// NewAssignStatusCommand validates the assignment. An empty label falls back to the status code.
func NewAssignStatusCommand(
	status order.Status,
	state order.State,
	isDefault bool,
	label string,
) (AssignStatusCommand, error) {
	assignment, assignmentErr := statusreg.NewAssignment(status, state, isDefault)
	lbl, labelErr := statusreg.NewLabel(status, label)
	if err := errors.Join(assignmentErr, labelErr); err != nil {
		return AssignStatusCommand{}, err
	}

	return AssignStatusCommand{
		assignment: assignment,
		label:      lbl,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignStatusCommand) Validate() error {
	return c.guard.Validate(ErrAssignStatusCommandIsNotConstructed)
}

func (c AssignStatusCommand) Assignment() statusreg.Assignment {
	return c.assignment
}

func (c AssignStatusCommand) Label() statusreg.Label {
	return c.label
}
