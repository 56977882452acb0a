package commands

import (
	"errors"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/errs"
	"orderintegrity/internal/pkg/guard"
)

var ErrUnassignStatusCommandIsNotConstructed = errors.New(
	"UnassignStatusCommand must be created via NewUnassignStatusCommand constructor",
)

// UnassignStatusCommand removes a status from a lifecycle state.
type UnassignStatusCommand struct {
	status order.Status
	state  order.State

	guard guard.ConstructorGuard
}

func NewUnassignStatusCommand(status order.Status, state order.State) (UnassignStatusCommand, error) {
	if status.IsEmpty() {
		return UnassignStatusCommand{}, errs.NewValueIsRequiredError("status")
	}
	if state.IsEmpty() {
		return UnassignStatusCommand{}, errs.NewValueIsRequiredError("state")
	}
	if err := errors.Join(status.Validate(), state.Validate()); err != nil {
		return UnassignStatusCommand{}, err
	}

	return UnassignStatusCommand{
		status: status,
		state:  state,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UnassignStatusCommand) Validate() error {
	return c.guard.Validate(ErrUnassignStatusCommandIsNotConstructed)
}

func (c UnassignStatusCommand) Status() order.Status {
	return c.status
}

func (c UnassignStatusCommand) State() order.State {
	return c.state
}
