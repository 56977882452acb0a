package queries

import (
	"errors"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/guard"
)

var ErrGetStateStatusesQueryIsNotConstructed = errors.New(
	"GetStateStatusesQuery must be created via NewGetStateStatusesQuery constructor",
)

// GetStateStatusesQuery lists the statuses registered for a lifecycle state.
type GetStateStatusesQuery struct {
	state order.State

	guard guard.ConstructorGuard
}

func NewGetStateStatusesQuery(state order.State) (GetStateStatusesQuery, error) {
	if err := state.Validate(); err != nil {
		return GetStateStatusesQuery{}, err
	}

	return GetStateStatusesQuery{
		state: state,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetStateStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetStateStatusesQueryIsNotConstructed)
}

func (q GetStateStatusesQuery) State() order.State {
	return q.state
}

type GetStateStatusesQueryResponse struct {
	Status    order.Status
	Label     string
	IsDefault bool
}
