package services

import (
	"context"
	"fmt"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/ports"
)

// Resolution is the state/status pair an order is about to be saved with.
type Resolution struct {
	State  order.State
	Status order.Status

	// Transition is true when the state was recomputed; Status is then the
	// target state's default status.
	Transition bool
}

// StateResolver predicts the state transition the save pipeline applies to an order.
type StateResolver struct {
	lookup ports.StateDefaultStatusLookup
}

func NewStateResolver(lookup ports.StateDefaultStatusLookup) StateResolver {
	return StateResolver{lookup: lookup}
}

// Resolve returns the recomputed state with that state's default status, or the order's
// existing pair when no transition applies. The only failure is the default status lookup.
func (r StateResolver) Resolve(ctx context.Context, o OrderSnapshot) (Resolution, error) {
	target, ok := TargetState(o)
	if !ok {
		return Resolution{State: o.State(), Status: o.Status()}, nil
	}

	status, err := r.lookup.DefaultStatus(ctx, target)
	if err != nil {
		return Resolution{}, fmt.Errorf("default status of state %q: %w", target, err)
	}

	return Resolution{State: target, Status: status, Transition: true}, nil
}

// TargetState computes the state an order must move to, if any. Conditions are
// evaluated in this order:
//
//  1. Fulfillment exhausted (not canceled, cannot unhold, invoice or ship):
//     a. zero base grand total, or still eligible for a credit memo -> complete
//     b. otherwise, refunded total > 0, or nothing refunded with a forced credit
//     memo override -> closed
//     Neither applies when the order is already in the target state.
//  2. State new with the in-process flag -> processing. This overwrites the result
//     of step 1; both can fire together and the later rule wins.
//
// The function is pure: same snapshot, same answer.
func TargetState(o OrderSnapshot) (order.State, bool) {
	var target order.State

	if !o.IsCanceled() && !o.CanUnhold() && !o.CanInvoice() && !o.CanShip() {
		refunded := o.TotalRefunded()

		if o.BaseGrandTotal().IsZero() || o.CanCreditmemo() {
			if o.State() != order.StateComplete {
				target = order.StateComplete
			}
		} else if refunded.IsPositive() || (refunded.IsZero() && o.HasForcedCanCreditmemo()) {
			if o.State() != order.StateClosed {
				target = order.StateClosed
			}
		}
	}

	if o.State() == order.StateNew && o.IsInProcess() {
		target = order.StateProcessing
	}

	return target, !target.IsEmpty()
}
