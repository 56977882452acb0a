package order

import (
	"errors"
	"fmt"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoPendingStateStatus is returned by CommitPending when nothing was staged.
	ErrNoPendingStateStatus = errors.New("order has no pending state/status to commit")
)

// Order is the aggregate root persisted by the order save pipeline.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Base grand total is never negative
//   - A non-empty state is one of the known lifecycle states
//   - A non-empty status is a well-formed status code
//   - Pending state and status are staged and committed together, never one alone
//
// A brand-new order has an empty state and status until the host assigns its first pair.
type Order struct {
	id kernel.UUID

	state  State
	status Status

	baseGrandTotal kernel.Amount

	// totalRefunded is nil while nothing has been refunded.
	totalRefunded *kernel.Amount

	capabilities Capabilities

	// pending pair staged by the pre-save hook, written by CommitPending
	pendingState  State
	pendingStatus Status
	hasPending    bool

	isConstructed bool
}

// NewOrder creates a new order with no state or status yet.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustAmount("49.90"))
//	if err != nil {
//	    return err
//	}
//	err = o.ChangeState(order.StateNew, "pending")
func NewOrder(id kernel.UUID, baseGrandTotal kernel.Amount) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setBaseGrandTotal(baseGrandTotal),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence or from a host snapshot.
// Empty state and status are accepted; anything else must be well formed.
func RestoreOrder(
	id kernel.UUID,
	state State,
	status Status,
	baseGrandTotal kernel.Amount,
	totalRefunded *kernel.Amount,
	capabilities Capabilities,
) (*Order, error) {
	o := &Order{
		capabilities:  capabilities,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setState(state),
		o.setStatus(status),
		o.setBaseGrandTotal(baseGrandTotal),
	); err != nil {
		return nil, err
	}
	o.totalRefunded = totalRefunded

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) State() State {
	return o.state
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) BaseGrandTotal() kernel.Amount {
	return o.baseGrandTotal
}

// TotalRefunded returns the refunded total, zero when nothing has been refunded.
func (o *Order) TotalRefunded() kernel.Amount {
	if o.totalRefunded == nil {
		return kernel.ZeroAmount()
	}
	return *o.totalRefunded
}

// TotalRefundedOrNil distinguishes "never refunded" from an explicit zero for persistence.
func (o *Order) TotalRefundedOrNil() *kernel.Amount {
	if o.totalRefunded == nil {
		return nil
	}
	refunded := *o.totalRefunded
	return &refunded
}

func (o *Order) Capabilities() Capabilities {
	return o.capabilities
}

func (o *Order) IsCanceled() bool {
	return o.capabilities.Canceled
}

func (o *Order) CanUnhold() bool {
	return o.capabilities.CanUnhold
}

func (o *Order) CanInvoice() bool {
	return o.capabilities.CanInvoice
}

func (o *Order) CanShip() bool {
	return o.capabilities.CanShip
}

func (o *Order) CanCreditmemo() bool {
	return o.capabilities.CanCreditmemo
}

func (o *Order) IsInProcess() bool {
	return o.capabilities.InProcess
}

func (o *Order) HasForcedCanCreditmemo() bool {
	return o.capabilities.ForcedCanCreditmemo
}

// ChangeState sets the current state and status as the host would before saving.
// Both must be non-empty; the registry check happens at save time, not here.
func (o *Order) ChangeState(state State, status Status) error {
	if state.IsEmpty() {
		return errs.NewValueIsRequiredError("state")
	}
	if status.IsEmpty() {
		return errs.NewValueIsRequiredError("status")
	}
	if err := errors.Join(state.Validate(), status.Validate()); err != nil {
		return err
	}

	o.state = state
	o.status = status
	return nil
}

// UpdateFinancials replaces the totals. A nil totalRefunded means nothing was refunded.
func (o *Order) UpdateFinancials(baseGrandTotal kernel.Amount, totalRefunded *kernel.Amount) error {
	if err := o.setBaseGrandTotal(baseGrandTotal); err != nil {
		return err
	}
	o.totalRefunded = totalRefunded
	return nil
}

func (o *Order) UpdateCapabilities(capabilities Capabilities) {
	o.capabilities = capabilities
}

// StagePending records the state/status the save pipeline must write. It is called by
// the pre-save hook; the order's current pair is left untouched until CommitPending.
func (o *Order) StagePending(state State, status Status) {
	o.pendingState = state
	o.pendingStatus = status
	o.hasPending = true
}

func (o *Order) PendingState() State {
	return o.pendingState
}

func (o *Order) PendingStatus() Status {
	return o.pendingStatus
}

func (o *Order) HasPending() bool {
	return o.hasPending
}

// CommitPending moves the staged pair into the current state/status and clears the stage.
// It is the save pipeline's half of the hook contract and runs only after all hooks passed.
func (o *Order) CommitPending() error {
	if !o.hasPending {
		return ErrNoPendingStateStatus
	}

	state, status := o.pendingState, o.pendingStatus
	if err := errors.Join(o.setState(state), o.setStatus(status)); err != nil {
		return err
	}

	o.pendingState = ""
	o.pendingStatus = ""
	o.hasPending = false
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setState(state State) error {
	if !state.IsEmpty() {
		if err := state.Validate(); err != nil {
			return err
		}
	}
	o.state = state
	return nil
}

func (o *Order) setStatus(status Status) error {
	if !status.IsEmpty() {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	o.status = status
	return nil
}

func (o *Order) setBaseGrandTotal(total kernel.Amount) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"base grand total is invalid",
			fmt.Errorf("%s is negative", total),
		)
	}
	o.baseGrandTotal = total
	return nil
}
