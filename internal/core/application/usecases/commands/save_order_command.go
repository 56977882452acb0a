package commands

import (
	"errors"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/errs"
	"orderintegrity/internal/pkg/guard"
)

var ErrSaveOrderCommandIsNotConstructed = errors.New(
	"SaveOrderCommand must be created via NewSaveOrderCommand constructor",
)

// SaveOrderCommand carries a complete order snapshot to be written through the order
// save pipeline, including the capability flags the host computed for it.
//
// Example:
//
//	refunded := kernel.MustAmount("25")
//	cmd, err := NewSaveOrderCommand(orderID, order.StateComplete, "complete",
//	    kernel.MustAmount("25"), &refunded, order.Capabilities{})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	// result.State == order.StateClosed: the refund closes the order
type SaveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	state          order.State
	status         order.Status
	baseGrandTotal kernel.Amount
	totalRefunded  *kernel.Amount
	capabilities   order.Capabilities

	guard guard.ConstructorGuard
}

// NewSaveOrderCommand validates the snapshot. State and status may be empty
// (an order that has none yet); otherwise each must be well formed.
func NewSaveOrderCommand(
	orderID kernel.UUID,
	state order.State,
	status order.Status,
	baseGrandTotal kernel.Amount,
	totalRefunded *kernel.Amount,
	capabilities order.Capabilities,
) (SaveOrderCommand, error) {
	cmd := SaveOrderCommand{
		capabilities: capabilities,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setState(state),
		cmd.setStatus(status),
		cmd.setBaseGrandTotal(baseGrandTotal),
		cmd.setTotalRefunded(totalRefunded),
	); err != nil {
		return SaveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveOrderCommand) Validate() error {
	return c.guard.Validate(ErrSaveOrderCommandIsNotConstructed)
}

func (c SaveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SaveOrderCommand) State() order.State {
	return c.state
}

func (c SaveOrderCommand) Status() order.Status {
	return c.status
}

func (c SaveOrderCommand) BaseGrandTotal() kernel.Amount {
	return c.baseGrandTotal
}

func (c SaveOrderCommand) TotalRefunded() *kernel.Amount {
	return c.totalRefunded
}

func (c SaveOrderCommand) Capabilities() order.Capabilities {
	return c.capabilities
}

func (c *SaveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SaveOrderCommand) setState(state order.State) error {
	if !state.IsEmpty() {
		if err := state.Validate(); err != nil {
			return err
		}
	}
	c.state = state
	return nil
}

func (c *SaveOrderCommand) setStatus(status order.Status) error {
	if !status.IsEmpty() {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	c.status = status
	return nil
}

func (c *SaveOrderCommand) setBaseGrandTotal(total kernel.Amount) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidError("base grand total")
	}
	c.baseGrandTotal = total
	return nil
}

func (c *SaveOrderCommand) setTotalRefunded(refunded *kernel.Amount) error {
	if refunded != nil && refunded.IsNegative() {
		return errs.NewValueIsInvalidError("total refunded")
	}
	c.totalRefunded = refunded
	return nil
}
