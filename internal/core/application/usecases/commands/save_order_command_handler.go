package commands

import (
	"context"

	"orderintegrity/internal/core/domain/model/order"
)

// SaveOrderResult is the state/status pair that was actually written.
type SaveOrderResult struct {
	State  order.State
	Status order.Status
}

// SaveOrderCommandHandler writes an order snapshot through the order repository, and
// therefore through every registered pre-save hook. A hook error (for example an
// integrity violation) rolls the whole transaction back.
//
// Example:
//
//	handler := NewSaveOrderCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrIntegrityViolation) {
//	    // nothing was written
//	}
type SaveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSaveOrderCommandHandler creates a handler for order saves.
func NewSaveOrderCommandHandler(uowFactory OrderUoWFactory) SaveOrderCommandHandler {
	return SaveOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle inserts or updates the order depending on whether it is already stored.
func (h SaveOrderCommandHandler) Handle(ctx context.Context, cmd SaveOrderCommand) (SaveOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return SaveOrderResult{}, err
	}

	o, err := order.RestoreOrder(
		cmd.OrderID(),
		cmd.State(),
		cmd.Status(),
		cmd.BaseGrandTotal(),
		cmd.TotalRefunded(),
		cmd.Capabilities(),
	)
	if err != nil {
		return SaveOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SaveOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	exists, err := orderRepo.Exists(ctx, o.ID())
	if err != nil {
		return SaveOrderResult{}, err
	}

	if exists {
		err = orderRepo.Update(ctx, o)
	} else {
		err = orderRepo.Add(ctx, o)
	}
	if err != nil {
		return SaveOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SaveOrderResult{}, err
	}

	return SaveOrderResult{State: o.State(), Status: o.Status()}, nil
}
