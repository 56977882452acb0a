package queries

import (
	"context"
	"errors"

	"orderintegrity/internal/core/domain/services"
	"orderintegrity/internal/core/ports"
)

// IntegrityChecker runs the pre-save resolution and validation without staging anything.
// *services.StateStatusIntegrity satisfies it.
type IntegrityChecker interface {
	Check(ctx context.Context, o services.OrderSnapshot) (services.Resolution, error)
}

// IntegrityCheckerFactory binds a checker to the registry of one unit of work.
type IntegrityCheckerFactory interface {
	Create(registry ports.StatusRegistry) IntegrityChecker
}

// CheckOrderIntegrityQueryHandler loads an order and reports whether saving it would pass
// the state/status integrity hook. The transaction is always rolled back.
type CheckOrderIntegrityQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	checkers   IntegrityCheckerFactory
}

func NewCheckOrderIntegrityQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	checkers IntegrityCheckerFactory,
) CheckOrderIntegrityQueryHandler {
	return CheckOrderIntegrityQueryHandler{
		uowFactory: uowFactory,
		checkers:   checkers,
	}
}

// Handle returns an errs.ObjectNotFoundError for unknown orders. A rejected pair is not
// an error: it is reported through Valid and Violation.
func (h CheckOrderIntegrityQueryHandler) Handle(
	ctx context.Context,
	query CheckOrderIntegrityQuery,
) (CheckOrderIntegrityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckOrderIntegrityQueryResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CheckOrderIntegrityQueryResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return CheckOrderIntegrityQueryResponse{}, err
	}

	resp := CheckOrderIntegrityQueryResponse{
		OrderID:       o.ID(),
		CurrentState:  o.State(),
		CurrentStatus: o.Status(),
		Valid:         true,
	}

	resolution, err := h.checkers.Create(uow.StatusRegistry()).Check(ctx, o)

	var violation *services.IntegrityViolationError
	switch {
	case errors.As(err, &violation):
		resp.Valid = false
		resp.Violation = violation.Error()
	case err != nil:
		return CheckOrderIntegrityQueryResponse{}, err
	}

	resp.ResolvedState = resolution.State
	resp.ResolvedStatus = resolution.Status
	resp.Transition = resolution.Transition

	return resp, nil
}
