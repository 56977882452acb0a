package services

import (
	"context"
	"log/slog"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/ports"
)

// StateStatusIntegrity is the order pre-save hook. It resolves the state/status the
// order is about to be written with, stages that pair on the order and rejects the save
// when the status is not registered for the state.
//
// Example:
//
//	hook := services.NewStateStatusIntegrity(registry, registry, logger)
//	if err := hook.BeforeSave(ctx, o); err != nil {
//	    var violation *services.IntegrityViolationError
//	    if errors.As(err, &violation) {
//	        // reject the save, report violation.Status / violation.State
//	    }
//	    return err
//	}
//	_ = o.CommitPending()
type StateStatusIntegrity struct {
	resolver  StateResolver
	validator IntegrityValidator
	logger    *slog.Logger
}

func NewStateStatusIntegrity(
	registry ports.AssignmentRegistry,
	lookup ports.StateDefaultStatusLookup,
	logger *slog.Logger,
) *StateStatusIntegrity {
	return &StateStatusIntegrity{
		resolver:  NewStateResolver(lookup),
		validator: NewIntegrityValidator(registry, logger),
		logger:    logger.With("component", "state_status_integrity"),
	}
}

// BeforeSave implements ports.OrderSaveHook.
func (h *StateStatusIntegrity) BeforeSave(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return h.CheckAndStage(ctx, aggregate)
}

// CheckAndStage resolves the pending pair, stages it on o and validates it.
func (h *StateStatusIntegrity) CheckAndStage(ctx context.Context, o StagingOrderSnapshot) error {
	resolution, err := h.resolver.Resolve(ctx, o)
	if err != nil {
		return err
	}

	o.StagePending(resolution.State, resolution.Status)

	return h.validate(ctx, resolution)
}

// Check is the dry-run form of CheckAndStage: it returns the resolution and the verdict
// without touching the order.
func (h *StateStatusIntegrity) Check(ctx context.Context, o OrderSnapshot) (Resolution, error) {
	resolution, err := h.resolver.Resolve(ctx, o)
	if err != nil {
		return Resolution{}, err
	}

	return resolution, h.validate(ctx, resolution)
}

func (h *StateStatusIntegrity) validate(ctx context.Context, resolution Resolution) error {
	// new order, nothing to validate
	if resolution.State.IsEmpty() || resolution.Status.IsEmpty() {
		return nil
	}

	ok, err := h.validator.Validate(ctx, resolution.Status, resolution.State)
	if err != nil {
		return err
	}
	if !ok {
		h.logger.WarnContext(ctx, "Rejected order state/status",
			"status", resolution.Status.String(),
			"state", resolution.State.String(),
			"transition", resolution.Transition,
		)
		return NewIntegrityViolationError(resolution.Status, resolution.State)
	}

	return nil
}
