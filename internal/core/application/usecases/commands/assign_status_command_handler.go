package commands

import (
	"context"
	"log/slog"
)

// AssignStatusCommandHandler stores the status label and its assignment in one
// transaction, then drops the cached default status of the affected state.
type AssignStatusCommandHandler struct {
	uowFactory  StatusUoWFactory
	invalidator DefaultStatusInvalidator
	logger      *slog.Logger
}

func NewAssignStatusCommandHandler(
	uowFactory StatusUoWFactory,
	invalidator DefaultStatusInvalidator,
	logger *slog.Logger,
) AssignStatusCommandHandler {
	return AssignStatusCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger.With("component", "assign_status_handler"),
	}
}

func (h AssignStatusCommandHandler) Handle(ctx context.Context, cmd AssignStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	registry := uow.StatusRegistry()
	if err := registry.SaveLabel(ctx, cmd.Label()); err != nil {
		return err
	}

	if err := registry.Assign(ctx, cmd.Assignment()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	// the cache expires on its own, a failed eviction only delays the new default
	state := cmd.Assignment().State()
	if err := h.invalidator.Invalidate(ctx, state); err != nil {
		h.logger.WarnContext(ctx, "Failed to invalidate default status cache",
			"state", state.String(),
			"error", err,
		)
	}

	h.logger.InfoContext(ctx, "Status assigned",
		"status", cmd.Assignment().Status().String(),
		"state", state.String(),
		"is_default", cmd.Assignment().IsDefault(),
	)

	return nil
}
