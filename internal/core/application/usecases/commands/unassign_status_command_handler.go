package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"orderintegrity/internal/pkg/errs"
)

var (
	// ErrCannotUnassignDefaultStatus is returned when the status is the state's default.
	// Another default has to be assigned first.
	ErrCannotUnassignDefaultStatus = errors.New("the default status of a state cannot be unassigned")

	// ErrStatusIsInUse is returned when stored orders still carry the (state, status) pair.
	ErrStatusIsInUse = errors.New("status is in use by orders")
)

// UnassignStatusCommandHandler removes an assignment unless it is the state's default
// or orders still use it. Both checks and the delete share one transaction.
type UnassignStatusCommandHandler struct {
	uowFactory  UoWFactory
	invalidator DefaultStatusInvalidator
	logger      *slog.Logger
}

func NewUnassignStatusCommandHandler(
	uowFactory UoWFactory,
	invalidator DefaultStatusInvalidator,
	logger *slog.Logger,
) UnassignStatusCommandHandler {
	return UnassignStatusCommandHandler{
		uowFactory:  uowFactory,
		invalidator: invalidator,
		logger:      logger.With("component", "unassign_status_handler"),
	}
}

func (h UnassignStatusCommandHandler) Handle(ctx context.Context, cmd UnassignStatusCommand) error {
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
	assignments, err := registry.ListByState(ctx, cmd.State())
	if err != nil {
		return err
	}

	found := false
	for _, a := range assignments {
		if a.Status() != cmd.Status() {
			continue
		}
		if a.IsDefault() {
			return ErrCannotUnassignDefaultStatus
		}
		found = true
	}
	if !found {
		return errs.NewObjectNotFoundError("assignment", cmd.Status().String()+"@"+cmd.State().String())
	}

	inUse, err := uow.OrderRepository().CountByStateStatus(ctx, cmd.State(), cmd.Status())
	if err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: %d orders", ErrStatusIsInUse, inUse)
	}

	if err = registry.Unassign(ctx, cmd.Status(), cmd.State()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.invalidator.Invalidate(ctx, cmd.State()); err != nil {
		h.logger.WarnContext(ctx, "Failed to invalidate default status cache",
			"state", cmd.State().String(),
			"error", err,
		)
	}

	h.logger.InfoContext(ctx, "Status unassigned",
		"status", cmd.Status().String(),
		"state", cmd.State().String(),
	)

	return nil
}
