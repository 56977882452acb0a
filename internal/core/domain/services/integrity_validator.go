package services

import (
	"context"
	"fmt"
	"log/slog"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/ports"
)

// IntegrityValidator checks a (status, state) pair against the assignment registry.
type IntegrityValidator struct {
	registry ports.AssignmentRegistry
	logger   *slog.Logger
}

func NewIntegrityValidator(registry ports.AssignmentRegistry, logger *slog.Logger) IntegrityValidator {
	return IntegrityValidator{
		registry: registry,
		logger:   logger.With("component", "integrity_validator"),
	}
}

// Validate reports whether exactly one assignment links status to state.
//
// An empty state or status is valid without consulting the registry: that is a new
// order with nothing to check yet. Zero matches and several matches are both invalid;
// several matches is additionally logged because it means the registry itself is broken.
// Registry failures are returned as errors, never as a verdict.
func (v IntegrityValidator) Validate(ctx context.Context, status order.Status, state order.State) (bool, error) {
	if state.IsEmpty() || status.IsEmpty() {
		return true, nil
	}

	count, err := v.registry.CountAssignments(ctx, status, state)
	if err != nil {
		return false, fmt.Errorf("count assignments of status %q to state %q: %w", status, state, err)
	}

	if count > 1 {
		v.logger.ErrorContext(ctx, "Status registry holds duplicate assignments",
			"status", status.String(),
			"state", state.String(),
			"count", count,
		)
	}

	return count == 1, nil
}
