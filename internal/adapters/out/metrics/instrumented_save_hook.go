package metrics

import (
	"context"
	"errors"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/services"
	"orderintegrity/internal/core/ports"
)

// InstrumentedSaveHook counts the outcome of every BeforeSave call of the wrapped hook.
type InstrumentedSaveHook struct {
	next    ports.OrderSaveHook
	metrics *Metrics
}

func NewInstrumentedSaveHook(next ports.OrderSaveHook, metrics *Metrics) *InstrumentedSaveHook {
	return &InstrumentedSaveHook{next: next, metrics: metrics}
}

func (h *InstrumentedSaveHook) BeforeSave(ctx context.Context, aggregate *order.Order) error {
	err := h.next.BeforeSave(ctx, aggregate)
	h.metrics.HookOutcomes.WithLabelValues(outcome(aggregate, err)).Inc()
	return err
}

func outcome(aggregate *order.Order, err error) string {
	switch {
	case errors.Is(err, services.ErrIntegrityViolation):
		return OutcomeViolation
	case err != nil:
		return OutcomeError
	case !aggregate.HasPending(), aggregate.PendingState().IsEmpty(), aggregate.PendingStatus().IsEmpty():
		// blank pair, nothing was validated
		return OutcomeSkipped
	default:
		return OutcomeOK
	}
}
