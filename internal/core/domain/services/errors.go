package services

import (
	"errors"
	"fmt"

	"orderintegrity/internal/core/domain/model/order"
)

// ErrIntegrityViolation is the sentinel behind every IntegrityViolationError.
var ErrIntegrityViolation = errors.New("order status is not assigned to state")

// IntegrityViolationError aborts an order save whose status is not registered for its state.
type IntegrityViolationError struct {
	Status order.Status
	State  order.State
}

func NewIntegrityViolationError(status order.Status, state order.State) *IntegrityViolationError {
	return &IntegrityViolationError{Status: status, State: state}
}

func (e *IntegrityViolationError) Error() string {
	return fmt.Sprintf("Error: Order status %q is not assigned to state %q.", e.Status.String(), e.State.String())
}

func (e *IntegrityViolationError) Unwrap() error {
	return ErrIntegrityViolation
}
