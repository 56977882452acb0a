// Package queries contains read-only operations over orders and the status registry.
// Queries never write; the integrity check runs the pre-save resolution as a dry run.
package queries

import (
	"errors"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/guard"
)

var ErrCheckOrderIntegrityQueryIsNotConstructed = errors.New(
	"CheckOrderIntegrityQuery must be created via NewCheckOrderIntegrityQuery constructor",
)

// CheckOrderIntegrityQuery asks what a save of the stored order would do right now:
// which state/status it would be written with and whether the registry accepts it.
//
// Example:
//
//	query, err := NewCheckOrderIntegrityQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	report, err := handler.Handle(ctx, query)
//	if err == nil && !report.Valid {
//	    fmt.Println(report.Violation)
//	}
type CheckOrderIntegrityQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCheckOrderIntegrityQuery(orderID kernel.UUID) (CheckOrderIntegrityQuery, error) {
	if err := orderID.Validate(); err != nil {
		return CheckOrderIntegrityQuery{}, err
	}

	return CheckOrderIntegrityQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q CheckOrderIntegrityQuery) Validate() error {
	return q.guard.Validate(ErrCheckOrderIntegrityQueryIsNotConstructed)
}

func (q CheckOrderIntegrityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CheckOrderIntegrityQueryResponse compares the stored pair with the resolved one.
type CheckOrderIntegrityQueryResponse struct {
	OrderID kernel.UUID

	CurrentState  order.State
	CurrentStatus order.Status

	ResolvedState  order.State
	ResolvedStatus order.Status
	Transition     bool

	Valid bool
	// Violation holds the rejection message when Valid is false.
	Violation string
}
