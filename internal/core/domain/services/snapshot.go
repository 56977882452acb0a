package services

import (
	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
)

// OrderSnapshot is the read-only view of an order the integrity services consume.
// *order.Order satisfies it.
type OrderSnapshot interface {
	State() order.State
	Status() order.Status
	BaseGrandTotal() kernel.Amount
	// TotalRefunded is zero when nothing was refunded.
	TotalRefunded() kernel.Amount

	IsCanceled() bool
	CanUnhold() bool
	CanInvoice() bool
	CanShip() bool
	CanCreditmemo() bool
	IsInProcess() bool
	HasForcedCanCreditmemo() bool
}

// StagingOrderSnapshot can additionally receive the pending state/status for the save
// pipeline to commit.
type StagingOrderSnapshot interface {
	OrderSnapshot
	StagePending(state order.State, status order.Status)
}
