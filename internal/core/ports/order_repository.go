// Package ports defines the contracts between the order integrity core and its
// infrastructure: order persistence, the state/status registry and the save hook.
package ports

import (
	"context"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Add and Update are the order save pipeline: every registered OrderSaveHook runs
// before the record is written, inside the same transaction, and any hook error
// aborts the write. When the hooks pass, the repository commits the order's pending
// state/status and persists the result.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// CountByStateStatus counts stored orders currently using the (state, status) pair.
	CountByStateStatus(ctx context.Context, state order.State, status order.Status) (int64, error)
}

// OrderSaveHook is invoked synchronously before an order record is written.
// Returning an error aborts the whole save.
type OrderSaveHook interface {
	BeforeSave(ctx context.Context, aggregate *order.Order) error
}

// OrderSaveHookFactory builds the hooks for one unit of work. The registry it receives
// is bound to that unit of work's transaction.
type OrderSaveHookFactory interface {
	Create(registry StatusRegistry) []OrderSaveHook
}
