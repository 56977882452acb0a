// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	// The repository runs the registered pre-save hooks on Add and Update.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusRegistryFactory provides access to the status registry within a transaction.
	StatusRegistryFactory interface {
		StatusRegistry() ports.StatusRegistry
	}

	// OrderUoW manages transactions for order saves.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// StatusUoW manages transactions for registry administration.
	StatusUoW interface {
		TxManager
		StatusRegistryFactory
	}

	// StatusUoWFactory creates new registry unit of work instances.
	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// UoW spans both the registry and the orders, for operations that must check
	// one against the other.
	UoW interface {
		TxManager
		StatusRegistryFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// DefaultStatusInvalidator drops cached default statuses after the registry changed.
	DefaultStatusInvalidator interface {
		Invalidate(ctx context.Context, state order.State) error
	}
)
