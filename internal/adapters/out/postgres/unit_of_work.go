// Package postgres provides the GORM-based Unit of Work for the order integrity service.
//
// A unit of work scopes one database transaction. Repositories obtained from it after
// Begin share that transaction, which is how the order save hooks read the status
// registry through the same transaction that writes the order:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// hooks built for this unit of work run inside Add
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine should use its own unit of work.
package postgres

import (
	"context"

	"orderintegrity/internal/adapters/out/postgres/orderrepo"
	"orderintegrity/internal/adapters/out/postgres/statusrepo"
	"orderintegrity/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	hooks ports.OrderSaveHookFactory
}

// NewGormUnitOfWorkFactory creates a factory. hooks may be nil, in which case order
// repositories write without running any save hook.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, hookFactory)
func NewGormUnitOfWorkFactory(db *gorm.DB, hooks ports.OrderSaveHookFactory) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, hooks: hooks}
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:    f.db,
		hooks: f.hooks,
	}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db    *gorm.DB
	tx    *gorm.DB
	hooks ports.OrderSaveHookFactory
}

// Begin starts the transaction. Calling Begin again before Commit or Rollback is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when none is
// active, so a deferred Rollback after a successful Commit is harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// StatusRegistry returns the registry bound to the active transaction, or to the
// connection pool when no transaction is active.
func (uow *GormUnitOfWork) StatusRegistry() ports.StatusRegistry {
	return statusrepo.NewGormStatusRepository(uow.conn())
}

// OrderRepository returns the order repository bound to the active transaction.
// Its save hooks read the registry through the same transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.conn()
	if uow.hooks == nil {
		return orderrepo.NewGormOrderRepository(db)
	}

	hooks := uow.hooks.Create(statusrepo.NewGormStatusRepository(db))
	return orderrepo.NewGormOrderRepository(db, hooks...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
