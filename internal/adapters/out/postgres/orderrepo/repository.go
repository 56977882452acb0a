package orderrepo

import (
	"context"
	"errors"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/ports"
	"orderintegrity/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// Add and Update run the save hooks before writing; the first hook error aborts the write.
type GormOrderRepository struct {
	db    *gorm.DB
	hooks []ports.OrderSaveHook
}

// NewGormOrderRepository creates a repository bound to db, which is usually a transaction.
func NewGormOrderRepository(db *gorm.DB, hooks ...ports.OrderSaveHook) *GormOrderRepository {
	return &GormOrderRepository{
		db:    db,
		hooks: hooks,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := r.beforeSave(ctx, aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := r.beforeSave(ctx, aggregate); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	// Select("*") writes zero values too: flags and totals can go back to false/0.
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error
	return count > 0, err
}

func (r *GormOrderRepository) CountByStateStatus(
	ctx context.Context,
	state order.State,
	status order.Status,
) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("state = ? AND status = ?", state.String(), status.String()).
		Count(&count).Error
	return count, err
}

func (r *GormOrderRepository) beforeSave(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, hook := range r.hooks {
		if err := hook.BeforeSave(ctx, aggregate); err != nil {
			return err
		}
	}

	if aggregate.HasPending() {
		return aggregate.CommitPending()
	}

	return nil
}
