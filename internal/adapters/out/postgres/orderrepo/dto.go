// Package orderrepo persists order aggregates and runs the order save hooks.
package orderrepo

import (
	"time"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID                  uuid.UUID           `gorm:"type:uuid;primaryKey"`
	State               string              `gorm:"type:varchar(32);not null;default:'';index:idx_orders_state_status"`
	Status              string              `gorm:"type:varchar(32);not null;default:'';index:idx_orders_state_status"`
	BaseGrandTotal      decimal.Decimal     `gorm:"type:numeric(20,4);not null"`
	TotalRefunded       decimal.NullDecimal `gorm:"type:numeric(20,4)"`
	IsCanceled          bool                `gorm:"not null;default:false"`
	CanUnhold           bool                `gorm:"not null;default:false"`
	CanInvoice          bool                `gorm:"not null;default:false"`
	CanShip             bool                `gorm:"not null;default:false"`
	CanCreditmemo       bool                `gorm:"not null;default:false"`
	InProcess           bool                `gorm:"not null;default:false"`
	ForcedCanCreditmemo bool                `gorm:"not null;default:false"`
	UpdatedAt           time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var refunded decimal.NullDecimal
	if r := aggregate.TotalRefundedOrNil(); r != nil {
		refunded = decimal.NewNullDecimal(r.Decimal())
	}

	caps := aggregate.Capabilities()
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		State:               aggregate.State().String(),
		Status:              aggregate.Status().String(),
		BaseGrandTotal:      aggregate.BaseGrandTotal().Decimal(),
		TotalRefunded:       refunded,
		IsCanceled:          caps.Canceled,
		CanUnhold:           caps.CanUnhold,
		CanInvoice:          caps.CanInvoice,
		CanShip:             caps.CanShip,
		CanCreditmemo:       caps.CanCreditmemo,
		InProcess:           caps.InProcess,
		ForcedCanCreditmemo: caps.ForcedCanCreditmemo,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var refunded *kernel.Amount
	if dto.TotalRefunded.Valid {
		r := kernel.NewAmount(dto.TotalRefunded.Decimal)
		refunded = &r
	}

	return order.RestoreOrder(
		id,
		order.State(dto.State),
		order.Status(dto.Status),
		kernel.NewAmount(dto.BaseGrandTotal),
		refunded,
		order.Capabilities{
			Canceled:            dto.IsCanceled,
			CanUnhold:           dto.CanUnhold,
			CanInvoice:          dto.CanInvoice,
			CanShip:             dto.CanShip,
			CanCreditmemo:       dto.CanCreditmemo,
			InProcess:           dto.InProcess,
			ForcedCanCreditmemo: dto.ForcedCanCreditmemo,
		},
	)
}
