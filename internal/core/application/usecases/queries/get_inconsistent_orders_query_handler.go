package queries

import (
	"context"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInconsistentOrdersQueryHandler scans the orders table for pairs the save hook would
// reject. Orders without a state or status are skipped, as the hook skips them.
// Results are sorted by order ID.
type GetInconsistentOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetInconsistentOrdersQueryHandler(db *gorm.DB) GetInconsistentOrdersQueryHandler {
	return GetInconsistentOrdersQueryHandler{db: db}
}

func (h GetInconsistentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetInconsistentOrdersQuery,
) ([]GetInconsistentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetInconsistentOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.state,
			o.status
		FROM orders o
		WHERE o.state <> '' AND o.status <> ''
			AND (
				SELECT count(*)
				FROM order_status_states a
				JOIN order_statuses s ON s.status = a.status
				WHERE a.status = o.status AND a.state = o.state
			) <> 1
		ORDER BY o.id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			state  string
			status string
		)
		if err = rows.Scan(&id, &state, &status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		orders = append(orders, GetInconsistentOrdersQueryResponse{
			ID:     orderID,
			State:  order.State(state),
			Status: order.Status(status),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
