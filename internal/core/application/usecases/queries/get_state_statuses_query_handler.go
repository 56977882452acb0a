package queries

import (
	"context"

	"orderintegrity/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStateStatusesQueryHandler reads the registry tables directly.
// Results are sorted by status code.
type GetStateStatusesQueryHandler struct {
	db *gorm.DB
}

func NewGetStateStatusesQueryHandler(db *gorm.DB) GetStateStatusesQueryHandler {
	return GetStateStatusesQueryHandler{db: db}
}

func (h GetStateStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetStateStatusesQuery,
) ([]GetStateStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	statuses := make([]GetStateStatusesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.status,
			s.label,
			a.is_default
		FROM order_status_states a
		JOIN order_statuses s ON s.status = a.status
		WHERE a.state = ?
		ORDER BY a.status
	`, query.State().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status    string
			label     string
			isDefault bool
		)
		if err = rows.Scan(&status, &label, &isDefault); err != nil {
			return nil, err
		}

		statuses = append(statuses, GetStateStatusesQueryResponse{
			Status:    order.Status(status),
			Label:     label,
			IsDefault: isDefault,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
