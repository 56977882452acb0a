package queries

import (
	"errors"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/errs"
	"orderintegrity/internal/pkg/guard"
)

const (
	DefaultInconsistentOrdersLimit = 100
	MaxInconsistentOrdersLimit     = 1000
)

var ErrGetInconsistentOrdersQueryIsNotConstructed = errors.New(
	"GetInconsistentOrdersQuery must be created via NewGetInconsistentOrdersQuery constructor",
)

// GetInconsistentOrdersQuery finds stored orders whose (state, status) pair is not
// registered exactly once. Such rows were written before a registry change or
// around the save pipeline.
type GetInconsistentOrdersQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetInconsistentOrdersQuery uses DefaultInconsistentOrdersLimit when limit is zero.
func NewGetInconsistentOrdersQuery(limit int) (GetInconsistentOrdersQuery, error) {
	if limit == 0 {
		limit = DefaultInconsistentOrdersLimit
	}
	if limit < 1 || limit > MaxInconsistentOrdersLimit {
		return GetInconsistentOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, MaxInconsistentOrdersLimit,
		)
	}

	return GetInconsistentOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetInconsistentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetInconsistentOrdersQueryIsNotConstructed)
}

func (q GetInconsistentOrdersQuery) Limit() int {
	return q.limit
}

type GetInconsistentOrdersQueryResponse struct {
	ID     kernel.UUID
	State  order.State
	Status order.Status
}
