package http

import (
	"context"

	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockSaveOrderHandler struct{ mock.Mock }

func (m *MockSaveOrderHandler) Handle(ctx context.Context, cmd commands.SaveOrderCommand) (commands.SaveOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SaveOrderResult), args.Error(1)
}

type MockAssignStatusHandler struct{ mock.Mock }

func (m *MockAssignStatusHandler) Handle(ctx context.Context, cmd commands.AssignStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUnassignStatusHandler struct{ mock.Mock }

func (m *MockUnassignStatusHandler) Handle(ctx context.Context, cmd commands.UnassignStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCheckOrderIntegrityHandler struct{ mock.Mock }

func (m *MockCheckOrderIntegrityHandler) Handle(
	ctx context.Context,
	query queries.CheckOrderIntegrityQuery,
) (queries.CheckOrderIntegrityQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.CheckOrderIntegrityQueryResponse), args.Error(1)
}

type MockGetInconsistentOrdersHandler struct{ mock.Mock }

func (m *MockGetInconsistentOrdersHandler) Handle(
	ctx context.Context,
	query queries.GetInconsistentOrdersQuery,
) ([]queries.GetInconsistentOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetInconsistentOrdersQueryResponse), args.Error(1)
}

type MockGetStateStatusesHandler struct{ mock.Mock }

func (m *MockGetStateStatusesHandler) Handle(
	ctx context.Context,
	query queries.GetStateStatusesQuery,
) ([]queries.GetStateStatusesQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetStateStatusesQueryResponse), args.Error(1)
}
