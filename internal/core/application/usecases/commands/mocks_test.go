package commands_test

import (
	"context"
	"io"
	"log/slog"

	"orderintegrity/internal/core/application/usecases/commands"
	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/model/statusreg"
	"orderintegrity/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountByStateStatus(
	ctx context.Context,
	state order.State,
	status order.Status,
) (int64, error) {
	args := m.Called(ctx, state, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockStatusRegistry struct{ mock.Mock }

func (m *MockStatusRegistry) CountAssignments(
	ctx context.Context,
	status order.Status,
	state order.State,
) (int64, error) {
	args := m.Called(ctx, status, state)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatusRegistry) DefaultStatus(ctx context.Context, state order.State) (order.Status, error) {
	args := m.Called(ctx, state)
	return args.Get(0).(order.Status), args.Error(1)
}

func (m *MockStatusRegistry) SaveLabel(ctx context.Context, label statusreg.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockStatusRegistry) Assign(ctx context.Context, assignment statusreg.Assignment) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockStatusRegistry) Unassign(ctx context.Context, status order.Status, state order.State) error {
	args := m.Called(ctx, status, state)
	return args.Error(0)
}

func (m *MockStatusRegistry) ListByState(ctx context.Context, state order.State) ([]statusreg.Assignment, error) {
	args := m.Called(ctx, state)
	if a := args.Get(0); a != nil {
		return a.([]statusreg.Assignment), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW serves as OrderUoW, StatusUoW and UoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusRegistry() ports.StatusRegistry {
	args := m.Called()
	return args.Get(0).(ports.StatusRegistry)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockInvalidator struct{ mock.Mock }

func (m *MockInvalidator) Invalidate(ctx context.Context, state order.State) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
