package services_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"orderintegrity/internal/core/domain/model/kernel"
	"orderintegrity/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

type pair struct {
	status order.Status
	state  order.State
}

// fakeRegistry is an in-memory assignment registry.
type fakeRegistry struct {
	counts     map[pair]int64
	defaults   map[order.State]order.Status
	countErr   error
	defaultErr error
	countCalls int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{
		counts: map[pair]int64{},
		defaults: map[order.State]order.Status{
			order.StateNew:        "pending",
			order.StateProcessing: "processing",
			order.StateComplete:   "complete",
			order.StateClosed:     "closed",
			order.StateCanceled:   "canceled",
		},
	}
}

func (f *fakeRegistry) assign(status order.Status, state order.State) *fakeRegistry {
	f.counts[pair{status, state}]++
	return f
}

func (f *fakeRegistry) CountAssignments(_ context.Context, status order.Status, state order.State) (int64, error) {
	f.countCalls++
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.counts[pair{status, state}], nil
}

func (f *fakeRegistry) DefaultStatus(_ context.Context, state order.State) (order.Status, error) {
	if f.defaultErr != nil {
		return "", f.defaultErr
	}
	return f.defaults[state], nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

type orderSpec struct {
	state         order.State
	status        order.Status
	grandTotal    string
	totalRefunded *string
	caps          order.Capabilities
}

func newTestOrder(t *testing.T, spec orderSpec) *order.Order {
	t.Helper()

	if spec.grandTotal == "" {
		spec.grandTotal = "100"
	}

	var refunded *kernel.Amount
	if spec.totalRefunded != nil {
		a := kernel.MustAmount(*spec.totalRefunded)
		refunded = &a
	}

	o, err := order.RestoreOrder(kernel.NewUUID(), spec.state, spec.status,
		kernel.MustAmount(spec.grandTotal), refunded, spec.caps)
	require.NoError(t, err)
	return o
}

func ptr(s string) *string {
	return &s
}

// exhausted is the capability set of an order with nothing left to invoice, ship or unhold.
var exhausted = order.Capabilities{}

// active is the capability set of an order that can still be shipped.
var active = order.Capabilities{CanShip: true}
