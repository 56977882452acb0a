package services_test

import (
	"errors"
	"testing"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetState(t *testing.T) {
	testCases := []struct {
		name     string
		spec     orderSpec
		expected order.State
	}{
		{
			name:     "active order keeps its state",
			spec:     orderSpec{state: order.StateProcessing, status: "processing_custom", caps: active},
			expected: "",
		},
		{
			name:     "canceled order keeps its state",
			spec:     orderSpec{state: order.StateCanceled, status: "canceled", grandTotal: "0", caps: order.Capabilities{Canceled: true}},
			expected: "",
		},
		{
			name:     "invoiceable order keeps its state",
			spec:     orderSpec{state: order.StateProcessing, status: "processing", grandTotal: "0", caps: order.Capabilities{CanInvoice: true}},
			expected: "",
		},
		{
			name:     "holded order that can be unheld keeps its state",
			spec:     orderSpec{state: order.StateHolded, status: "holded", grandTotal: "0", caps: order.Capabilities{CanUnhold: true}},
			expected: "",
		},
		{
			name:     "zero grand total completes",
			spec:     orderSpec{state: order.StateProcessing, status: "processing", grandTotal: "0", caps: exhausted},
			expected: order.StateComplete,
		},
		{
			name: "zero grand total completes regardless of refunds",
			spec: orderSpec{
				state: order.StateProcessing, status: "processing", grandTotal: "0",
				totalRefunded: ptr("15"), caps: exhausted,
			},
			expected: order.StateComplete,
		},
		{
			name:     "credit memo eligibility completes",
			spec:     orderSpec{state: order.StateProcessing, status: "processing", caps: order.Capabilities{CanCreditmemo: true}},
			expected: order.StateComplete,
		},
		{
			name:     "already complete is not a transition",
			spec:     orderSpec{state: order.StateComplete, status: "complete", grandTotal: "0", caps: exhausted},
			expected: "",
		},
		{
			name: "refunded order closes",
			spec: orderSpec{
				state: order.StateComplete, status: "complete",
				totalRefunded: ptr("100"), caps: exhausted,
			},
			expected: order.StateClosed,
		},
		{
			name: "smallest refund closes",
			spec: orderSpec{
				state: order.StateProcessing, status: "processing",
				totalRefunded: ptr("0.0001"), caps: exhausted,
			},
			expected: order.StateClosed,
		},
		{
			name: "forced credit memo closes when nothing was refunded",
			spec: orderSpec{
				state: order.StateProcessing, status: "processing",
				caps: order.Capabilities{ForcedCanCreditmemo: true},
			},
			expected: order.StateClosed,
		},
		{
			name: "forced credit memo closes with explicit zero refund",
			spec: orderSpec{
				state: order.StateProcessing, status: "processing", totalRefunded: ptr("0"),
				caps: order.Capabilities{ForcedCanCreditmemo: true},
			},
			expected: order.StateClosed,
		},
		{
			name: "already closed is not a transition",
			spec: orderSpec{
				state: order.StateClosed, status: "closed",
				totalRefunded: ptr("100"), caps: exhausted,
			},
			expected: "",
		},
		{
			name: "negative refund neither closes nor counts as zero",
			spec: orderSpec{
				state: order.StateProcessing, status: "processing", totalRefunded: ptr("-1"),
				caps: order.Capabilities{ForcedCanCreditmemo: true},
			},
			expected: "",
		},
		{
			name:     "exhausted order with nothing refunded stays",
			spec:     orderSpec{state: order.StateProcessing, status: "processing", caps: exhausted},
			expected: "",
		},
		{
			name:     "new order in process moves to processing",
			spec:     orderSpec{state: order.StateNew, status: "pending", caps: order.Capabilities{InProcess: true, CanInvoice: true}},
			expected: order.StateProcessing,
		},
		{
			name:     "in-process flag only matters for new orders",
			spec:     orderSpec{state: order.StatePendingPayment, status: "pending_payment", caps: order.Capabilities{InProcess: true, CanInvoice: true}},
			expected: "",
		},
		{
			name:     "processing overrides completion for new orders",
			spec:     orderSpec{state: order.StateNew, status: "pending", grandTotal: "0", caps: order.Capabilities{InProcess: true}},
			expected: order.StateProcessing,
		},
		{
			name: "processing overrides closure for new orders",
			spec: orderSpec{
				state: order.StateNew, status: "pending",
				totalRefunded: ptr("5"), caps: order.Capabilities{InProcess: true},
			},
			expected: order.StateProcessing,
		},
		{
			name:     "empty state with exhausted fulfillment completes",
			spec:     orderSpec{grandTotal: "0", caps: exhausted},
			expected: order.StateComplete,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			o := newTestOrder(t, tc.spec)

			target, ok := services.TargetState(o)

			assert.Equal(t, tc.expected, target)
			assert.Equal(t, !tc.expected.IsEmpty(), ok)
		})
	}
}

func TestStateResolver_Resolve(t *testing.T) {
	t.Run("transition returns target default status", func(t *testing.T) {
		resolver := services.NewStateResolver(newFakeRegistry())
		o := newTestOrder(t, orderSpec{state: order.StateProcessing, status: "processing_custom", grandTotal: "0", caps: exhausted})

		resolution, err := resolver.Resolve(t.Context(), o)

		require.NoError(t, err)
		assert.Equal(t, services.Resolution{State: order.StateComplete, Status: "complete", Transition: true}, resolution)
	})

	t.Run("no transition returns existing pair", func(t *testing.T) {
		resolver := services.NewStateResolver(newFakeRegistry())
		o := newTestOrder(t, orderSpec{state: order.StateProcessing, status: "processing_custom", caps: active})

		resolution, err := resolver.Resolve(t.Context(), o)

		require.NoError(t, err)
		assert.Equal(t, services.Resolution{State: order.StateProcessing, Status: "processing_custom"}, resolution)
	})

	t.Run("resolving twice gives the same answer", func(t *testing.T) {
		resolver := services.NewStateResolver(newFakeRegistry())
		o := newTestOrder(t, orderSpec{state: order.StateNew, status: "pending", caps: order.Capabilities{InProcess: true}})

		first, err := resolver.Resolve(t.Context(), o)
		require.NoError(t, err)
		second, err := resolver.Resolve(t.Context(), o)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, order.StateNew, o.State(), "resolver must not mutate the order")
	})

	t.Run("lookup failure propagates", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.defaultErr = errors.New("registry unavailable")
		resolver := services.NewStateResolver(registry)
		o := newTestOrder(t, orderSpec{state: order.StateProcessing, status: "processing", grandTotal: "0", caps: exhausted})

		_, err := resolver.Resolve(t.Context(), o)

		require.ErrorIs(t, err, registry.defaultErr)
		assert.Contains(t, err.Error(), `default status of state "complete"`)
	})

	t.Run("lookup is not consulted without a transition", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.defaultErr = errors.New("must not be called")
		resolver := services.NewStateResolver(registry)
		o := newTestOrder(t, orderSpec{state: order.StateProcessing, status: "processing", caps: active})

		_, err := resolver.Resolve(t.Context(), o)

		require.NoError(t, err)
	})
}
