package services_test

import (
	"errors"
	"testing"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrityValidator_Validate(t *testing.T) {
	t.Run("skips empty state or status", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.countErr = errors.New("must not be called")
		validator := services.NewIntegrityValidator(registry, discardLogger())

		for _, p := range []struct {
			status order.Status
			state  order.State
		}{
			{"", ""},
			{"pending", ""},
			{"", order.StateNew},
		} {
			ok, err := validator.Validate(t.Context(), p.status, p.state)

			require.NoError(t, err)
			assert.True(t, ok)
		}
		assert.Zero(t, registry.countCalls)
	})

	t.Run("valid only for exactly one assignment", func(t *testing.T) {
		testCases := []struct {
			name     string
			count    int
			expected bool
		}{
			{name: "no assignment", count: 0, expected: false},
			{name: "one assignment", count: 1, expected: true},
			{name: "duplicate assignments", count: 2, expected: false},
			{name: "many assignments", count: 5, expected: false},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				registry := newFakeRegistry()
				for range tc.count {
					registry.assign("processing_custom", order.StateProcessing)
				}
				validator := services.NewIntegrityValidator(registry, discardLogger())

				ok, err := validator.Validate(t.Context(), "processing_custom", order.StateProcessing)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, ok)
			})
		}
	})

	t.Run("duplicate assignments are logged", func(t *testing.T) {
		logger, buf := bufferLogger()
		registry := newFakeRegistry().assign("fraud", order.StateProcessing).assign("fraud", order.StateProcessing)
		validator := services.NewIntegrityValidator(registry, logger)

		ok, err := validator.Validate(t.Context(), "fraud", order.StateProcessing)

		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, buf.String(), "duplicate assignments")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("registry failure is an error, not a verdict", func(t *testing.T) {
		registry := newFakeRegistry()
		registry.countErr = errors.New("connection reset")
		validator := services.NewIntegrityValidator(registry, discardLogger())

		ok, err := validator.Validate(t.Context(), "fraud", order.StateProcessing)

		require.ErrorIs(t, err, registry.countErr)
		assert.False(t, ok)
	})
}
