package statusreg_test

import (
	"strings"
	"testing"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/core/domain/model/statusreg"
	"orderintegrity/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	t.Run("should create assignment", func(t *testing.T) {
		a, err := statusreg.NewAssignment("processing_custom", order.StateProcessing, false)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, order.Status("processing_custom"), a.Status())
		assert.Equal(t, order.StateProcessing, a.State())
		assert.False(t, a.IsDefault())
	})

	t.Run("should reject unknown state and empty status together", func(t *testing.T) {
		_, err := statusreg.NewAssignment("", "shipped", true)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a statusreg.Assignment

		require.ErrorIs(t, a.Validate(), statusreg.ErrAssignmentIsNotConstructed)
	})
}

func TestNewLabel(t *testing.T) {
	t.Run("should trim text", func(t *testing.T) {
		l, err := statusreg.NewLabel("fraud", "  Suspected Fraud ")

		require.NoError(t, err)
		assert.Equal(t, "Suspected Fraud", l.Text())
	})

	t.Run("should default to status code", func(t *testing.T) {
		l, err := statusreg.NewLabel("fraud", "")

		require.NoError(t, err)
		assert.Equal(t, "fraud", l.Text())
	})

	t.Run("should reject long labels", func(t *testing.T) {
		_, err := statusreg.NewLabel("fraud", strings.Repeat("x", 129))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
