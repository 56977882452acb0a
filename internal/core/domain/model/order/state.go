package order

import (
	"fmt"

	"orderintegrity/internal/pkg/errs"
)

// State is the coarse lifecycle phase of an order.
type State string

const (
	StateNew            State = "new"
	StatePendingPayment State = "pending_payment"
	StateProcessing     State = "processing"
	StateComplete       State = "complete"
	StateClosed         State = "closed"
	StateCanceled       State = "canceled"
	StateHolded         State = "holded"
	StatePaymentReview  State = "payment_review"
)

// States returns every known lifecycle state in workflow order.
func States() []State {
	return []State{
		StateNew,
		StatePendingPayment,
		StateProcessing,
		StateComplete,
		StateClosed,
		StateCanceled,
		StateHolded,
		StatePaymentReview,
	}
}

// Validate accepts only the known lifecycle states. The empty state is not valid here;
// callers that allow "not yet set" check IsEmpty first.
func (s State) Validate() error {
	for _, known := range States() {
		if s == known {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a known order state", string(s)))
}

func (s State) IsEmpty() bool {
	return s == ""
}

func (s State) String() string {
	return string(s)
}
