package statusreg

import (
	"errors"
	"strings"

	"orderintegrity/internal/core/domain/model/order"
	"orderintegrity/internal/pkg/errs"
	"orderintegrity/internal/pkg/guard"
)

var (
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")
	ErrLabelIsNotConstructed      = errors.New("Label must be created via NewLabel constructor")
)

// Assignment registers a status as valid for a state. At most one assignment per
// state is the default; it is the status an order receives when it enters that state.
type Assignment struct { //nolint:recvcheck //using for validation
	status    order.Status
	state     order.State
	isDefault bool

	guard guard.ConstructorGuard
}

func NewAssignment(status order.Status, state order.State, isDefault bool) (Assignment, error) {
	if err := errors.Join(status.Validate(), state.Validate()); err != nil {
		return Assignment{}, err
	}

	return Assignment{
		status:    status,
		state:     state,
		isDefault: isDefault,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a Assignment) Status() order.Status {
	return a.status
}

func (a Assignment) State() order.State {
	return a.state
}

func (a Assignment) IsDefault() bool {
	return a.isDefault
}

// Label is the operator-facing name of a status code.
type Label struct { //nolint:recvcheck //using for validation
	status order.Status
	text   string

	guard guard.ConstructorGuard
}

// NewLabel trims the text; an empty label falls back to the status code.
func NewLabel(status order.Status, text string) (Label, error) {
	if err := status.Validate(); err != nil {
		return Label{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = status.String()
	}
	if len(text) > 128 {
		return Label{}, errs.NewValueIsOutOfRangeError("label length", len(text), 1, 128)
	}

	return Label{status: status, text: text, guard: guard.NewConstructorGuard()}, nil
}

func (l Label) Validate() error {
	return l.guard.Validate(ErrLabelIsNotConstructed)
}

func (l Label) Status() order.Status {
	return l.status
}

func (l Label) Text() string {
	return l.text
}
