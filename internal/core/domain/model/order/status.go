package order

import (
	"fmt"
	"regexp"

	"orderintegrity/internal/pkg/errs"
)

const maxStatusLength = 32

var statusCodePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// Status is a fine-grained, often merchant-defined label. Many statuses may belong
// to the same State; which ones is decided by the status registry, not by this type.
type Status string

// Validate checks the code format only.
func (s Status) Validate() error {
	if s.IsEmpty() {
		return errs.NewValueIsRequiredError("status")
	}
	if len(s) > maxStatusLength {
		return errs.NewValueIsOutOfRangeError("status length", len(s), 1, maxStatusLength)
	}
	if !statusCodePattern.MatchString(string(s)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q may only contain lowercase letters, digits and underscores", string(s)),
		)
	}
	return nil
}

func (s Status) IsEmpty() bool {
	return s == ""
}

func (s Status) String() string {
	return string(s)
}
