package order

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition classifies order status transitions that are not in the
// transition table. Distinct from auth.ErrForbidden: IllegalTransition means
// the wrong state, Forbidden means the wrong actor.
var ErrIllegalTransition = errors.New("illegal order status transition")

// IllegalTransitionError reports a rejected order status transition.
type IllegalTransitionError struct {
	From Status
	To   Status
}

// NewIllegalTransitionError creates an IllegalTransitionError for the given edge.
func NewIllegalTransitionError(from, to Status) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrIllegalTransition, e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
