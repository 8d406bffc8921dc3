package delivery

import (
	"errors"
	"fmt"
)

// ErrIllegalTransition classifies delivery status transitions that are not in
// the transition table.
var ErrIllegalTransition = errors.New("illegal delivery status transition")

// IllegalTransitionError reports a rejected delivery status transition.
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
