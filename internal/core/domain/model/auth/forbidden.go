package auth

import (
	"errors"
	"fmt"
)

// ErrForbidden classifies all authorization failures.
// It is distinct from the state machines' illegal-transition errors:
// Forbidden means the wrong actor, IllegalTransition means the wrong state.
var ErrForbidden = errors.New("forbidden")

// ForbiddenError reports that an actor is not allowed to perform an action
// on a resource, either because the role is not permitted or because the
// actor does not own the resource.
type ForbiddenError struct {
	Role   Role
	Action string
}

// NewForbiddenError creates a ForbiddenError for the given role and action description.
func NewForbiddenError(role Role, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s may not %s", ErrForbidden, e.Role, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
