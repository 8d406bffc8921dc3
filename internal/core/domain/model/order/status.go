package order

import (
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine whose transition table is held in one place,
// below, rather than scattered across call sites.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered ──> Refunded
//	   │                          ▲
//	   └──────────────────────────┘   (seller may start before payment confirms)
//
//	Cancelled is reachable from every non-terminal state.
//	Delivered, Cancelled, and Refunded are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status set at checkout. The order awaits
	// payment confirmation or the seller starting fulfillment.
	StatusPending

	// StatusConfirmed indicates payment authorization has been recorded.
	StatusConfirmed

	// StatusProcessing indicates a seller has started fulfillment.
	StatusProcessing

	// StatusShipped indicates the order has left the seller. Entering this
	// status creates the linked Delivery record.
	StatusShipped

	// StatusDelivered indicates physical fulfillment completed. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before completion. Terminal.
	StatusCancelled

	// StatusRefunded indicates an admin refunded a delivered order. Terminal.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusConfirmed:  "CONFIRMED",
		StatusProcessing: "PROCESSING",
		StatusShipped:    "SHIPPED",
		StatusDelivered:  "DELIVERED",
		StatusCancelled:  "CANCELLED",
		StatusRefunded:   "REFUNDED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "PENDING",
		StatusConfirmed:  "CONFIRMED",
		StatusProcessing: "PROCESSING",
		StatusShipped:    "SHIPPED",
		StatusDelivered:  "DELIVERED",
		StatusCancelled:  "CANCELLED",
		StatusRefunded:   "REFUNDED",
	}
}

// transitionRoles is the single authoritative transition table: for each legal
// (from, to) edge, the roles allowed to trigger it. An edge missing here is an
// illegal transition for every role; an edge present here is forbidden for
// roles not listed. Ownership (own order, own items) is checked separately by
// the authorization gate before the state machine is consulted.
//
// Buyer cancellation appears only on the PENDING edge: a buyer cannot cancel
// once a seller has started processing. Admin cancellation appears on every
// non-terminal state (the override path). System appears where the engine
// itself drives the edge: payment confirmation and delivery propagation.
func transitionRoles() map[Status]map[Status][]auth.Role {
	return map[Status]map[Status][]auth.Role{
		StatusPending: {
			StatusConfirmed:  {auth.RoleSystem, auth.RoleAdmin},
			StatusProcessing: {auth.RoleSeller, auth.RoleAdmin},
			StatusCancelled:  {auth.RoleBuyer, auth.RoleSeller, auth.RoleAdmin},
		},
		StatusConfirmed: {
			StatusProcessing: {auth.RoleSeller, auth.RoleAdmin},
			StatusCancelled:  {auth.RoleAdmin},
		},
		StatusProcessing: {
			StatusShipped:   {auth.RoleSeller, auth.RoleAdmin},
			StatusCancelled: {auth.RoleSeller, auth.RoleAdmin},
		},
		StatusShipped: {
			StatusDelivered: {auth.RoleSeller, auth.RoleDriver, auth.RoleAdmin, auth.RoleSystem},
			StatusCancelled: {auth.RoleAdmin},
		},
		StatusDelivered: {
			StatusRefunded: {auth.RoleAdmin},
		},
	}
}

// StatusFromString parses the persisted/wire form of a status, e.g. "PENDING".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"order status",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"order status",
			fmt.Errorf("%d is not a valid order status", s),
		)
	}
	return nil
}

// String returns the persisted/wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusRefunded
}

// Transition attempts to move to the target status on behalf of the given role.
//
// Returns:
//   - (target, nil) when the edge exists and the role may trigger it
//   - (0, *IllegalTransitionError) when the edge is not in the table
//   - (0, *auth.ForbiddenError) when the edge exists but the role is not allowed
func (s Status) Transition(target Status, role auth.Role) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	allowed, ok := transitionRoles()[s][target]
	if !ok {
		return 0, NewIllegalTransitionError(s, target)
	}

	if !slices.Contains(allowed, role) {
		return 0, auth.NewForbiddenError(role, fmt.Sprintf("transition order %s -> %s", s, target))
	}

	return target, nil
}
