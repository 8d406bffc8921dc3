package delivery

import (
	"fmt"
	"slices"

	"marketplace/internal/core/domain/model/auth"
	"marketplace/internal/pkg/errs"
)

// Status represents the physical-fulfillment state of a delivery.
// The delivery record is the authoritative sub-state machine: order status is
// never used to infer delivery state, and the parent order only learns about
// completion through the terminal Delivered transition.
//
// State transitions:
//
//	Pending ──> PendingPickup ──> OutForDelivery ──> Delivered
//	                 ▲  │                 │
//	                 │  └────> Failed <───┘
//	                 └───────────┘   (retry; unlimited by default)
//
// Delivered is terminal. Failed stays open for retry until an admin closes
// the order itself.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status, set when the linked order first
	// reaches a shippable state. No driver is assigned yet.
	StatusPending

	// StatusPendingPickup indicates a driver is assigned and the package
	// awaits pickup.
	StatusPendingPickup

	// StatusOutForDelivery indicates the driver has picked up the package.
	StatusOutForDelivery

	// StatusDelivered indicates successful handover to the buyer. Terminal.
	StatusDelivered

	// StatusFailed indicates a failed attempt; the delivery may be retried
	// by returning to StatusPendingPickup.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusPending:        "PENDING",
		StatusPendingPickup:  "PENDING_PICKUP",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusFailed:         "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "PENDING",
		StatusPendingPickup:  "PENDING_PICKUP",
		StatusOutForDelivery: "OUT_FOR_DELIVERY",
		StatusDelivered:      "DELIVERED",
		StatusFailed:         "FAILED",
	}
}

// transitionRoles mirrors the order table's shape: legal edges and the roles
// allowed to trigger them. Driver ownership (the acting driver must be the
// assigned driver) is the authorization gate's concern, not this table's.
// System triggers the PendingPickup edge when a driver is assigned.
func transitionRoles() map[Status]map[Status][]auth.Role {
	return map[Status]map[Status][]auth.Role{
		StatusPending: {
			StatusPendingPickup: {auth.RoleDriver, auth.RoleAdmin, auth.RoleSystem},
		},
		StatusPendingPickup: {
			StatusOutForDelivery: {auth.RoleDriver, auth.RoleAdmin},
			StatusFailed:         {auth.RoleDriver, auth.RoleAdmin},
		},
		StatusOutForDelivery: {
			StatusDelivered: {auth.RoleDriver, auth.RoleAdmin},
			StatusFailed:    {auth.RoleDriver, auth.RoleAdmin},
		},
		StatusFailed: {
			StatusPendingPickup: {auth.RoleDriver, auth.RoleAdmin},
		},
	}
}

// StatusFromString parses the persisted/wire form of a status, e.g. "PENDING_PICKUP".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"delivery status",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery status",
			fmt.Errorf("%d is not a valid delivery status", s),
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
// Failed is not terminal: it stays open for retry until the order is closed.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered
}

// Transition attempts to move to the target status on behalf of the given role.
// Same contract as the order state machine: *IllegalTransitionError for a
// missing edge, *auth.ForbiddenError for a disallowed role.
func (s Status) Transition(target Status, role auth.Role) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	allowed, ok := transitionRoles()[s][target]
	if !ok {
		return 0, NewIllegalTransitionError(s, target)
	}

	if !slices.Contains(allowed, role) {
		return 0, auth.NewForbiddenError(role, fmt.Sprintf("transition delivery %s -> %s", s, target))
	}

	return target, nil
}
